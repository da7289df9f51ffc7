package entities

// Package is a fixed-price photoshoot bundle.
type Package struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	PriceUSD        int      `json:"price_usd"`
	Includes        []string `json:"includes"`
	Featured        bool     `json:"featured,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
}

type PackageResponse struct {
	Package
	FormattedPrice string `json:"formatted_price"`
}
