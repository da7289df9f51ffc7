package api

import (
	"encoding/json"
	"net/http"

	"pawtrait/internal/entities"
	"pawtrait/internal/repository"
	"pawtrait/internal/service"
)

type CatalogHandler struct {
	Catalog *repository.CatalogRepository
	Money   *service.Money

	locales *localeResolver
}

func NewCatalogHandler(catalog *repository.CatalogRepository, money *service.Money) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Money: money, locales: newLocaleResolver(money.Locale())}
}

func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	money := h.Money.ForLocale(h.locales.Resolve(r))
	packages := h.Catalog.GetPackages()
	res := make([]entities.PackageResponse, 0, len(packages))
	for _, p := range packages {
		res = append(res, entities.PackageResponse{Package: p, FormattedPrice: money.Format(float64(p.PriceUSD))})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
