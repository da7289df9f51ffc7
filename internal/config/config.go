package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	BusinessEmail string `env:"BUSINESS_EMAIL" envDefault:"bookings@yourstudio.com"`
	StudioName    string `env:"STUDIO_NAME" envDefault:"Pawtrait Studio"`
	StudioPhone   string `env:"STUDIO_PHONE" envDefault:"(555) 123-4567"`
	StudioCity    string `env:"STUDIO_CITY" envDefault:"Your City"`
	Currency      string `env:"CURRENCY" envDefault:"USD"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en-US"`
	TimeZone      string `env:"STUDIO_TIMEZONE" envDefault:"Local"`
	HoldUIDDomain string `env:"HOLD_UID_DOMAIN" envDefault:"petshoot.local"`
	HoldProductID string `env:"HOLD_PRODUCT_ID" envDefault:"-//PetShoot//EN"`

	currencyUnit currency.Unit
	locale       language.Tag
	location     *time.Location
}

func (c *Config) CurrencyUnit() currency.Unit { return c.currencyUnit }

// Locale is the fallback locale for visitors without a usable Accept-Language.
func (c *Config) Locale() language.Tag { return c.locale }

// Location is the zone the visitor's preferred date and time are read in.
func (c *Config) Location() *time.Location { return c.location }

// Load reads an optional .env file, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("No .env file loaded (%v), using process environment", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolve() error {
	unit, err := currency.ParseISO(strings.TrimSpace(c.Currency))
	if err != nil {
		return fmt.Errorf("invalid CURRENCY %q: %w", c.Currency, err)
	}
	c.currencyUnit = unit

	tag, err := language.Parse(strings.TrimSpace(c.DefaultLocale))
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_LOCALE %q: %w", c.DefaultLocale, err)
	}
	c.locale = tag

	loc, err := time.LoadLocation(strings.TrimSpace(c.TimeZone))
	if err != nil {
		return fmt.Errorf("invalid STUDIO_TIMEZONE %q: %w", c.TimeZone, err)
	}
	c.location = loc

	if strings.TrimSpace(c.BusinessEmail) == "" {
		return fmt.Errorf("BUSINESS_EMAIL must not be empty")
	}
	return nil
}
