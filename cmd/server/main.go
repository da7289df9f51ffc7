package main

import (
	"log"
	"net/http"

	"pawtrait/internal/api"
	"pawtrait/internal/config"
	"pawtrait/internal/repository"
	"pawtrait/internal/service"
	"pawtrait/internal/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	page, err := templates.Page()
	if err != nil {
		log.Fatalf("Failed to parse page template: %v", err)
	}

	catalog := repository.NewCatalogRepository()
	money := service.NewMoney(cfg.CurrencyUnit(), cfg.Locale())
	calendarSvc := service.NewCalendarService(cfg.HoldProductID, cfg.HoldUIDDomain)
	inquirySvc := service.NewInquiryService(cfg.BusinessEmail, money)
	bookingSvc := service.NewBookingService(catalog, inquirySvc, calendarSvc, cfg.Location())

	pageHandler := api.NewPageHandler(page, catalog, bookingSvc, calendarSvc, money, api.Studio{
		Name:  cfg.StudioName,
		Email: cfg.BusinessEmail,
		Phone: cfg.StudioPhone,
		City:  cfg.StudioCity,
	})
	catalogHandler := api.NewCatalogHandler(catalog, money)

	r := api.NewRouter(pageHandler, catalogHandler)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, api.WithMiddleware(r)))
}
