package api

import (
	"html/template"
	"net/mail"
	"net/url"
	"strings"

	"pawtrait/internal/entities"
	apperrors "pawtrait/internal/errors"
	"pawtrait/internal/utils"
)

// Page
type PageData struct {
	Lang         string
	Studio       StudioInfo
	Hero         []HeroImage
	Gallery      []string
	Packages     []PackageCard
	PetTypes     []PetTypeOption
	Testimonials []TestimonialCard
	FAQ          []entities.FAQEntry
	Form         entities.BookingRequest
	Error        string
	Submitted    bool
	MailtoHref   template.URL
	Hold         *HoldLink
}

type StudioInfo struct {
	Name       string
	Email      string
	Phone      string
	City       string
	MailtoHref template.URL
}

type HeroImage struct {
	Src  string
	Wide bool
}

type PackageCard struct {
	entities.Package
	FormattedPrice string
	Selected       bool
}

type PetTypeOption struct {
	Value    string
	Selected bool
}

type TestimonialCard struct {
	entities.Testimonial
	Stars string
}

type HoldLink struct {
	Filename string
	Href     template.URL
}

// parseBookingForm reads a booking request from submitted form values.
// Only name and email are checked; the rest is taken as typed.
func parseBookingForm(form url.Values) (entities.BookingRequest, error) {
	req := readBookingValues(form)
	if req.Name == "" {
		return req, apperrors.ErrBadRequest("Please tell us your name.")
	}
	if req.Email == "" {
		return req, apperrors.ErrBadRequest("Please enter your email address.")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return req, apperrors.ErrBadRequest("Please enter a valid email address.")
	}
	return req, nil
}

func readBookingValues(form url.Values) entities.BookingRequest {
	get := func(key string) string { return strings.TrimSpace(form.Get(key)) }
	return entities.BookingRequest{
		Name:      get("name"),
		Email:     get("email"),
		Phone:     get("phone"),
		PetName:   get("pet_name"),
		PetType:   utils.NormalizePetType(get("pet_type")),
		PackageID: get("package"),
		Date:      get("date"),
		Time:      get("time"),
		Notes:     form.Get("notes"),
		Location:  get("location"),
		Instagram: get("instagram"),
	}
}
