package api

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"pawtrait/internal/entities"
	apperrors "pawtrait/internal/errors"
	"pawtrait/internal/repository"
	"pawtrait/internal/service"
	"pawtrait/internal/utils"
)

type Studio struct {
	Name  string
	Email string
	Phone string
	City  string
}

type PageHandler struct {
	Catalog  *repository.CatalogRepository
	Bookings *service.BookingService
	Calendar *service.CalendarService
	Money    *service.Money
	Studio   Studio

	page    *template.Template
	locales *localeResolver
}

func NewPageHandler(page *template.Template, catalog *repository.CatalogRepository, bookings *service.BookingService,
	calendar *service.CalendarService, money *service.Money, studio Studio) *PageHandler {
	return &PageHandler{
		Catalog:  catalog,
		Bookings: bookings,
		Calendar: calendar,
		Money:    money,
		Studio:   studio,
		page:     page,
		locales:  newLocaleResolver(money.Locale()),
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	form := entities.BookingRequest{
		PetType:   utils.NormalizePetType(""),
		PackageID: h.Catalog.DefaultPackage().ID,
	}
	h.render(w, r, http.StatusOK, h.pageData(r, form))
}

// SubmitBooking handles the booking form. The inquiry mailto target and the
// calendar hold are handed back inside the re-rendered page.
func (h *PageHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		apperrors.WriteError(w, apperrors.ErrBadRequest("Invalid form"))
		return
	}
	req, err := parseBookingForm(r.PostForm)
	if req.PackageID == "" {
		req.PackageID = h.Catalog.DefaultPackage().ID
	}
	if err != nil {
		var httpErr *apperrors.HTTPError
		if !errors.As(err, &httpErr) {
			apperrors.WriteError(w, err)
			return
		}
		data := h.pageData(r, req)
		data.Error = httpErr.Message
		h.render(w, r, httpErr.Code, data)
		return
	}

	nav := &pageNavigator{}
	dl := &pageDownloader{}
	sub, err := h.Bookings.Submit(req, nav, dl)
	if err != nil {
		// The page capabilities never fail, anything here is a bug.
		apperrors.WriteError(w, err)
		return
	}

	data := h.pageData(r, req)
	data.Submitted = sub.Acknowledged
	data.MailtoHref = template.URL(nav.href)
	data.Hold = dl.link
	h.render(w, r, http.StatusOK, data)
}

// DownloadHold serves the calendar hold for the given query as an attachment.
func (h *PageHandler) DownloadHold(w http.ResponseWriter, r *http.Request) {
	req := readBookingValues(r.URL.Query())
	if !req.HasSchedule() {
		apperrors.WriteError(w, apperrors.ErrBadRequest("date and time are required"))
		return
	}
	hold, err := h.Bookings.BuildHold(req)
	if err != nil {
		apperrors.WriteError(w, apperrors.ErrBadRequest(err.Error()))
		return
	}
	if err := h.Calendar.OfferHold(hold, attachmentDownloader{w: w}); err != nil {
		log.Printf("Error sending calendar hold %s: %v", hold.UID, err)
	}
}

func (h *PageHandler) pageData(r *http.Request, form entities.BookingRequest) PageData {
	tag := h.locales.Resolve(r)
	money := h.Money.ForLocale(tag)

	data := PageData{
		Lang: tag.String(),
		Studio: StudioInfo{
			Name:       h.Studio.Name,
			Email:      h.Studio.Email,
			Phone:      h.Studio.Phone,
			City:       h.Studio.City,
			MailtoHref: template.URL("mailto:" + h.Studio.Email),
		},
		Gallery: h.Catalog.GetGallery(),
		FAQ:     h.Catalog.GetFAQ(),
		Form:    form,
	}
	for i, src := range h.Catalog.GetHeroImages() {
		data.Hero = append(data.Hero, HeroImage{Src: src, Wide: i%3 == 0})
	}
	for _, p := range h.Catalog.GetPackages() {
		data.Packages = append(data.Packages, PackageCard{
			Package:        p,
			FormattedPrice: money.Format(float64(p.PriceUSD)),
			Selected:       p.ID == form.PackageID,
		})
	}
	for _, t := range utils.PetTypes() {
		data.PetTypes = append(data.PetTypes, PetTypeOption{Value: t, Selected: t == form.PetType})
	}
	for _, t := range h.Catalog.GetTestimonials() {
		data.Testimonials = append(data.Testimonials, TestimonialCard{Testimonial: t, Stars: strings.Repeat("★", t.Rating)})
	}
	return data
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, data PageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		log.Printf("Error rendering page for %s: %v", r.URL.Path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
