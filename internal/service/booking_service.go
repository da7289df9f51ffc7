package service

import (
	"fmt"
	"log"
	"time"

	"pawtrait/internal/entities"
)

const scheduleLayout = "2006-01-02 15:04"

type PackageCatalog interface {
	GetPackage(id string) (entities.Package, bool)
	HoldDuration(id string) int
}

// BookingService runs a form submission: it opens the inquiry email and,
// when a date and time were picked, offers a calendar hold.
type BookingService struct {
	catalog  PackageCatalog
	inquiry  *InquiryService
	calendar *CalendarService
	location *time.Location
}

func NewBookingService(catalog PackageCatalog, inquiry *InquiryService, calendar *CalendarService, location *time.Location) *BookingService {
	if location == nil {
		location = time.Local
	}
	return &BookingService{
		catalog:  catalog,
		inquiry:  inquiry,
		calendar: calendar,
		location: location,
	}
}

// Submit acknowledges the request, navigates to the inquiry mailto target and
// offers the hold when the request has a schedule. The returned submission is
// always acknowledged, even when a side effect failed.
func (s *BookingService) Submit(req entities.BookingRequest, nav Navigator, dl Downloader) (entities.Submission, error) {
	sub := entities.Submission{Acknowledged: true}

	pkg, _ := s.catalog.GetPackage(req.PackageID)
	sub.Inquiry = s.inquiry.Compose(req, pkg)
	sub.MailtoHref = s.inquiry.MailtoHref(sub.Inquiry)
	if err := nav.Navigate(sub.MailtoHref); err != nil {
		return sub, fmt.Errorf("navigate to inquiry email: %w", err)
	}

	if !req.HasSchedule() {
		log.Printf("Booking inquiry for package %q composed without a schedule, no hold offered", req.PackageID)
		return sub, nil
	}

	hold, err := s.BuildHold(req)
	if err != nil {
		log.Printf("Skipping calendar hold for package %q: %v", req.PackageID, err)
		return sub, nil
	}
	sub.Hold = &hold
	if err := s.calendar.OfferHold(hold, dl); err != nil {
		return sub, err
	}

	log.Printf("Booking inquiry for package %q composed, hold %s offered", req.PackageID, hold.UID)
	return sub, nil
}

// BuildHold builds the calendar hold for a request that carries a date and a
// time, read in the studio's time zone.
func (s *BookingService) BuildHold(req entities.BookingRequest) (entities.CalendarHold, error) {
	start, err := s.ParseSchedule(req.Date, req.Time)
	if err != nil {
		return entities.CalendarHold{}, err
	}
	pkg, _ := s.catalog.GetPackage(req.PackageID)

	return s.calendar.BuildHold(HoldParams{
		Title:           "Pet Photoshoot Hold – " + req.Name,
		Description:     fmt.Sprintf("%s with %s (%s). We will confirm by email.", pkg.Name, req.PetName, req.PetType),
		Start:           start,
		DurationMinutes: s.catalog.HoldDuration(req.PackageID),
		Location:        req.Location,
	})
}

func (s *BookingService) ParseSchedule(date, clock string) (time.Time, error) {
	start, err := time.ParseInLocation(scheduleLayout, date+" "+clock, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid requested date/time %q %q: %w", date, clock, err)
	}
	return start, nil
}
