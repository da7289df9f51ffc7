package service

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"pawtrait/internal/entities"
)

const (
	HoldFilename  = "pet-photoshoot-hold.ics"
	HoldMediaType = "text/calendar"

	defaultHoldLocation = "TBD"
)

// Downloader offers content to the visitor as a file to save.
type Downloader interface {
	Offer(filename, mediaType string, content []byte) error
}

type HoldParams struct {
	Title           string
	Description     string
	Start           time.Time
	DurationMinutes int
	Location        string
}

type CalendarService struct {
	productID string
	uidDomain string
	now       func() time.Time
}

func NewCalendarService(productID, uidDomain string) *CalendarService {
	return &CalendarService{
		productID: productID,
		uidDomain: uidDomain,
		now:       time.Now,
	}
}

// BuildHold turns the params into a single-event iCalendar payload. Stamps
// are written in UTC.
func (s *CalendarService) BuildHold(p HoldParams) (entities.CalendarHold, error) {
	if p.DurationMinutes <= 0 {
		return entities.CalendarHold{}, fmt.Errorf("hold duration must be positive, got %d minutes", p.DurationMinutes)
	}

	created := s.now()
	location := strings.TrimSpace(p.Location)
	if location == "" {
		location = defaultHoldLocation
	}

	hold := entities.CalendarHold{
		UID:         fmt.Sprintf("%d@%s", created.UnixMilli(), s.uidDomain),
		CreatedAt:   created.UTC().Truncate(time.Second),
		Start:       p.Start.UTC(),
		End:         p.Start.Add(time.Duration(p.DurationMinutes) * time.Minute).UTC(),
		Summary:     p.Title,
		Description: p.Description,
		Location:    location,
	}

	cal := ics.NewCalendar()
	cal.SetProductId(s.productID)
	event := cal.AddEvent(hold.UID)
	event.SetDtStampTime(hold.CreatedAt)
	event.SetStartAt(hold.Start)
	event.SetEndAt(hold.End)
	event.SetSummary(hold.Summary)
	event.SetDescription(hold.Description)
	event.SetLocation(hold.Location)
	hold.Payload = cal.Serialize()

	return hold, nil
}

// OfferHold hands the payload to the downloader under the fixed hold filename.
func (s *CalendarService) OfferHold(hold entities.CalendarHold, d Downloader) error {
	if err := d.Offer(HoldFilename, HoldMediaType, []byte(hold.Payload)); err != nil {
		return fmt.Errorf("offer calendar hold %s: %w", hold.UID, err)
	}
	return nil
}
