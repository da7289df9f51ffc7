package entities

import "time"

// CalendarHold is a tentative calendar block offered to the client while the
// studio confirms the booking.
type CalendarHold struct {
	UID         string
	CreatedAt   time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
	Payload     string
}

func (h CalendarHold) Duration() time.Duration {
	return h.End.Sub(h.Start)
}
