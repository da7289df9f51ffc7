package entities

// BookingRequest is one submission of the booking form. Only Name and Email
// are required; every other field may be empty.
type BookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	PetName   string `json:"pet_name"`
	PetType   string `json:"pet_type"`
	PackageID string `json:"package_id"`
	Date      string `json:"date"` // 2006-01-02, as sent by <input type="date">
	Time      string `json:"time"` // 15:04, as sent by <input type="time">
	Notes     string `json:"notes"`
	Location  string `json:"location"`
	Instagram string `json:"instagram"`
}

// HasSchedule reports whether both a date and a time were supplied.
func (r BookingRequest) HasSchedule() bool {
	return r.Date != "" && r.Time != ""
}
