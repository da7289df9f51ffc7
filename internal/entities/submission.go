package entities

// Submission is what a single form submit produced.
type Submission struct {
	Acknowledged bool
	Inquiry      InquiryEmail
	MailtoHref   string
	Hold         *CalendarHold // nil when date or time was missing
}
