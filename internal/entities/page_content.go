package entities

type Testimonial struct {
	Name   string
	Text   string
	Rating int
}

type FAQEntry struct {
	Question string
	Answer   string
}
