package entities

type InquiryEmail struct {
	Recipient string
	Subject   string
	Body      string
}
