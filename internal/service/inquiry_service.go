package service

import (
	"fmt"
	"net/url"
	"strings"

	"pawtrait/internal/entities"
)

// Navigator sends the visitor to an href, typically a mailto: target. There
// is no way to observe whether the mail client actually opened.
type Navigator interface {
	Navigate(href string) error
}

type InquiryService struct {
	recipient string
	money     *Money
}

func NewInquiryService(recipient string, money *Money) *InquiryService {
	return &InquiryService{recipient: recipient, money: money}
}

// Compose builds the inquiry email for a request and its resolved package.
// Optional fields that were left blank keep their line with an empty value.
func (s *InquiryService) Compose(req entities.BookingRequest, pkg entities.Package) entities.InquiryEmail {
	subject := fmt.Sprintf("Pet Photoshoot Inquiry – %s – %s", strings.ToUpper(req.PackageID), req.Name)

	lines := []string{
		"Name: " + req.Name,
		"Email: " + req.Email,
		"Phone: " + req.Phone,
		fmt.Sprintf("Pet: %s (%s)", req.PetName, req.PetType),
		fmt.Sprintf("Package: %s (%s)", pkg.Name, s.money.Format(float64(pkg.PriceUSD))),
		fmt.Sprintf("Requested Date/Time: %s %s", req.Date, req.Time),
		"Notes: " + req.Notes,
	}

	return entities.InquiryEmail{
		Recipient: s.recipient,
		Subject:   subject,
		Body:      strings.Join(lines, "\n"),
	}
}

// MailtoHref renders the email as a mailto: URI with encoded subject and body.
func (s *InquiryService) MailtoHref(email entities.InquiryEmail) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		email.Recipient, encodeComponent(email.Subject), encodeComponent(email.Body))
}

// encodeComponent percent-encodes like a URI component: mail clients read
// "+" literally, so spaces must go out as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
