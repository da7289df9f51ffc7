package service

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencySymbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Money formats amounts in one currency for one locale.
type Money struct {
	unit    currency.Unit
	tag     language.Tag
	scale   int
	printer *message.Printer
}

func NewMoney(unit currency.Unit, tag language.Tag) *Money {
	scale, _ := currency.Standard.Rounding(unit)
	return &Money{
		unit:    unit,
		tag:     tag,
		scale:   scale,
		printer: message.NewPrinter(tag),
	}
}

// ForLocale returns a formatter for the same currency in another locale.
func (m *Money) ForLocale(tag language.Tag) *Money {
	if tag == m.tag {
		return m
	}
	return NewMoney(m.unit, tag)
}

func (m *Money) Locale() language.Tag {
	return m.tag
}

// Format renders a non-negative amount, e.g. 299 as "$299.00" for en-US.
func (m *Money) Format(amount float64) string {
	return m.symbol() + m.printer.Sprintf("%v", number.Decimal(amount, number.Scale(m.scale)))
}

func (m *Money) symbol() string {
	if s, ok := currencySymbols[m.unit]; ok {
		return s
	}
	return m.unit.String() + " "
}
