// Package money formats monetary amounts for display. Stored values stay raw
// float64; formatting is presentation-only and never feeds back into state.
package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as localized currency strings.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewBRLFormatter returns the pt-BR real formatter used across the catalog
// ("R$ 1.234,56").
func NewBRLFormatter() *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.BrazilianPortuguese),
		unit:    currency.BRL,
	}
}

func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount)))
}

// FormatOrDash renders "-" for an absent amount, as the service listing does.
func (f *Formatter) FormatOrDash(amount *float64) string {
	if amount == nil {
		return "-"
	}
	return f.Format(*amount)
}

// FormatOrZero renders an absent amount as zero, as the cost summary does.
func (f *Formatter) FormatOrZero(amount *float64) string {
	if amount == nil {
		return f.Format(0)
	}
	return f.Format(*amount)
}
