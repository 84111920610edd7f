package view

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Money renders an amount the way list tables show it: "R$ 10.50".
func Money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// BRL renders an amount in pt-BR currency notation, e.g. "R$ 1.234,50".
func BRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return brPrinter.Sprintf("%v %.2f", currency.Symbol(currency.BRL), f)
}

// Count renders an integer with pt-BR digit grouping.
func Count(n int) string {
	return brPrinter.Sprintf("%d", n)
}

// DateBR turns an ISO calendar date into dd/mm/yyyy. Unparseable input is
// returned unchanged.
func DateBR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, iso); err != nil {
			return iso
		}
	}
	return t.UTC().Format("02/01/2006")
}
