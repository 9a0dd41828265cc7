// Package mymoney formats decimal amounts as locale-aware currency strings.
package mymoney

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// layout describes where a locale puts the currency symbol relative to the number.
type layout struct {
	symbolFirst bool
	separator   string
}

const nbsp = "\u00a0"

var layouts = map[string]layout{
	"en-US": {symbolFirst: true, separator: ""},
	"en-GB": {symbolFirst: true, separator: ""},
	"pt-BR": {symbolFirst: true, separator: nbsp},
	"de-DE": {symbolFirst: false, separator: nbsp},
	"fr-FR": {symbolFirst: false, separator: nbsp},
	"nl-NL": {symbolFirst: true, separator: nbsp},
	"es-ES": {symbolFirst: false, separator: nbsp},
}

type Format struct {
	Currency          string
	Locale            string
	MinFractionDigits int
	MaxFractionDigits int
}

func (f Format) Validate() error {
	if _, err := currency.ParseISO(f.Currency); err != nil {
		return fmt.Errorf("invalid currency %q: %w", f.Currency, err)
	}
	if _, err := language.Parse(f.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", f.Locale, err)
	}
	if f.MinFractionDigits < 0 || f.MaxFractionDigits < f.MinFractionDigits {
		return fmt.Errorf("invalid fraction digits %d-%d", f.MinFractionDigits, f.MaxFractionDigits)
	}
	return nil
}

// Apply renders amount, for example $20.00 (en-US, USD) or R$ 500,00 (pt-BR, BRL).
func (f Format) Apply(amount decimal.Decimal) (string, error) {
	err := f.Validate()
	if err != nil {
		return "", err
	}

	unit, _ := currency.ParseISO(f.Currency)
	tag := language.MustParse(f.Locale)
	printer := message.NewPrinter(tag)

	rounded := amount.Round(int32(f.MaxFractionDigits))
	digits := printer.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(f.MinFractionDigits),
		number.MaxFractionDigits(f.MaxFractionDigits)))
	symbol := printer.Sprint(currency.Symbol(unit))

	l, found := layouts[f.Locale]
	if !found {
		l = layout{symbolFirst: true, separator: nbsp}
	}

	if rounded.IsNegative() {
		digits = strings.TrimPrefix(digits, "-")
		if l.symbolFirst {
			return "-" + symbol + l.separator + digits, nil
		}
		return "-" + digits + l.separator + symbol, nil
	}
	if l.symbolFirst {
		return symbol + l.separator + digits, nil
	}
	return digits + l.separator + symbol, nil
}

// ParseCurrency normalizes an ISO-4217 code, for example "brl" becomes "BRL".
func ParseCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("invalid currency %q: %w", code, err)
	}
	return unit.String(), nil
}

// LocaleTable maps a currency onto the locale its amounts are displayed in.
type LocaleTable struct {
	ByCurrency    map[string]string
	DefaultLocale string
}

func DefaultLocaleTable() LocaleTable {
	return LocaleTable{
		ByCurrency:    map[string]string{"BRL": "pt-BR"},
		DefaultLocale: "de-DE",
	}
}

func (t LocaleTable) LocaleFor(currencyCode string) string {
	locale, found := t.ByCurrency[strings.ToUpper(currencyCode)]
	if !found {
		return t.DefaultLocale
	}
	return locale
}
