package numfmt

import (
	"strings"

	"golang.org/x/text/currency"
)

// CurrencyDigitMode selects which of a currency's fraction-digit counts the
// renderer uses.
type CurrencyDigitMode int

const (
	// DigitsAccounting uses the currency's bookkeeping fraction digits.
	DigitsAccounting CurrencyDigitMode = iota
	// DigitsCash uses the fraction digits of physical cash amounts.
	DigitsCash
	// DigitsIso uses the ISO 4217 standard fraction digits.
	DigitsIso
)

// CurrencyRegistry validates currency codes and supplies per-currency
// fraction-digit metadata.
type CurrencyRegistry interface {
	// Validate returns the canonical code or ErrUnknownCurrency.
	Validate(code string) (string, error)
	// Digits returns the fraction-digit count for code under mode.
	// A negative result means the registry has no opinion and the pattern's
	// own fraction digits apply.
	Digits(code string, mode CurrencyDigitMode) int
}

// ISOCurrencyRegistry is backed by golang.org/x/text/currency.
type ISOCurrencyRegistry struct{}

var _ CurrencyRegistry = ISOCurrencyRegistry{}

func (ISOCurrencyRegistry) Validate(code string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return "", newConfigError(ErrUnknownCurrency, "empty currency code")
	}
	unit, err := currency.ParseISO(trimmed)
	if err != nil {
		return "", newConfigError(ErrUnknownCurrency, "%q: %v", code, err)
	}
	return unit.String(), nil
}

func (ISOCurrencyRegistry) Digits(code string, mode CurrencyDigitMode) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return -1
	}

	kind := currency.Accounting
	switch mode {
	case DigitsCash:
		kind = currency.Cash
	case DigitsIso:
		kind = currency.Standard
	}

	scale, _ := kind.Rounding(unit)
	return scale
}
