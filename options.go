package numfmt

import (
	"fmt"
	"strings"
)

// Format identifies the resolved layout family for a rendered number.
type Format int

const (
	// FormatStandard is the locale's plain decimal layout.
	FormatStandard Format = iota
	// FormatCurrency is the locale's currency layout.
	FormatCurrency
	// FormatAccounting is the bookkeeping currency layout, negative amounts
	// typically parenthesized.
	FormatAccounting
	// FormatPercent scales by 100 and appends the percent sign.
	FormatPercent
	// FormatScientific is the locale's scientific-notation layout.
	FormatScientific
	// FormatCurrencyShort is compact currency notation ("$1.2K").
	FormatCurrencyShort
	// FormatCurrencyLong is long compact currency notation ("1.2 thousand US dollars").
	FormatCurrencyLong
	// FormatDecimalShort is compact decimal notation ("1.2K").
	FormatDecimalShort
	// FormatDecimalLong is long compact decimal notation ("1.2 thousand").
	FormatDecimalLong
	// FormatLiteral renders with a caller-supplied pattern string.
	FormatLiteral
)

func (f Format) String() string {
	switch f {
	case FormatStandard:
		return "standard"
	case FormatCurrency:
		return "currency"
	case FormatAccounting:
		return "accounting"
	case FormatPercent:
		return "percent"
	case FormatScientific:
		return "scientific"
	case FormatCurrencyShort:
		return "currency-short"
	case FormatCurrencyLong:
		return "currency-long"
	case FormatDecimalShort:
		return "decimal-short"
	case FormatDecimalLong:
		return "decimal-long"
	case FormatLiteral:
		return "literal"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// isCurrencyShaped reports whether the format requires a currency code.
func (f Format) isCurrencyShaped() bool {
	switch f {
	case FormatCurrency, FormatAccounting, FormatCurrencyShort, FormatCurrencyLong:
		return true
	}
	return false
}

// CurrencySymbolVariant selects how the currency placeholder is rendered.
type CurrencySymbolVariant int

const (
	// SymbolStandard renders the locale's currency symbol.
	SymbolStandard CurrencySymbolVariant = iota
	// SymbolIso renders the ISO 4217 code.
	SymbolIso
	// SymbolNone suppresses the currency text entirely.
	SymbolNone
	// SymbolLongName renders the locale's long currency name.
	SymbolLongName
)

// Option keys recognized by the resolver. Any other key fails resolution
// with ErrUnknownOption.
const (
	OptLocale                = "locale"
	OptNumberSystem          = "number_system"
	OptCurrency              = "currency"
	OptFormat                = "format"
	OptCurrencyDigits        = "currency_digits"
	OptCash                  = "cash"
	OptCurrencySymbol        = "currency_symbol"
	OptRoundingMode          = "rounding_mode"
	OptFractionalDigits      = "fractional_digits"
	OptMinimumGroupingDigits = "minimum_grouping_digits"
)

// Options is the loosely-specified per-call configuration. Values are
// coerced from the natural Go types: strings for identifiers, ints for
// digit counts, the package enums where one exists.
type Options map[string]any

// Context carries the ambient locale explicitly; there is no process-wide
// mutable default inside the package.
type Context struct {
	Locale string
}

// rawOptions is the caller's input after key validation and type coercion,
// before the resolution pipeline runs.
type rawOptions struct {
	locale        string
	numberSystem  string
	currency      string
	formatName    string // named style, empty when unset or literal
	formatLiteral string // literal pattern, empty when named
	formatSet     bool
	ruleBased     string // spellout/ordinal/roman

	currencyDigits    CurrencyDigitMode
	currencyDigitsSet bool
	cash              bool
	cashSet           bool

	currencySymbol    CurrencySymbolVariant
	currencySymbolSet bool

	rounding    RoundingMode
	roundingSet bool

	fractionalDigits int // -1 unset
	minGrouping      int // -1 unset
}

// namedFormats maps recognized style atoms to descriptors. Short and long
// are placeholders refined by currency presence during resolution.
var namedFormats = map[string]Format{
	"standard":       FormatStandard,
	"decimal":        FormatStandard,
	"currency":       FormatCurrency,
	"accounting":     FormatAccounting,
	"percent":        FormatPercent,
	"scientific":     FormatScientific,
	"currency_short": FormatCurrencyShort,
	"currency_long":  FormatCurrencyLong,
	"decimal_short":  FormatDecimalShort,
	"decimal_long":   FormatDecimalLong,
}

var ruleBasedFormats = map[string]string{
	"spellout": "spellout",
	"ordinal":  "ordinal",
	"roman":    "roman",
}

func parseOptions(opts Options) (*rawOptions, error) {
	raw := &rawOptions{fractionalDigits: -1, minGrouping: -1}

	for key, value := range opts {
		switch key {
		case OptLocale:
			s, err := optString(key, value)
			if err != nil {
				return nil, err
			}
			raw.locale = s
		case OptNumberSystem:
			s, err := optString(key, value)
			if err != nil {
				return nil, err
			}
			raw.numberSystem = strings.ToLower(strings.TrimSpace(s))
		case OptCurrency:
			s, err := optString(key, value)
			if err != nil {
				return nil, err
			}
			raw.currency = s
		case OptFormat:
			if err := raw.setFormat(value); err != nil {
				return nil, err
			}
		case OptCurrencyDigits:
			mode, err := optCurrencyDigits(value)
			if err != nil {
				return nil, err
			}
			raw.currencyDigits = mode
			raw.currencyDigitsSet = true
		case OptCash:
			b, ok := value.(bool)
			if !ok {
				return nil, newConfigError(ErrUnknownOption, "%s: expected bool, got %T", key, value)
			}
			raw.cash = b
			raw.cashSet = true
		case OptCurrencySymbol:
			variant, err := optCurrencySymbol(value)
			if err != nil {
				return nil, err
			}
			raw.currencySymbol = variant
			raw.currencySymbolSet = true
		case OptRoundingMode:
			mode, err := optRoundingMode(value)
			if err != nil {
				return nil, err
			}
			raw.rounding = mode
			raw.roundingSet = true
		case OptFractionalDigits:
			n, err := optInt(key, value)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, newConfigError(ErrUnknownOption, "%s must not be negative", key)
			}
			raw.fractionalDigits = n
		case OptMinimumGroupingDigits:
			n, err := optInt(key, value)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, newConfigError(ErrUnknownOption, "%s must not be negative", key)
			}
			raw.minGrouping = n
		default:
			return nil, newConfigError(ErrUnknownOption, "%q", key)
		}
	}

	return raw, nil
}

func (raw *rawOptions) setFormat(value any) error {
	switch v := value.(type) {
	case Format:
		if v == FormatLiteral {
			return newConfigError(ErrUnknownOption, "format: pass the literal pattern string instead of FormatLiteral")
		}
		raw.formatName = strings.ReplaceAll(v.String(), "-", "_")
		raw.formatSet = true
		return nil
	case string:
		atom := strings.ToLower(strings.TrimSpace(v))
		normalized := strings.ReplaceAll(strings.ReplaceAll(atom, "-", "_"), " ", "_")
		if _, ok := namedFormats[normalized]; ok {
			raw.formatName = normalized
			raw.formatSet = true
			return nil
		}
		if normalized == "short" || normalized == "long" {
			raw.formatName = normalized
			raw.formatSet = true
			return nil
		}
		if name, ok := ruleBasedFormats[normalized]; ok {
			raw.ruleBased = name
			raw.formatSet = true
			return nil
		}
		// anything else is a literal pattern, used as-is
		raw.formatLiteral = v
		raw.formatSet = true
		return nil
	default:
		return newConfigError(ErrUnknownOption, "format: expected string or Format, got %T", value)
	}
}

func optString(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", newConfigError(ErrUnknownOption, "%s: expected string, got %T", key, value)
	}
	return s, nil
}

func optInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	}
	return 0, newConfigError(ErrUnknownOption, "%s: expected int, got %T", key, value)
}

func optRoundingMode(value any) (RoundingMode, error) {
	switch v := value.(type) {
	case RoundingMode:
		return v, nil
	case string:
		if mode, ok := roundingModeNames[strings.ToLower(strings.TrimSpace(v))]; ok {
			return mode, nil
		}
		return 0, newConfigError(ErrUnknownOption, "rounding_mode: %q", v)
	}
	return 0, newConfigError(ErrUnknownOption, "rounding_mode: expected string or RoundingMode, got %T", value)
}

func optCurrencyDigits(value any) (CurrencyDigitMode, error) {
	switch v := value.(type) {
	case CurrencyDigitMode:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "accounting":
			return DigitsAccounting, nil
		case "cash":
			return DigitsCash, nil
		case "iso":
			return DigitsIso, nil
		}
		return 0, newConfigError(ErrUnknownOption, "currency_digits: %q", v)
	}
	return 0, newConfigError(ErrUnknownOption, "currency_digits: expected string or CurrencyDigitMode, got %T", value)
}

func optCurrencySymbol(value any) (CurrencySymbolVariant, error) {
	switch v := value.(type) {
	case CurrencySymbolVariant:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "standard", "symbol":
			return SymbolStandard, nil
		case "iso":
			return SymbolIso, nil
		case "none":
			return SymbolNone, nil
		case "long_name", "long-name", "name":
			return SymbolLongName, nil
		}
		return 0, newConfigError(ErrUnknownOption, "currency_symbol: %q", v)
	}
	return 0, newConfigError(ErrUnknownOption, "currency_symbol: expected string or CurrencySymbolVariant, got %T", value)
}
