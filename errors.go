package numfmt

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is; the structured
// error types below carry the offending detail.
var (
	// ErrUnknownOption indicates an option key the resolver does not recognize.
	ErrUnknownOption = errors.New("numfmt: unknown option")

	// ErrInvalidLocale indicates a locale identifier the locale registry rejected.
	ErrInvalidLocale = errors.New("numfmt: invalid locale")

	// ErrUnknownNumberSystem indicates a number system not defined for the locale.
	ErrUnknownNumberSystem = errors.New("numfmt: unknown number system")

	// ErrUnknownCurrency indicates a currency code the currency registry rejected.
	ErrUnknownCurrency = errors.New("numfmt: unknown currency")

	// ErrMissingCurrency indicates a currency-shaped format resolved without a
	// currency code.
	ErrMissingCurrency = errors.New("numfmt: missing currency for currency format")

	// ErrNoRBNFEngine indicates a rule-based format was requested but no engine
	// is configured.
	ErrNoRBNFEngine = errors.New("numfmt: no rule-based engine configured")

	// ErrBadNumber indicates a value that could not be normalized to a decimal.
	ErrBadNumber = errors.New("numfmt: unsupported numeric value")
)

// ConfigError reports a failed resolution stage. Kind is one of the sentinel
// errors above; Detail names the offending key, code, or identifier.
type ConfigError struct {
	Kind   error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *ConfigError) Unwrap() error { return e.Kind }

func newConfigError(kind error, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// FormatNotFoundError reports that no pattern or symbol data exists for the
// resolved locale, number system, and format triple.
type FormatNotFoundError struct {
	Locale       string
	NumberSystem string
	Format       string
}

func (e *FormatNotFoundError) Error() string {
	return fmt.Sprintf("numfmt: no format data for locale %q, number system %q, format %q",
		e.Locale, e.NumberSystem, e.Format)
}

// PatternError reports a malformed format pattern. Pos is the byte offset of
// the offending character within Pattern.
type PatternError struct {
	Pattern string
	Pos     int
	Message string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("numfmt: bad pattern %q at %d: %s", e.Pattern, e.Pos, e.Message)
}

func patternErr(pattern string, pos int, format string, args ...any) *PatternError {
	return &PatternError{Pattern: pattern, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NoRuleError reports that the configured rule-based engine has no rule
// covering the value.
type NoRuleError struct {
	Ruleset string
	Value   string
}

func (e *NoRuleError) Error() string {
	return fmt.Sprintf("numfmt: no %s rule for %s", e.Ruleset, e.Value)
}
