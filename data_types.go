package numfmt

// Symbols is the glyph and separator set for one locale and number system.
// Read-only once loaded; the renderer never mutates it.
type Symbols struct {
	Decimal  string `json:"decimal" yaml:"decimal"`
	Group    string `json:"group" yaml:"group"`
	Digits   string `json:"digits" yaml:"digits"` // exactly ten runes, zero first
	Percent  string `json:"percent" yaml:"percent"`
	PerMille string `json:"per_mille" yaml:"per_mille"`
	Exponent string `json:"exponent" yaml:"exponent"`
	Plus     string `json:"plus" yaml:"plus"`
	Minus    string `json:"minus" yaml:"minus"`
}

// SpacingSide is one half of a currency spacing rule: the character classes
// that must match on the currency and number side for the spacer to be
// inserted between them.
type SpacingSide struct {
	CurrencyMatch    string `json:"currency_match" yaml:"currency_match"`
	SurroundingMatch string `json:"surrounding_match" yaml:"surrounding_match"`
	InsertBetween    string `json:"insert_between" yaml:"insert_between"`
}

// SpacingRules carries the locale's currency spacing rule for a symbol
// preceding (Before) or following (After) the numeric body.
type SpacingRules struct {
	Before SpacingSide `json:"before" yaml:"before"`
	After  SpacingSide `json:"after" yaml:"after"`
}

// CompactRung is one step of a compact-notation ladder: values at or above
// 10^Magnitude (and below the next rung) format with Pattern after dividing
// by 10^Magnitude.
type CompactRung struct {
	Magnitude int    `json:"magnitude" yaml:"magnitude"`
	Pattern   string `json:"pattern" yaml:"pattern"`
}

// CurrencyDisplay is the locale's presentation for one currency code.
type CurrencyDisplay struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Name   string `json:"name" yaml:"name"`
}

// LocaleNumbers bundles all number-formatting data for one locale.
// Maps keyed by number system name ("latn", "arab", ...); the inner format
// maps are keyed by format name ("standard", "currency", "accounting",
// "percent", "scientific").
type LocaleNumbers struct {
	DefaultNumberSystem   string                             `json:"default_number_system" yaml:"default_number_system"`
	NumberSystems         map[string]string                  `json:"number_systems" yaml:"number_systems"`
	MinimumGroupingDigits int                                `json:"minimum_grouping_digits" yaml:"minimum_grouping_digits"`
	DefaultCurrency       string                             `json:"default_currency" yaml:"default_currency"`
	CurrencyFormatName    string                             `json:"currency_format" yaml:"currency_format"`
	Symbols               map[string]Symbols                 `json:"symbols" yaml:"symbols"`
	Formats               map[string]map[string]string       `json:"formats" yaml:"formats"`
	Compact               map[string]map[string][]CompactRung `json:"compact" yaml:"compact"`
	CurrencySpacing       map[string]SpacingRules            `json:"currency_spacing" yaml:"currency_spacing"`
	Currencies            map[string]CurrencyDisplay         `json:"currencies" yaml:"currencies"`
}

// NumberData is the root of the loadable dataset.
type NumberData struct {
	Locales map[string]LocaleNumbers `json:"locales" yaml:"locales"`
}
