package numfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// ResolvedConfig is the fully-resolved, immutable configuration for one
// rendering call. It is built fresh per call and never shared mutably.
type ResolvedConfig struct {
	Locale       string
	NumberSystem string

	Format  Format
	Pattern string // literal pattern when Format is FormatLiteral

	Currency           string
	CurrencyDigits     CurrencyDigitMode
	CurrencySymbol     CurrencySymbolVariant
	CurrencyInfo       CurrencyDisplay
	CurrencyFracDigits int // -1 when no registry opinion applies

	MinimumGroupingDigits int
	RoundingMode          RoundingMode
	FractionalDigits      int // -1 when not overridden

	Negative bool
	Symbols  Symbols
	Spacing  *SpacingRules

	// RuleBased names a spellout/ordinal/roman ruleset; when set the
	// pattern compiler and renderer are bypassed entirely.
	RuleBased string
}

// resolver merges caller options with defaults and locale-derived facts.
// Stages run in a fixed order; later stages read earlier results, so the
// order itself is a correctness invariant.
type resolver struct {
	provider   DataProvider
	locales    LocaleRegistry
	currencies CurrencyRegistry
}

type resolveState struct {
	raw *rawOptions
	num decNumber
	ctx Context
	cfg ResolvedConfig
}

type resolveStage struct {
	name string
	run  func(*resolver, *resolveState) error
}

// resolutionStages is the pipeline. Locale before number system, number
// system before spacing, format before symbol rewriting, symbols last.
var resolutionStages = []resolveStage{
	{"locale", (*resolver).resolveLocale},
	{"number_system", (*resolver).resolveNumberSystem},
	{"currency", (*resolver).resolveCurrency},
	{"format", (*resolver).resolveFormat},
	{"currency_digits", (*resolver).resolveCurrencyDigits},
	{"currency_spacing", (*resolver).resolveCurrencySpacing},
	{"currency_symbol", (*resolver).resolveCurrencySymbol},
	{"grouping", (*resolver).resolveGrouping},
	{"rounding", (*resolver).resolveRounding},
	{"sign", (*resolver).resolveSign},
	{"symbols", (*resolver).resolveSymbols},
}

// resolve runs the full pipeline. The first failing stage halts the chain;
// no partial configuration is ever returned.
func (r *resolver) resolve(num decNumber, ctx Context, opts Options) (*ResolvedConfig, error) {
	raw, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	state := &resolveState{raw: raw, num: num, ctx: ctx}
	state.cfg.FractionalDigits = -1
	state.cfg.CurrencyFracDigits = -1

	for _, stage := range resolutionStages {
		if err := stage.run(r, state); err != nil {
			return nil, err
		}
		if state.cfg.RuleBased != "" {
			// rule-based rendering bypasses everything downstream
			break
		}
	}

	cfg := state.cfg
	return &cfg, nil
}

func (r *resolver) resolveLocale(state *resolveState) error {
	if state.raw.locale == "" {
		locale := state.ctx.Locale
		if locale == "" {
			locale = r.locales.Current()
		}
		state.cfg.Locale = normalizeLocale(locale)
		return nil
	}

	validated, err := r.locales.Validate(state.raw.locale)
	if err != nil {
		return err
	}
	state.cfg.Locale = validated
	return nil
}

func (r *resolver) resolveNumberSystem(state *resolveState) error {
	locale := state.cfg.Locale
	requested := state.raw.numberSystem

	if requested == "" || requested == "default" {
		system := r.provider.DefaultNumberSystem(locale)
		if system == "" {
			system = "latn"
		}
		state.cfg.NumberSystem = system
		return nil
	}

	systems := r.provider.NumberSystems(locale)

	// generic categories resolve to the locale's concrete system
	switch requested {
	case "native", "traditional", "finance":
		if concrete, ok := systems[requested]; ok && concrete != "" {
			state.cfg.NumberSystem = concrete
			return nil
		}
		return newConfigError(ErrUnknownNumberSystem,
			"no %s number system for locale %q", requested, locale)
	}

	// explicit name: must be a member of the locale's known systems
	for _, concrete := range systems {
		if concrete == requested {
			state.cfg.NumberSystem = requested
			return nil
		}
	}
	if requested == r.provider.DefaultNumberSystem(locale) {
		state.cfg.NumberSystem = requested
		return nil
	}
	return newConfigError(ErrUnknownNumberSystem,
		"%q is not defined for locale %q", requested, locale)
}

func (r *resolver) resolveCurrency(state *resolveState) error {
	if state.raw.currency != "" {
		code, err := r.currencies.Validate(state.raw.currency)
		if err != nil {
			return err
		}
		state.cfg.Currency = code
		return nil
	}

	// a currency carried on the locale identifier itself ("en-u-cu-jpy")
	if tag, err := language.Parse(state.cfg.Locale); err == nil {
		if code := tag.TypeForKey("cu"); code != "" {
			validated, err := r.currencies.Validate(code)
			if err != nil {
				return err
			}
			state.cfg.Currency = validated
			return nil
		}
	}

	// the locale's own default currency backs a currency-shaped request
	// that names no code
	if wantsCurrencyFormat(state.raw) {
		if code := r.provider.DefaultCurrency(state.cfg.Locale); code != "" {
			validated, err := r.currencies.Validate(code)
			if err != nil {
				return err
			}
			state.cfg.Currency = validated
		}
	}

	return nil
}

func wantsCurrencyFormat(raw *rawOptions) bool {
	switch raw.formatName {
	case "currency", "accounting", "currency_short", "currency_long":
		return true
	}
	return strings.Contains(raw.formatLiteral, "¤")
}

func (r *resolver) resolveFormat(state *resolveState) error {
	raw := state.raw
	cfg := &state.cfg

	if raw.ruleBased != "" {
		cfg.RuleBased = raw.ruleBased
		return nil
	}

	switch {
	case raw.formatLiteral != "":
		cfg.Format = FormatLiteral
		cfg.Pattern = raw.formatLiteral
	case !raw.formatSet || raw.formatName == "":
		if cfg.Currency != "" {
			cfg.Format = FormatCurrency
		} else {
			cfg.Format = FormatStandard
		}
	case raw.formatName == "short":
		if cfg.Currency != "" {
			cfg.Format = FormatCurrencyShort
		} else {
			cfg.Format = FormatDecimalShort
		}
	case raw.formatName == "long":
		if cfg.Currency != "" {
			cfg.Format = FormatCurrencyLong
		} else {
			cfg.Format = FormatDecimalLong
		}
	default:
		format := namedFormats[raw.formatName]
		// a currency code implies a currency-shaped layout
		if cfg.Currency != "" && !format.isCurrencyShaped() {
			format = FormatCurrency
		}
		cfg.Format = format
	}

	if currencyShapedConfig(cfg) && cfg.Currency == "" {
		return newConfigError(ErrMissingCurrency, "format %s", cfg.Format)
	}

	// the locale may mandate a different layout for currency amounts
	if cfg.Format == FormatCurrency {
		if override := r.provider.CurrencyFormatName(cfg.Locale); override == "accounting" {
			cfg.Format = FormatAccounting
		}
	}

	return nil
}

func (r *resolver) resolveCurrencyDigits(state *resolveState) error {
	raw := state.raw
	cfg := &state.cfg

	switch {
	case raw.currencyDigitsSet:
		cfg.CurrencyDigits = raw.currencyDigits
	case raw.cashSet:
		if raw.cash {
			cfg.CurrencyDigits = DigitsCash
		} else {
			cfg.CurrencyDigits = DigitsAccounting
		}
	default:
		cfg.CurrencyDigits = DigitsAccounting
	}

	// registry digits drive full currency layouts; compact forms keep the
	// ladder pattern's own digit shape
	if cfg.Currency != "" {
		switch {
		case cfg.Format == FormatCurrency, cfg.Format == FormatAccounting,
			cfg.Format == FormatLiteral && strings.Contains(cfg.Pattern, "¤"):
			cfg.CurrencyFracDigits = r.currencies.Digits(cfg.Currency, cfg.CurrencyDigits)
		}
	}
	return nil
}

func currencyShapedConfig(cfg *ResolvedConfig) bool {
	return cfg.Format.isCurrencyShaped() ||
		(cfg.Format == FormatLiteral && strings.Contains(cfg.Pattern, "¤"))
}

func (r *resolver) resolveCurrencySpacing(state *resolveState) error {
	cfg := &state.cfg
	if !currencyShapedConfig(cfg) {
		return nil
	}
	if rules, ok := r.provider.CurrencySpacing(cfg.Locale, cfg.NumberSystem); ok {
		cfg.Spacing = &rules
	}
	return nil
}

func (r *resolver) resolveCurrencySymbol(state *resolveState) error {
	raw := state.raw
	cfg := &state.cfg

	if raw.currencySymbolSet {
		cfg.CurrencySymbol = raw.currencySymbol
	}

	// the Iso variant rewrites a literal pattern's single placeholder into
	// the doubled form once, at resolution time
	if cfg.CurrencySymbol == SymbolIso && cfg.Format == FormatLiteral {
		cfg.Pattern = doubleCurrencyPlaceholder(cfg.Pattern)
	}

	if cfg.Currency != "" {
		if display, ok := r.provider.CurrencyDisplay(cfg.Locale, cfg.Currency); ok {
			cfg.CurrencyInfo = display
		} else {
			cfg.CurrencyInfo = CurrencyDisplay{Symbol: cfg.Currency, Name: cfg.Currency}
		}
	}
	return nil
}

// doubleCurrencyPlaceholder rewrites each run of exactly one ¤ into ¤¤,
// leaving quoted literals untouched.
func doubleCurrencyPlaceholder(pattern string) string {
	var b strings.Builder
	inQuote := false
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '¤' && !inQuote:
			run := 1
			for i+run < len(runes) && runes[i+run] == '¤' {
				run++
			}
			if run == 1 {
				b.WriteString("¤¤")
			} else {
				b.WriteString(strings.Repeat("¤", run))
			}
			i += run - 1
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (r *resolver) resolveGrouping(state *resolveState) error {
	if state.raw.minGrouping >= 0 {
		state.cfg.MinimumGroupingDigits = state.raw.minGrouping
		return nil
	}
	state.cfg.MinimumGroupingDigits = r.provider.MinimumGroupingDigits(state.cfg.Locale)
	return nil
}

func (r *resolver) resolveRounding(state *resolveState) error {
	if state.raw.roundingSet {
		state.cfg.RoundingMode = state.raw.rounding
	} else {
		state.cfg.RoundingMode = RoundHalfEven
	}
	state.cfg.FractionalDigits = state.raw.fractionalDigits
	return nil
}

func (r *resolver) resolveSign(state *resolveState) error {
	state.cfg.Negative = state.num.neg && !state.num.isZero()
	return nil
}

func (r *resolver) resolveSymbols(state *resolveState) error {
	cfg := &state.cfg
	symbols, ok := r.provider.Symbols(cfg.Locale, cfg.NumberSystem)
	if !ok {
		return &FormatNotFoundError{
			Locale:       cfg.Locale,
			NumberSystem: cfg.NumberSystem,
			Format:       cfg.Format.String(),
		}
	}
	cfg.Symbols = symbols
	return nil
}
