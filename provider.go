package numfmt

import "sort"

// DataProvider exposes read-only access to locale number-formatting data.
// Implementations resolve through the locale fallback chain so a regional
// variant inherits everything it does not redefine.
type DataProvider interface {
	// Symbols returns the glyph set for locale and number system.
	Symbols(locale, system string) (Symbols, bool)
	// Formats returns the named pattern table for locale and number system.
	Formats(locale, system string) (map[string]string, bool)
	// Format returns a single named pattern.
	Format(locale, system, name string) (string, bool)
	// CurrencySpacing returns the spacing rule, ok=false when none is defined.
	CurrencySpacing(locale, system string) (SpacingRules, bool)
	// NumberSystems returns the generic-category map (default/native/...).
	NumberSystems(locale string) map[string]string
	// DefaultNumberSystem returns the concrete default system for locale.
	DefaultNumberSystem(locale string) string
	// DefaultCurrency returns the locale's default currency code, or "".
	DefaultCurrency(locale string) string
	// CurrencyFormatName returns the pattern name the locale mandates for
	// currency amounts (for example "accounting"), or "".
	CurrencyFormatName(locale string) string
	// MinimumGroupingDigits returns the locale's grouping suppression floor.
	MinimumGroupingDigits(locale string) int
	// CompactPatterns returns the compact ladder for the style, or nil.
	CompactPatterns(locale, system, style string) []CompactRung
	// CurrencyDisplay returns the locale's presentation of a currency code.
	CurrencyDisplay(locale, code string) (CurrencyDisplay, bool)
	// Locales returns the locales present in the dataset.
	Locales() []string
}

// StaticProvider is an in-memory DataProvider, read only after construction.
type StaticProvider struct {
	data     *NumberData
	resolver FallbackResolver
	locales  []string
}

var _ DataProvider = (*StaticProvider)(nil)

// NewStaticProvider builds a provider over an immutable data snapshot.
func NewStaticProvider(data *NumberData, resolver FallbackResolver) *StaticProvider {
	if data == nil {
		data = &NumberData{}
	}
	locales := make([]string, 0, len(data.Locales))
	for locale := range data.Locales {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	return &StaticProvider{data: data, resolver: resolver, locales: locales}
}

func (p *StaticProvider) candidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if p.resolver != nil {
		for _, parent := range p.resolver.Resolve(locale) {
			if parent == "" || parent == locale {
				continue
			}
			chain = append(chain, parent)
		}
	} else {
		chain = append(chain, localeParentChain(locale)...)
	}
	return chain
}

func (p *StaticProvider) Symbols(locale, system string) (Symbols, bool) {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if symbols, ok := numbers.Symbols[system]; ok {
				return symbols, true
			}
		}
	}
	return Symbols{}, false
}

func (p *StaticProvider) Formats(locale, system string) (map[string]string, bool) {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if formats, ok := numbers.Formats[system]; ok {
				return formats, true
			}
		}
	}
	return nil, false
}

func (p *StaticProvider) Format(locale, system, name string) (string, bool) {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if formats, ok := numbers.Formats[system]; ok {
				if pattern, ok := formats[name]; ok {
					return pattern, true
				}
			}
		}
	}
	return "", false
}

func (p *StaticProvider) CurrencySpacing(locale, system string) (SpacingRules, bool) {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if rules, ok := numbers.CurrencySpacing[system]; ok {
				return rules, true
			}
		}
	}
	return SpacingRules{}, false
}

func (p *StaticProvider) NumberSystems(locale string) map[string]string {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if len(numbers.NumberSystems) > 0 {
				return numbers.NumberSystems
			}
		}
	}
	return nil
}

func (p *StaticProvider) DefaultNumberSystem(locale string) string {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if numbers.DefaultNumberSystem != "" {
				return numbers.DefaultNumberSystem
			}
		}
	}
	return ""
}

func (p *StaticProvider) DefaultCurrency(locale string) string {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if numbers.DefaultCurrency != "" {
				return numbers.DefaultCurrency
			}
		}
	}
	return ""
}

func (p *StaticProvider) CurrencyFormatName(locale string) string {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if numbers.CurrencyFormatName != "" {
				return numbers.CurrencyFormatName
			}
		}
	}
	return ""
}

func (p *StaticProvider) MinimumGroupingDigits(locale string) int {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if numbers.MinimumGroupingDigits != 0 {
				return numbers.MinimumGroupingDigits
			}
		}
	}
	return 1
}

func (p *StaticProvider) CompactPatterns(locale, system, style string) []CompactRung {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if styles, ok := numbers.Compact[system]; ok {
				if rungs, ok := styles[style]; ok {
					return rungs
				}
			}
		}
	}
	return nil
}

func (p *StaticProvider) CurrencyDisplay(locale, code string) (CurrencyDisplay, bool) {
	for _, candidate := range p.candidates(locale) {
		if numbers, ok := p.data.Locales[candidate]; ok {
			if display, ok := numbers.Currencies[code]; ok {
				return display, true
			}
		}
	}
	return CurrencyDisplay{}, false
}

func (p *StaticProvider) Locales() []string {
	return append([]string(nil), p.locales...)
}
