package numfmt

import (
	"fmt"
	"sync"
)

// Engine is the public formatting surface. It is safe for concurrent use:
// resolved configurations and compiled patterns are immutable, and the only
// shared mutable state is the pattern cache below.
type Engine struct {
	provider   DataProvider
	locales    LocaleRegistry
	currencies CurrencyRegistry
	rbnf       RBNFEngine
	resolver   *resolver

	defaultLocale string

	// pattern cache keyed by pattern+locale+system; compilation is pure,
	// so a concurrent miss may recompute and overwrite without locking
	// the computation itself
	mu       sync.RWMutex
	patterns map[string]*PatternMetadata
}

// New builds an Engine from functional options.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		provider:      cfg.Provider,
		locales:       cfg.LocaleRegistry,
		currencies:    cfg.CurrencyRegistry,
		rbnf:          cfg.RBNF,
		defaultLocale: cfg.DefaultLocale,
		patterns:      make(map[string]*PatternMetadata),
	}
	engine.resolver = &resolver{
		provider:   engine.provider,
		locales:    engine.locales,
		currencies: engine.currencies,
	}
	return engine, nil
}

// Context returns an explicit ambient-locale context for ToStringWith.
func (e *Engine) Context(locale string) Context {
	return Context{Locale: normalizeLocale(locale)}
}

// ToString renders value under the engine's default locale context.
func (e *Engine) ToString(value any, opts Options) (string, error) {
	return e.ToStringWith(Context{Locale: e.defaultLocale}, value, opts)
}

// ToStringWith renders value with an explicit context. It returns the
// formatted string or a structured error; no partial output is ever
// produced.
func (e *Engine) ToStringWith(ctx Context, value any, opts Options) (string, error) {
	num, err := toDecNumber(value)
	if err != nil {
		return "", err
	}

	cfg, err := e.resolver.resolve(num, ctx, opts)
	if err != nil {
		return "", err
	}

	if cfg.RuleBased != "" {
		if e.rbnf == nil {
			return "", newConfigError(ErrNoRBNFEngine, "format %q", cfg.RuleBased)
		}
		return e.rbnf.Render(value, cfg.RuleBased, cfg.Locale)
	}

	switch cfg.Format {
	case FormatDecimalShort, FormatDecimalLong, FormatCurrencyShort, FormatCurrencyLong:
		return e.renderCompact(num, cfg)
	}

	pattern, err := e.selectPattern(cfg)
	if err != nil {
		return "", err
	}

	meta, err := e.compiled(pattern, cfg)
	if err != nil {
		return "", err
	}

	return render(num, meta, cfg), nil
}

// MustToString is ToString for unchecked callers; it panics on any error.
func (e *Engine) MustToString(value any, opts Options) string {
	result, err := e.ToString(value, opts)
	if err != nil {
		panic(fmt.Sprintf("numfmt: %v", err))
	}
	return result
}

// selectPattern maps the resolved format descriptor to a pattern string,
// consulting the locale data for named layouts.
func (e *Engine) selectPattern(cfg *ResolvedConfig) (string, error) {
	if cfg.Format == FormatLiteral {
		return cfg.Pattern, nil
	}

	name := ""
	switch cfg.Format {
	case FormatStandard:
		name = "standard"
	case FormatCurrency:
		name = "currency"
	case FormatAccounting:
		name = "accounting"
	case FormatPercent:
		name = "percent"
	case FormatScientific:
		name = "scientific"
	}

	if name == "" {
		return "", &FormatNotFoundError{
			Locale:       cfg.Locale,
			NumberSystem: cfg.NumberSystem,
			Format:       cfg.Format.String(),
		}
	}

	pattern, ok := e.provider.Format(cfg.Locale, cfg.NumberSystem, name)
	if !ok {
		return "", &FormatNotFoundError{
			Locale:       cfg.Locale,
			NumberSystem: cfg.NumberSystem,
			Format:       name,
		}
	}
	return pattern, nil
}

// compiled returns cached metadata for pattern, compiling on a miss.
// A compile error from locale-supplied data propagates: it indicates
// corrupt external data and is never swallowed.
func (e *Engine) compiled(pattern string, cfg *ResolvedConfig) (*PatternMetadata, error) {
	key := pattern + "\x00" + cfg.Locale + "\x00" + cfg.NumberSystem

	e.mu.RLock()
	meta, ok := e.patterns[key]
	e.mu.RUnlock()
	if ok {
		return meta, nil
	}

	meta, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.patterns[key] = meta
	e.mu.Unlock()
	return meta, nil
}
