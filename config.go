package numfmt

// Config captures engine setup: locale data sources, fallback resolution,
// and the external registries the resolver consults.
type Config struct {
	DefaultLocale    string
	Loader           *NumberDataLoader
	Provider         DataProvider
	Resolver         FallbackResolver
	LocaleRegistry   LocaleRegistry
	CurrencyRegistry CurrencyRegistry
	RBNF             RBNFEngine

	dataPaths     []string
	dataOverrides map[string]string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Provider == nil {
		loader := cfg.Loader
		if loader == nil {
			loader = NewNumberDataLoader(cfg.dataPaths...)
			for locale, path := range cfg.dataOverrides {
				loader.AddOverride(locale, path)
			}
		}
		data, err := loader.Load()
		if err != nil {
			return nil, err
		}
		cfg.Provider = NewStaticProvider(data, cfg.Resolver)
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}

	if cfg.LocaleRegistry == nil {
		cfg.LocaleRegistry = NewTagLocaleRegistry(cfg.DefaultLocale)
	}

	// the default locale must itself be valid
	validated, err := cfg.LocaleRegistry.Validate(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}
	cfg.DefaultLocale = validated

	if cfg.CurrencyRegistry == nil {
		cfg.CurrencyRegistry = ISOCurrencyRegistry{}
	}

	return cfg, nil
}

// WithDefaultLocale sets the ambient locale used when a call names none.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithDataPath adds a number-data file merged over the embedded defaults.
func WithDataPath(paths ...string) Option {
	return func(c *Config) error {
		c.dataPaths = append(c.dataPaths, paths...)
		c.Provider = nil
		return nil
	}
}

// WithDataOverride adds a locale-specific number-data override file.
func WithDataOverride(locale, path string) Option {
	return func(c *Config) error {
		if c.dataOverrides == nil {
			c.dataOverrides = make(map[string]string)
		}
		c.dataOverrides[locale] = path
		c.Provider = nil
		return nil
	}
}

// WithLoader replaces the data loader entirely.
func WithLoader(loader *NumberDataLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		c.Provider = nil
		return nil
	}
}

// WithProvider injects a prebuilt data provider.
func WithProvider(provider DataProvider) Option {
	return func(c *Config) error {
		c.Provider = provider
		return nil
	}
}

// WithFallbackResolver replaces the locale fallback resolver.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback sets an explicit fallback chain for one locale.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocaleRegistry replaces the locale validation registry.
func WithLocaleRegistry(registry LocaleRegistry) Option {
	return func(c *Config) error {
		c.LocaleRegistry = registry
		return nil
	}
}

// WithCurrencyRegistry replaces the currency registry.
func WithCurrencyRegistry(registry CurrencyRegistry) Option {
	return func(c *Config) error {
		c.CurrencyRegistry = registry
		return nil
	}
}

// WithRBNFEngine wires the rule-based engine consulted for spellout,
// ordinal, and roman formats.
func WithRBNFEngine(engine RBNFEngine) Option {
	return func(c *Config) error {
		c.RBNF = engine
		return nil
	}
}
