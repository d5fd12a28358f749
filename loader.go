package numfmt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/default_number_data.json
var defaultNumberDataJSON []byte

// NumberDataLoader assembles a NumberData snapshot from the embedded default
// dataset, optional user-supplied data files, and per-locale override files.
// JSON and YAML files are distinguished by extension.
type NumberDataLoader struct {
	paths     []string
	overrides map[string]string
}

// NewNumberDataLoader creates a loader. Paths are merged over the embedded
// defaults in order, later files taking precedence.
func NewNumberDataLoader(paths ...string) *NumberDataLoader {
	return &NumberDataLoader{
		paths:     paths,
		overrides: make(map[string]string),
	}
}

// AddOverride registers a file whose contents replace or extend the data for
// one locale.
func (l *NumberDataLoader) AddOverride(locale, path string) {
	l.overrides[normalizeLocale(locale)] = path
}

// Load reads and merges all configured sources.
func (l *NumberDataLoader) Load() (*NumberData, error) {
	var data NumberData
	if err := json.Unmarshal(defaultNumberDataJSON, &data); err != nil {
		return nil, fmt.Errorf("parse default number data: %w", err)
	}
	if data.Locales == nil {
		data.Locales = make(map[string]LocaleNumbers)
	}

	for _, path := range l.paths {
		extra, err := decodeDataFile(path)
		if err != nil {
			return nil, err
		}
		mergeNumberData(&data, extra)
	}

	for locale, path := range l.overrides {
		if err := l.loadOverride(&data, locale, path); err != nil {
			return nil, err
		}
	}

	return &data, nil
}

func (l *NumberDataLoader) loadOverride(dest *NumberData, locale, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load number data override for %s: %w", locale, err)
	}

	var numbers LocaleNumbers
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &numbers); err != nil {
			return fmt.Errorf("parse override %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &numbers); err != nil {
			return fmt.Errorf("parse override %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported extension %s", filepath.Ext(path))
	}

	base := dest.Locales[locale]
	mergeLocaleNumbers(&base, &numbers)
	dest.Locales[locale] = base
	return nil
}

func decodeDataFile(path string) (*NumberData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load number data: %w", err)
	}

	var data NumberData
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse number data %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse number data %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", filepath.Ext(path))
	}
	return &data, nil
}

func mergeNumberData(dest, source *NumberData) {
	if source == nil || len(source.Locales) == 0 {
		return
	}
	if dest.Locales == nil {
		dest.Locales = make(map[string]LocaleNumbers, len(source.Locales))
	}
	for locale, numbers := range source.Locales {
		locale = normalizeLocale(locale)
		base := dest.Locales[locale]
		incoming := numbers
		mergeLocaleNumbers(&base, &incoming)
		dest.Locales[locale] = base
	}
}

// mergeLocaleNumbers merges source into dest, source taking precedence.
// Maps are merged key-wise so an override file can replace a single number
// system without restating the rest.
func mergeLocaleNumbers(dest, source *LocaleNumbers) {
	if source.DefaultNumberSystem != "" {
		dest.DefaultNumberSystem = source.DefaultNumberSystem
	}
	if source.MinimumGroupingDigits != 0 {
		dest.MinimumGroupingDigits = source.MinimumGroupingDigits
	}
	if source.DefaultCurrency != "" {
		dest.DefaultCurrency = source.DefaultCurrency
	}
	if source.CurrencyFormatName != "" {
		dest.CurrencyFormatName = source.CurrencyFormatName
	}

	if source.NumberSystems != nil {
		if dest.NumberSystems == nil {
			dest.NumberSystems = make(map[string]string, len(source.NumberSystems))
		}
		for k, v := range source.NumberSystems {
			dest.NumberSystems[k] = v
		}
	}
	if source.Symbols != nil {
		if dest.Symbols == nil {
			dest.Symbols = make(map[string]Symbols, len(source.Symbols))
		}
		for k, v := range source.Symbols {
			dest.Symbols[k] = v
		}
	}
	if source.Formats != nil {
		if dest.Formats == nil {
			dest.Formats = make(map[string]map[string]string, len(source.Formats))
		}
		for system, formats := range source.Formats {
			existing := dest.Formats[system]
			if existing == nil {
				existing = make(map[string]string, len(formats))
				dest.Formats[system] = existing
			}
			for name, pattern := range formats {
				existing[name] = pattern
			}
		}
	}
	if source.Compact != nil {
		if dest.Compact == nil {
			dest.Compact = make(map[string]map[string][]CompactRung, len(source.Compact))
		}
		for system, styles := range source.Compact {
			existing := dest.Compact[system]
			if existing == nil {
				existing = make(map[string][]CompactRung, len(styles))
				dest.Compact[system] = existing
			}
			for style, rungs := range styles {
				existing[style] = rungs
			}
		}
	}
	if source.CurrencySpacing != nil {
		if dest.CurrencySpacing == nil {
			dest.CurrencySpacing = make(map[string]SpacingRules, len(source.CurrencySpacing))
		}
		for k, v := range source.CurrencySpacing {
			dest.CurrencySpacing[k] = v
		}
	}
	if source.Currencies != nil {
		if dest.Currencies == nil {
			dest.Currencies = make(map[string]CurrencyDisplay, len(source.Currencies))
		}
		for k, v := range source.Currencies {
			dest.Currencies[k] = v
		}
	}
}
