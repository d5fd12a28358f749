package numfmt

import "golang.org/x/text/language"

// LocaleRegistry validates locale identifiers and supplies the ambient
// current locale for calls that omit one.
type LocaleRegistry interface {
	// Validate returns the canonical tag for identifier or ErrInvalidLocale.
	Validate(identifier string) (string, error)
	// Current returns the registry's default locale.
	Current() string
}

// TagLocaleRegistry validates identifiers through golang.org/x/text/language.
type TagLocaleRegistry struct {
	current string
}

var _ LocaleRegistry = (*TagLocaleRegistry)(nil)

// NewTagLocaleRegistry creates a registry whose Current() is the given locale.
func NewTagLocaleRegistry(current string) *TagLocaleRegistry {
	return &TagLocaleRegistry{current: normalizeLocale(current)}
}

func (r *TagLocaleRegistry) Validate(identifier string) (string, error) {
	normalized := normalizeLocale(identifier)
	if normalized == "" {
		return "", newConfigError(ErrInvalidLocale, "empty locale identifier")
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return "", newConfigError(ErrInvalidLocale, "%q: %v", identifier, err)
	}
	return tag.String(), nil
}

func (r *TagLocaleRegistry) Current() string {
	if r == nil {
		return ""
	}
	return r.current
}
