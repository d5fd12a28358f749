package numfmt

// RBNFEngine renders numbers through rule-based rulesets (spellout,
// ordinal, roman numerals). The package never implements rules itself;
// formats naming a ruleset bypass the pattern compiler and renderer and
// delegate here.
type RBNFEngine interface {
	// Render formats value with the named ruleset for locale. It returns a
	// *NoRuleError when no rule covers the value.
	Render(value any, ruleset, locale string) (string, error)
}

// RBNFEngineFunc adapts a bare function to RBNFEngine.
type RBNFEngineFunc func(value any, ruleset, locale string) (string, error)

func (fn RBNFEngineFunc) Render(value any, ruleset, locale string) (string, error) {
	return fn(value, ruleset, locale)
}
