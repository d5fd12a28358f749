package numfmt

import "sync"

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicit fallback chains, seeded from locale
// parent tags when no explicit chain is set.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[normalizeLocale(locale)] = append([]string(nil), fallbacks...)
}

// Resolve returns the fallback chain for locale, most specific first.
// Locales without an explicit chain fall back to their parent tags.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || locale == "" {
		return nil
	}
	key := normalizeLocale(locale)

	s.mu.RLock()
	chain, ok := s.chains[key]
	s.mu.RUnlock()
	if ok {
		return append([]string(nil), chain...)
	}

	return localeParentChain(key)
}
