package numfmt

import (
	"reflect"
	"testing"
)

func newTestProvider(t *testing.T, resolver FallbackResolver) *StaticProvider {
	t.Helper()

	data, err := NewNumberDataLoader().Load()
	if err != nil {
		t.Fatalf("load default data: %v", err)
	}
	if resolver == nil {
		resolver = NewStaticFallbackResolver()
	}
	return NewStaticProvider(data, resolver)
}

func TestProviderFallbackChain(t *testing.T) {
	p := newTestProvider(t, nil)

	// en-GB defines only its default currency; everything else inherits
	// from en through the parent chain
	if got := p.DefaultCurrency("en-GB"); got != "GBP" {
		t.Fatalf("en-GB default currency = %q, want GBP", got)
	}

	symbols, ok := p.Symbols("en-GB", "latn")
	if !ok {
		t.Fatal("en-GB symbols not inherited")
	}
	if symbols.Decimal != "." || symbols.Group != "," {
		t.Fatalf("inherited symbols = %+v", symbols)
	}

	pattern, ok := p.Format("en-GB", "latn", "currency")
	if !ok || pattern != "¤#,##0.00" {
		t.Fatalf("inherited currency pattern = %q ok=%v", pattern, ok)
	}

	display, ok := p.CurrencyDisplay("en-GB", "GBP")
	if !ok || display.Symbol != "£" {
		t.Fatalf("inherited display = %+v ok=%v", display, ok)
	}
}

func TestProviderExplicitFallback(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("x-klingon", "de")

	p := newTestProvider(t, resolver)

	symbols, ok := p.Symbols("x-klingon", "latn")
	if !ok {
		t.Fatal("explicit fallback not consulted")
	}
	if symbols.Decimal != "," || symbols.Group != "." {
		t.Fatalf("fallback symbols = %+v, want de's", symbols)
	}
}

func TestProviderMisses(t *testing.T) {
	p := newTestProvider(t, nil)

	if _, ok := p.Symbols("zz", "latn"); ok {
		t.Fatal("unknown locale must miss")
	}
	if _, ok := p.Format("en", "latn", "unheard-of"); ok {
		t.Fatal("unknown format name must miss")
	}
	if _, ok := p.CurrencySpacing("en", "latn"); ok {
		t.Fatal("en carries no spacing rules")
	}
	if rules, ok := p.CurrencySpacing("de", "latn"); !ok || rules.Before.InsertBetween == "" {
		t.Fatalf("de spacing = %+v ok=%v", rules, ok)
	}
	if got := p.MinimumGroupingDigits("zz"); got != 1 {
		t.Fatalf("unknown locale grouping floor = %d, want 1", got)
	}
	if got := p.CompactPatterns("fr", "latn", "decimal-short"); got != nil {
		t.Fatalf("fr compact = %v, want nil", got)
	}
}

func TestProviderLocales(t *testing.T) {
	p := newTestProvider(t, nil)

	locales := p.Locales()
	if len(locales) == 0 {
		t.Fatal("no locales reported")
	}
	if !sortedStrings(locales) {
		t.Fatalf("locales not sorted: %v", locales)
	}

	want := map[string]bool{"en": false, "es": false, "ar": false, "th": false}
	for _, locale := range locales {
		if _, ok := want[locale]; ok {
			want[locale] = true
		}
	}
	for locale, seen := range want {
		if !seen {
			t.Fatalf("locale %q missing from %v", locale, locales)
		}
	}
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

func TestFallbackResolverParentChain(t *testing.T) {
	resolver := NewStaticFallbackResolver()

	got := resolver.Resolve("pt-BR")
	if len(got) == 0 || got[0] != "pt" {
		t.Fatalf("pt-BR chain = %v, want pt first", got)
	}

	resolver.Set("pt-BR", "es", "en")
	if got := resolver.Resolve("pt-BR"); !reflect.DeepEqual(got, []string{"es", "en"}) {
		t.Fatalf("explicit chain = %v", got)
	}

	// other locales keep their derived chains
	if got := resolver.Resolve("fr-CA"); len(got) == 0 || got[0] != "fr" {
		t.Fatalf("fr-CA chain = %v", got)
	}
}

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{"en-GB", []string{"en"}},
		{"pt-BR", []string{"pt"}},
		{"en", nil},
		{"", nil},
		// identifiers the tag parser rejects shed hyphenated subtags
		{"zz-Zzzz-ZZ", []string{"zz-Zzzz", "zz"}},
	}

	for _, tc := range tests {
		got := localeParentChain(tc.locale)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("localeParentChain(%q) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}
