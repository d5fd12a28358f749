package numfmt

import "testing"

func renderTestConfig() *ResolvedConfig {
	return &ResolvedConfig{
		Locale:                "en",
		NumberSystem:          "latn",
		RoundingMode:          RoundHalfEven,
		CurrencyFracDigits:    -1,
		FractionalDigits:      -1,
		MinimumGroupingDigits: 1,
		Symbols: Symbols{
			Decimal:  ".",
			Group:    ",",
			Digits:   "0123456789",
			Percent:  "%",
			PerMille: "‰",
			Exponent: "E",
			Plus:     "+",
			Minus:    "-",
		},
	}
}

func renderString(t *testing.T, pattern, value string, mutate func(*ResolvedConfig)) string {
	t.Helper()

	meta, err := compilePattern(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	num, err := parseDecNumber(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}

	cfg := renderTestConfig()
	cfg.Negative = num.neg
	if mutate != nil {
		mutate(cfg)
	}
	return render(num, meta, cfg)
}

func TestRenderPlain(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    string
	}{
		{"grouping", "#,##0.###", "12345", "12,345"},
		{"grouping large", "#,##0", "1234567", "1,234,567"},
		{"indian grouping", "#,##,##0", "12345678", "1,23,45,678"},
		{"fraction rounding half even", "#,##0.##", "1.005", "1"},
		{"fraction padding", "0.00", "1.5", "1.50"},
		{"integer padding", "000", "7", "007"},
		{"max fraction truncates by rounding", "0.#", "1.26", "1.3"},
		{"zero", "#,##0.00", "0", "0.00"},
		{"negative synthesized", "#,##0.#", "-1234.5", "-1,234.5"},
		{"explicit negative affixes", "0.00;(0.00)", "-12.5", "(12.50)"},
		{"percent scales by 100", "#,##0%", "0.345", "34%"},
		{"percent rounds up past half", "#,##0%", "0.3456", "35%"},
		{"per-mille scales by 1000", "#0‰", "0.1234", "123‰"},
		{"literal affixes", "'#'0.0", "2.5", "#2.5"},
		{"wide minimum integer does not truncate", "00", "123", "123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := renderString(t, tc.pattern, tc.value, nil)
			if got != tc.want {
				t.Fatalf("render(%q, %s) = %q, want %q", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestRenderGroupingSuppression(t *testing.T) {
	// minimum grouping digits 2 with primary size 3 suppresses the separator
	// for four-digit integers but not five-digit ones
	got := renderString(t, "#,##0.##", "1345.32", func(cfg *ResolvedConfig) {
		cfg.MinimumGroupingDigits = 2
	})
	if got != "1345.32" {
		t.Fatalf("four digits with min 2 = %q, want %q", got, "1345.32")
	}

	got = renderString(t, "#,##0.##", "13450.32", func(cfg *ResolvedConfig) {
		cfg.MinimumGroupingDigits = 2
	})
	if got != "13,450.32" {
		t.Fatalf("five digits with min 2 = %q, want %q", got, "13,450.32")
	}

	got = renderString(t, "#,##0.##", "1345.32", nil)
	if got != "1,345.32" {
		t.Fatalf("four digits with min 1 = %q, want %q", got, "1,345.32")
	}
}

func TestRenderSignificantDigits(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    string
	}{
		{"pads to minimum", "@@@", "12", "12.0"},
		{"rounds to maximum", "@@##", "12345", "12340"},
		{"fraction only", "@@", "0.1234", "0.12"},
		{"exact fit", "@@@", "1.23", "1.23"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := renderString(t, tc.pattern, tc.value, nil)
			if got != tc.want {
				t.Fatalf("render(%q, %s) = %q, want %q", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestRenderScientific(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    string
	}{
		{"keeps all significant digits", "#E0", "12345", "1.2345E4"},
		{"small value negative exponent", "#E0", "0.0012", "1.2E-3"},
		{"bounded mantissa", "0.0#E0", "12345", "1.23E4"},
		{"explicit plus", "0.0E+00", "12345", "1.2E+04"},
		{"engineering window", "##0.###E0", "12345", "12.345E3"},
		{"engineering below window", "##0.###E0", "1.2", "1.2E0"},
		{"zero", "#E0", "0", "0E0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := renderString(t, tc.pattern, tc.value, nil)
			if got != tc.want {
				t.Fatalf("render(%q, %s) = %q, want %q", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestRenderScientificFractionalDigitsOverride(t *testing.T) {
	tests := []struct {
		name  string
		value string
		frac  int
		want  string
	}{
		{"rounds mantissa", "12345", 2, "1.23E4"},
		{"integer mantissa", "12345", 0, "1E4"},
		{"pads mantissa", "1.5", 3, "1.500E0"},
		{"zero mantissa", "0", 2, "0.00E0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := renderString(t, "#E0", tc.value, func(cfg *ResolvedConfig) {
				cfg.FractionalDigits = tc.frac
			})
			if got != tc.want {
				t.Fatalf("render(%s, frac %d) = %q, want %q", tc.value, tc.frac, got, tc.want)
			}
		})
	}
}

func TestRenderFractionalDigitsOverride(t *testing.T) {
	got := renderString(t, "#,##0.###", "1.5", func(cfg *ResolvedConfig) {
		cfg.FractionalDigits = 3
	})
	if got != "1.500" {
		t.Fatalf("fractional override = %q, want %q", got, "1.500")
	}

	// explicit option beats currency-registry digits
	got = renderString(t, "0.00", "1.2345", func(cfg *ResolvedConfig) {
		cfg.CurrencyFracDigits = 2
		cfg.FractionalDigits = 1
	})
	if got != "1.2" {
		t.Fatalf("option over registry = %q, want %q", got, "1.2")
	}
}

func TestRenderDigitSubstitution(t *testing.T) {
	got := renderString(t, "#,##0.##", "1234.5", func(cfg *ResolvedConfig) {
		cfg.Symbols.Digits = "๐๑๒๓๔๕๖๗๘๙"
	})
	if got != "๑,๒๓๔.๕" {
		t.Fatalf("thai digits = %q", got)
	}
}

func TestRenderCurrencyAffixes(t *testing.T) {
	withUSD := func(cfg *ResolvedConfig) {
		cfg.Currency = "USD"
		cfg.CurrencyInfo = CurrencyDisplay{Symbol: "$", Name: "US Dollar"}
	}

	tests := []struct {
		name    string
		pattern string
		value   string
		mutate  func(*ResolvedConfig)
		want    string
	}{
		{"symbol", "¤#,##0.00", "1234.5", withUSD, "$1,234.50"},
		{"iso placeholder", "¤¤#,##0.00", "1234.5", withUSD, "USD1,234.50"},
		{"long name placeholder", "¤¤¤ #,##0.00", "1234.5", withUSD, "US Dollar 1,234.50"},
		{
			"iso variant rewrites symbol",
			"¤#,##0.00",
			"1234.5",
			func(cfg *ResolvedConfig) {
				withUSD(cfg)
				cfg.CurrencySymbol = SymbolIso
			},
			"USD1,234.50",
		},
		{
			"none variant drops the symbol",
			"¤#,##0.00",
			"1234.5",
			func(cfg *ResolvedConfig) {
				withUSD(cfg)
				cfg.CurrencySymbol = SymbolNone
			},
			"1,234.50",
		},
		{
			"symbol falls back to code",
			"¤#,##0.00",
			"12",
			func(cfg *ResolvedConfig) {
				cfg.Currency = "XTS"
			},
			"XTS12.00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := renderString(t, tc.pattern, tc.value, tc.mutate)
			if got != tc.want {
				t.Fatalf("render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderCurrencySpacing(t *testing.T) {
	spacing := &SpacingRules{
		Before: SpacingSide{CurrencyMatch: "letter", SurroundingMatch: "digit", InsertBetween: " "},
		After:  SpacingSide{CurrencyMatch: "letter", SurroundingMatch: "digit", InsertBetween: " "},
	}

	// letter-final currency text gets a spacer before digits
	got := renderString(t, "¤#,##0.00", "12", func(cfg *ResolvedConfig) {
		cfg.Currency = "CHF"
		cfg.Spacing = spacing
	})
	if got != "CHF 12.00" {
		t.Fatalf("letter boundary = %q", got)
	}

	// symbol-final currency text does not
	got = renderString(t, "¤#,##0.00", "12", func(cfg *ResolvedConfig) {
		cfg.Currency = "USD"
		cfg.CurrencyInfo = CurrencyDisplay{Symbol: "$"}
		cfg.Spacing = spacing
	})
	if got != "$12.00" {
		t.Fatalf("symbol boundary = %q", got)
	}

	// spacing only fires at a currency-token boundary, not a literal one
	got = renderString(t, "'x'#,##0.00", "12", func(cfg *ResolvedConfig) {
		cfg.Spacing = spacing
	})
	if got != "x12.00" {
		t.Fatalf("literal boundary = %q", got)
	}
}
