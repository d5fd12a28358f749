package numfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// render produces the final string for num under metadata and config. It is
// total: once the resolver and compiler have accepted their inputs, every
// value renders.
func render(num decNumber, meta *PatternMetadata, cfg *ResolvedConfig) string {
	sub := meta.forSign(cfg.Negative)

	// implicit scale from % or ‰
	num = shiftDec(num, meta.scalePow)

	var body string
	if sub.scientific {
		body = renderScientific(num, sub, cfg)
	} else {
		body = renderPlain(num, sub, cfg)
	}

	prefix, prefixKind := renderAffix(sub.prefix, cfg)
	suffix, suffixKind := renderAffix(sub.suffix, cfg)

	prefix = applySpacing(prefix, body, prefixKind, cfg, true)
	suffix = applySpacing(suffix, body, suffixKind, cfg, false)

	return prefix + body + suffix
}

// renderPlain handles steps 3-7 and 9: digit counts, rounding, padding,
// grouping, and glyph substitution.
func renderPlain(num decNumber, sub *subPattern, cfg *ResolvedConfig) string {
	minFrac, maxFrac, _ := fractionBounds(sub, cfg)

	if sub.minSig > 0 {
		return renderSignificant(num, sub, cfg)
	}

	num = roundDec(num, maxFrac, cfg.RoundingMode)

	intPart, fracPart := intFracParts(num)
	intPart = padInteger(intPart, sub)
	fracPart = padFraction(fracPart, minFrac, maxFrac)

	intPart = groupDigits(intPart, sub, cfg)

	return substituteDigits(joinParts(intPart, fracPart, cfg), cfg.Symbols)
}

// fractionBounds applies the override precedence: an explicit
// fractional-digits option beats currency-registry digits, which beat the
// pattern's own fraction counts. overridden reports whether anything beyond
// the pattern supplied the bounds.
func fractionBounds(sub *subPattern, cfg *ResolvedConfig) (minFrac, maxFrac int, overridden bool) {
	minFrac, maxFrac = sub.minFrac, sub.maxFrac
	if cfg.CurrencyFracDigits >= 0 {
		minFrac, maxFrac, overridden = cfg.CurrencyFracDigits, cfg.CurrencyFracDigits, true
	}
	if cfg.FractionalDigits >= 0 {
		minFrac, maxFrac, overridden = cfg.FractionalDigits, cfg.FractionalDigits, true
	}
	return minFrac, maxFrac, overridden
}

// renderSignificant formats in significant-digit mode: the integer/fraction
// split is whatever yields the requested significant-digit count.
func renderSignificant(num decNumber, sub *subPattern, cfg *ResolvedConfig) string {
	num = roundDecSignificant(num, sub.maxSig, cfg.RoundingMode)

	intPart, fracPart := intFracParts(num)

	// pad trailing fraction zeros up to the minimum significant count
	sig := significantCount(intPart, fracPart)
	if sig < sub.minSig {
		fracPart += strings.Repeat("0", sub.minSig-sig)
	}

	if intPart == "" {
		intPart = "0"
	}
	intPart = groupDigits(intPart, sub, cfg)

	return substituteDigits(joinParts(intPart, fracPart, cfg), cfg.Symbols)
}

func significantCount(intPart, fracPart string) int {
	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		return 0
	}
	return len(digits)
}

// renderScientific handles step 8: mantissa normalization, exponent
// computation, and exponent-digit padding.
func renderScientific(num decNumber, sub *subPattern, cfg *ResolvedConfig) string {
	minFrac, maxFrac, overridden := fractionBounds(sub, cfg)

	if num.isZero() {
		mantissa := padFraction("", minFrac, maxFrac)
		body := joinParts("0", mantissa, cfg)
		return substituteDigits(body, cfg.Symbols) + exponentText(0, sub, cfg)
	}

	// limit mantissa precision before choosing the exponent so rounding
	// cannot shift the magnitude afterwards. A pattern maxFrac of zero keeps
	// every significant digit; an override of zero really means zero.
	if maxFrac > 0 || overridden {
		intDigits := scientificIntDigits(num, sub)
		num = roundDecSignificant(num, intDigits+maxFrac, cfg.RoundingMode)
	}

	intDigits := scientificIntDigits(num, sub)
	exponent := num.exponent() - intDigits

	coef := num.coef
	intPart := coef
	fracPart := ""
	if len(coef) > intDigits {
		intPart, fracPart = coef[:intDigits], coef[intDigits:]
	} else if len(coef) < intDigits {
		intPart = coef + strings.Repeat("0", intDigits-len(coef))
	}
	// trailing mantissa zeros fill optional digit slots only
	for len(fracPart) > minFrac && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	fracPart = padFraction(fracPart, minFrac, -1)

	body := joinParts(intPart, fracPart, cfg)
	return substituteDigits(body, cfg.Symbols) + exponentText(exponent, sub, cfg)
}

// scientificIntDigits picks the mantissa's integer digit count: a pattern
// whose integer window is wider than its minimum selects engineering-style
// exponents aligned to the window width.
func scientificIntDigits(num decNumber, sub *subPattern) int {
	window := sub.maxInt
	if window < 1 {
		window = 1
	}
	if window > 1 && window > sub.minInt {
		// engineering notation: exponent is a multiple of the window
		exp := num.exponent() - 1
		return ((exp%window)+window)%window + 1
	}
	if sub.minInt > 0 {
		return sub.minInt
	}
	return 1
}

func exponentText(exponent int, sub *subPattern, cfg *ResolvedConfig) string {
	digits := formatExponentDigits(exponent, sub.minExpDigits)

	var b strings.Builder
	b.WriteString(cfg.Symbols.Exponent)
	if exponent < 0 {
		b.WriteString(cfg.Symbols.Minus)
	} else if sub.expPlus {
		b.WriteString(cfg.Symbols.Plus)
	}
	b.WriteString(substituteDigits(digits, cfg.Symbols))
	return b.String()
}

func formatExponentDigits(exponent, minDigits int) string {
	if exponent < 0 {
		exponent = -exponent
	}
	digits := "0"
	if exponent > 0 {
		digits = ""
		for exponent > 0 {
			digits = string(rune('0'+exponent%10)) + digits
			exponent /= 10
		}
	}
	for len(digits) < minDigits {
		digits = "0" + digits
	}
	return digits
}

// padInteger pads with leading zeros to the minimum and truncates to the
// least-significant digits when an explicit maximum bound is set.
func padInteger(intPart string, sub *subPattern) string {
	for len(intPart) < sub.minInt {
		intPart = "0" + intPart
	}
	if sub.maxInt >= 0 && len(intPart) > sub.maxInt {
		intPart = intPart[len(intPart)-sub.maxInt:]
		intPart = strings.TrimLeft(intPart, "0")
	}
	if intPart == "" && sub.minInt > 0 {
		intPart = strings.Repeat("0", sub.minInt)
	}
	return intPart
}

// padFraction pads to the minimum; rounding has already enforced the
// maximum. maxFrac < 0 means unbounded.
func padFraction(fracPart string, minFrac, maxFrac int) string {
	if maxFrac >= 0 && len(fracPart) > maxFrac {
		fracPart = fracPart[:maxFrac]
	}
	for len(fracPart) < minFrac {
		fracPart += "0"
	}
	return fracPart
}

// groupDigits inserts grouping separators from the decimal point outward.
// Grouping is suppressed entirely when the minimum grouping digits plus the
// primary size exceed the run's digit count.
func groupDigits(intPart string, sub *subPattern, cfg *ResolvedConfig) string {
	if sub.groupPrimary <= 0 || sub.scientific {
		return intPart
	}
	if cfg.MinimumGroupingDigits+sub.groupPrimary > len(intPart) {
		return intPart
	}

	secondary := sub.groupSecondary
	if secondary <= 0 {
		secondary = sub.groupPrimary
	}

	var groups []string
	rest := intPart
	cut := sub.groupPrimary
	for len(rest) > cut {
		groups = append([]string{rest[len(rest)-cut:]}, groups...)
		rest = rest[:len(rest)-cut]
		cut = secondary
	}
	groups = append([]string{rest}, groups...)

	// the group separator is substituted to the locale glyph later; keep a
	// placeholder that cannot collide with digits
	return strings.Join(groups, "\x01")
}

func joinParts(intPart, fracPart string, cfg *ResolvedConfig) string {
	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" {
		return intPart
	}
	return intPart + "\x02" + fracPart
}

// substituteDigits maps ASCII digits and the separator placeholders to the
// locale's glyphs.
func substituteDigits(body string, symbols Symbols) string {
	digits := []rune(symbols.Digits)
	useGlyphs := len(digits) == 10

	var b strings.Builder
	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
			if useGlyphs {
				b.WriteRune(digits[r-'0'])
			} else {
				b.WriteRune(r)
			}
		case r == '\x01':
			b.WriteString(symbols.Group)
		case r == '\x02':
			b.WriteString(symbols.Decimal)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// renderAffix expands affix tokens into text. The returned kind is the kind
// of the token adjacent to the numeric body (the last for a prefix, the
// first for a suffix is resolved by the caller's boundary argument; here we
// report the kind nearest each end and the caller picks).
func renderAffix(tokens []affixToken, cfg *ResolvedConfig) (string, []affixKind) {
	if len(tokens) == 0 {
		return "", nil
	}

	kinds := make([]affixKind, 0, len(tokens))
	var b strings.Builder
	for _, token := range tokens {
		switch token.kind {
		case affixLiteral:
			b.WriteString(token.text)
		case affixCurrency:
			b.WriteString(currencyText(token.arity, cfg))
		case affixPercent:
			b.WriteString(cfg.Symbols.Percent)
		case affixPerMille:
			b.WriteString(cfg.Symbols.PerMille)
		case affixMinus:
			b.WriteString(cfg.Symbols.Minus)
		case affixPlus:
			b.WriteString(cfg.Symbols.Plus)
		}
		kinds = append(kinds, token.kind)
	}
	return b.String(), kinds
}

// currencyText resolves the placeholder per arity and the configured
// symbol variant.
func currencyText(arity int, cfg *ResolvedConfig) string {
	if cfg.CurrencySymbol == SymbolNone {
		return ""
	}
	switch {
	case arity >= 3 || cfg.CurrencySymbol == SymbolLongName:
		if cfg.CurrencyInfo.Name != "" {
			return cfg.CurrencyInfo.Name
		}
		return cfg.Currency
	case arity == 2 || cfg.CurrencySymbol == SymbolIso:
		return cfg.Currency
	default:
		if cfg.CurrencyInfo.Symbol != "" {
			return cfg.CurrencyInfo.Symbol
		}
		return cfg.Currency
	}
}

// applySpacing inserts the locale's currency spacer at the boundary between
// currency text and the numeric body when the adjacent characters call for
// one.
func applySpacing(affix, body string, kinds []affixKind, cfg *ResolvedConfig, isPrefix bool) string {
	if affix == "" || body == "" || cfg.Spacing == nil || len(kinds) == 0 {
		return affix
	}

	// spacing applies only when the currency placeholder sits at the
	// numeric boundary
	if isPrefix {
		if kinds[len(kinds)-1] != affixCurrency {
			return affix
		}
		rule := cfg.Spacing.Before
		last, _ := utf8.DecodeLastRuneInString(affix)
		first, _ := utf8.DecodeRuneInString(body)
		if matchSpacingClass(last, rule.CurrencyMatch) && matchSpacingClass(first, rule.SurroundingMatch) {
			return affix + rule.InsertBetween
		}
		return affix
	}

	if kinds[0] != affixCurrency {
		return affix
	}
	rule := cfg.Spacing.After
	first, _ := utf8.DecodeRuneInString(affix)
	last, _ := utf8.DecodeLastRuneInString(body)
	if matchSpacingClass(first, rule.CurrencyMatch) && matchSpacingClass(last, rule.SurroundingMatch) {
		return rule.InsertBetween + affix
	}
	return affix
}

// matchSpacingClass interprets the opaque character-class names carried by
// the locale data.
func matchSpacingClass(r rune, class string) bool {
	switch class {
	case "letter":
		return unicode.IsLetter(r)
	case "digit":
		return unicode.IsDigit(r)
	case "any":
		return true
	case "":
		return false
	}
	return false
}
