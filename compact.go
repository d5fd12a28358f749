package numfmt

// compactStyleNames maps compact format descriptors to ladder names in the
// locale dataset.
var compactStyleNames = map[Format]string{
	FormatDecimalShort:  "decimal-short",
	FormatDecimalLong:   "decimal-long",
	FormatCurrencyShort: "currency-short",
	FormatCurrencyLong:  "currency-long",
}

// compactFallbacks is tried in order when the requested ladder is absent.
var compactFallbacks = map[Format][]string{
	FormatDecimalShort:  {"decimal-short"},
	FormatDecimalLong:   {"decimal-long", "decimal-short"},
	FormatCurrencyShort: {"currency-short", "decimal-short"},
	FormatCurrencyLong:  {"currency-long", "currency-short"},
}

// compactPattern picks the ladder rung for num and returns the rung pattern
// together with the power of ten the value must be divided by. ok=false
// means the value is below the ladder (or no ladder exists) and the
// standard layout applies. A rung pattern that fails to compile indicates
// corrupt locale data and propagates as an error.
func (e *Engine) compactPattern(num decNumber, cfg *ResolvedConfig) (string, int, bool, error) {
	var rungs []CompactRung
	for _, style := range compactFallbacks[cfg.Format] {
		if rungs = e.provider.CompactPatterns(cfg.Locale, cfg.NumberSystem, style); rungs != nil {
			break
		}
	}
	if len(rungs) == 0 || num.isZero() {
		return "", 0, false, nil
	}

	// floor(log10(|value|))
	magnitude := num.exponent() - 1

	best := -1
	for i, rung := range rungs {
		if rung.Magnitude <= magnitude && (best < 0 || rung.Magnitude > rungs[best].Magnitude) {
			best = i
		}
	}
	if best < 0 {
		return "", 0, false, nil
	}

	rung := rungs[best]
	meta, err := e.compiled(rung.Pattern, cfg)
	if err != nil {
		return "", 0, false, err
	}

	// "00K" at magnitude 4 divides by 10^3: the pattern's required integer
	// digits absorb part of the magnitude
	intDigits := meta.positive.minInt
	if intDigits < 1 {
		intDigits = 1
	}
	return rung.Pattern, rung.Magnitude - (intDigits - 1), true, nil
}

// renderCompact divides the value onto the ladder rung and renders it with
// the rung pattern. Ladders carry no fraction digits, so unless the caller
// forces a fraction count the mantissa keeps two significant digits, never
// dropping below whole-number precision.
func (e *Engine) renderCompact(num decNumber, cfg *ResolvedConfig) (string, error) {
	pattern, shift, ok, err := e.compactPattern(num, cfg)
	if err != nil {
		return "", err
	}
	if !ok {
		return e.renderStandardShape(num, cfg)
	}

	meta, err := e.compiled(pattern, cfg)
	if err != nil {
		return "", err
	}

	scaled := shiftDec(num, -shift)

	if cfg.FractionalDigits < 0 && meta.positive.maxFrac == 0 && meta.positive.minSig == 0 {
		frac := 2 - scaled.exponent()
		if frac < 0 {
			frac = 0
		}
		shaped := *meta
		shaped.positive.maxFrac = frac
		shaped.negative.maxFrac = frac
		return render(scaled, &shaped, cfg), nil
	}

	return render(scaled, meta, cfg), nil
}

// renderStandardShape formats values that fall below the compact ladder:
// currency-shaped compacts use the currency layout, decimal ones the
// standard layout.
func (e *Engine) renderStandardShape(num decNumber, cfg *ResolvedConfig) (string, error) {
	name := "standard"
	if cfg.Format.isCurrencyShaped() {
		name = "currency"
	}

	pattern, ok := e.provider.Format(cfg.Locale, cfg.NumberSystem, name)
	if !ok {
		return "", &FormatNotFoundError{
			Locale:       cfg.Locale,
			NumberSystem: cfg.NumberSystem,
			Format:       name,
		}
	}

	meta, err := e.compiled(pattern, cfg)
	if err != nil {
		return "", err
	}
	return render(num, meta, cfg), nil
}
