// Package numfmt renders numeric values into locale-correct human-readable
// text: digit grouping, rounding, significant digits, scientific notation,
// currency symbol placement, and compact short/long forms.
//
// The pipeline has three stages. Caller options are first merged with
// defaults and locale data into one immutable resolved configuration; the
// selected format pattern is then compiled (and cached) into structured
// metadata; finally the decimal renderer produces the output string. Output
// is deterministic: the same value and options always format identically.
//
//	engine, err := numfmt.New()
//	if err != nil { ... }
//	s, err := engine.ToString(1234567.891, numfmt.Options{
//		"locale":   "de",
//		"currency": "EUR",
//	})
//	// "1.234.567,89 €"
package numfmt
