package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// RoundingMode selects the rounding rule applied at the max-fraction-digit
// boundary.
type RoundingMode int

const (
	// RoundHalfEven rounds half to the nearest even digit (default).
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds half away from zero.
	RoundHalfUp
	// RoundHalfDown rounds half toward zero.
	RoundHalfDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

var roundingModeNames = map[string]RoundingMode{
	"half_even": RoundHalfEven,
	"half-even": RoundHalfEven,
	"half_up":   RoundHalfUp,
	"half-up":   RoundHalfUp,
	"half_down": RoundHalfDown,
	"half-down": RoundHalfDown,
	"up":        RoundUp,
	"down":      RoundDown,
	"ceiling":   RoundCeiling,
	"floor":     RoundFloor,
}

// decNumber is an exact decimal: value = coef * 10^-scale, where coef is a
// digit string without leading zeros ("0" exactly for zero).
type decNumber struct {
	neg   bool
	coef  string
	scale int
}

func (n decNumber) isZero() bool { return n.coef == "0" || n.coef == "" }

// prec is the number of digits in the coefficient.
func (n decNumber) prec() int {
	if n.isZero() {
		return 0
	}
	return len(n.coef)
}

// exponent is the position of the decimal point relative to the first
// coefficient digit: value = 0.coef * 10^exponent.
func (n decNumber) exponent() int { return n.prec() - n.scale }

func trimLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

func normalizeDec(n decNumber) decNumber {
	n.coef = trimLeadingZeros(n.coef)
	if n.coef == "" {
		n.coef = "0"
	}
	if n.isZero() {
		n.neg = false
		n.scale = 0
		return n
	}
	// drop trailing fraction zeros so scale reflects real precision
	for n.scale > 0 && strings.HasSuffix(n.coef, "0") {
		n.coef = n.coef[:len(n.coef)-1]
		n.scale--
	}
	if n.coef == "" {
		n.coef = "0"
		n.scale = 0
	}
	return n
}

// toDecNumber normalizes any accepted numeric input to an exact decimal.
func toDecNumber(value any) (decNumber, error) {
	switch v := value.(type) {
	case int:
		return intDecNumber(int64(v)), nil
	case int8:
		return intDecNumber(int64(v)), nil
	case int16:
		return intDecNumber(int64(v)), nil
	case int32:
		return intDecNumber(int64(v)), nil
	case int64:
		return intDecNumber(v), nil
	case uint:
		return uintDecNumber(uint64(v)), nil
	case uint8:
		return uintDecNumber(uint64(v)), nil
	case uint16:
		return uintDecNumber(uint64(v)), nil
	case uint32:
		return uintDecNumber(uint64(v)), nil
	case uint64:
		return uintDecNumber(v), nil
	case float32:
		return floatDecNumber(float64(v))
	case float64:
		return floatDecNumber(v)
	case decimal.Decimal:
		return decimalDecNumber(v), nil
	case *decimal.Decimal:
		if v == nil {
			return decNumber{}, newConfigError(ErrBadNumber, "nil decimal")
		}
		return decimalDecNumber(*v), nil
	case string:
		return parseDecNumber(v)
	default:
		return decNumber{}, newConfigError(ErrBadNumber, "%T", value)
	}
}

func intDecNumber(v int64) decNumber {
	neg := v < 0
	var coef string
	if neg {
		coef = strconv.FormatUint(uint64(-(v + 1))+1, 10)
	} else {
		coef = strconv.FormatInt(v, 10)
	}
	return normalizeDec(decNumber{neg: neg, coef: coef})
}

func uintDecNumber(v uint64) decNumber {
	return normalizeDec(decNumber{coef: strconv.FormatUint(v, 10)})
}

func floatDecNumber(v float64) (decNumber, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decNumber{}, newConfigError(ErrBadNumber, "%v", v)
	}
	// shortest round-trip representation without an exponent
	return parseDecNumber(strconv.FormatFloat(v, 'f', -1, 64))
}

func decimalDecNumber(d decimal.Decimal) decNumber {
	return normalizeDec(decNumber{
		neg:   d.IsNeg(),
		coef:  strconv.FormatUint(d.Coef(), 10),
		scale: d.Scale(),
	})
}

func parseDecNumber(s string) (decNumber, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decNumber{}, newConfigError(ErrBadNumber, "empty numeric string")
	}

	var n decNumber
	rest := trimmed
	switch rest[0] {
	case '-':
		n.neg = true
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	}

	mantissa, expPart, hasExp := strings.Cut(rest, "e")
	if !hasExp {
		mantissa, expPart, hasExp = strings.Cut(rest, "E")
	}

	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	if intPart == "" && fracPart == "" {
		return decNumber{}, newConfigError(ErrBadNumber, "%q", s)
	}
	for _, part := range []string{intPart, fracPart} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return decNumber{}, newConfigError(ErrBadNumber, "%q", s)
			}
		}
	}

	n.coef = intPart + fracPart
	n.scale = len(fracPart)

	if hasExp {
		exp, err := strconv.Atoi(expPart)
		if err != nil {
			return decNumber{}, newConfigError(ErrBadNumber, "%q", s)
		}
		n = shiftDec(n, exp)
	}

	return normalizeDec(n), nil
}

// shiftDec multiplies n by 10^k exactly.
func shiftDec(n decNumber, k int) decNumber {
	if n.isZero() || k == 0 {
		return n
	}
	n.scale -= k
	if n.scale < 0 {
		n.coef += strings.Repeat("0", -n.scale)
		n.scale = 0
	}
	return normalizeDec(n)
}

// roundDec rounds n to at most maxScale fraction digits under mode.
func roundDec(n decNumber, maxScale int, mode RoundingMode) decNumber {
	if maxScale < 0 {
		maxScale = 0
	}
	if n.scale <= maxScale {
		return n
	}

	drop := n.scale - maxScale
	coef := n.coef
	if len(coef) <= drop {
		coef = strings.Repeat("0", drop-len(coef)+1) + coef
	}
	kept := coef[:len(coef)-drop]
	dropped := coef[len(coef)-drop:]

	if roundAwayFromZero(kept, dropped, n.neg, mode) {
		kept = incrementDigits(kept)
	}

	return normalizeDec(decNumber{neg: n.neg, coef: kept, scale: maxScale})
}

// roundDecSignificant rounds n to at most sig significant digits.
func roundDecSignificant(n decNumber, sig int, mode RoundingMode) decNumber {
	if sig <= 0 || n.isZero() || n.prec() <= sig {
		return n
	}
	target := n.scale - (n.prec() - sig)
	if target < 0 {
		// rounding boundary inside the integer part: round there, then
		// restore magnitude with trailing zeros
		drop := n.prec() - sig
		kept := n.coef[:sig]
		dropped := n.coef[sig:]
		if roundAwayFromZero(kept, dropped, n.neg, mode) {
			kept = incrementDigits(kept)
		}
		kept += strings.Repeat("0", drop-n.scale)
		return normalizeDec(decNumber{neg: n.neg, coef: kept})
	}
	return roundDec(n, target, mode)
}

func roundAwayFromZero(kept, dropped string, neg bool, mode RoundingMode) bool {
	anyDropped := strings.ContainsFunc(dropped, func(r rune) bool { return r != '0' })
	if !anyDropped {
		return false
	}

	switch mode {
	case RoundDown:
		return false
	case RoundUp:
		return true
	case RoundCeiling:
		return !neg
	case RoundFloor:
		return neg
	}

	// half modes: compare dropped digits against exactly one half
	cmp := compareToHalf(dropped)
	switch {
	case cmp > 0:
		return true
	case cmp < 0:
		return false
	}

	switch mode {
	case RoundHalfUp:
		return true
	case RoundHalfDown:
		return false
	default: // RoundHalfEven
		if kept == "" {
			return false
		}
		return (kept[len(kept)-1]-'0')%2 == 1
	}
}

// compareToHalf compares the dropped digit run against "5000...".
func compareToHalf(dropped string) int {
	if dropped == "" {
		return -1
	}
	switch {
	case dropped[0] > '5':
		return 1
	case dropped[0] < '5':
		return -1
	}
	for i := 1; i < len(dropped); i++ {
		if dropped[i] != '0' {
			return 1
		}
	}
	return 0
}

func incrementDigits(digits string) string {
	if digits == "" {
		return "1"
	}
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// intFracParts splits n into integer and fraction digit strings, without
// padding. The integer part is "" for values below one.
func intFracParts(n decNumber) (string, string) {
	coef := n.coef
	if n.isZero() {
		coef = ""
	}
	if n.scale == 0 {
		return coef, ""
	}
	if len(coef) <= n.scale {
		return "", strings.Repeat("0", n.scale-len(coef)) + coef
	}
	return coef[:len(coef)-n.scale], coef[len(coef)-n.scale:]
}
