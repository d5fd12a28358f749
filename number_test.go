package numfmt

import (
	"errors"
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestToDecNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  decNumber
	}{
		{"int", 12345, decNumber{coef: "12345"}},
		{"negative int", -42, decNumber{neg: true, coef: "42"}},
		{"min int64", int64(-9223372036854775808), decNumber{neg: true, coef: "9223372036854775808"}},
		{"uint", uint(7), decNumber{coef: "7"}},
		{"float", 0.125, decNumber{coef: "125", scale: 3}},
		{"float trailing zeros dropped", 2.50, decNumber{coef: "25", scale: 1}},
		{"string", "1234.5600", decNumber{coef: "123456", scale: 2}},
		{"string with sign", "-0.07", decNumber{neg: true, coef: "7", scale: 2}},
		{"string exponent", "1.2e3", decNumber{coef: "1200"}},
		{"string negative exponent", "125E-2", decNumber{coef: "125", scale: 2}},
		{"negative zero collapses", "-0.000", decNumber{coef: "0"}},
		{"leading zeros stripped", "0001.50", decNumber{coef: "15", scale: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toDecNumber(tc.value)
			if err != nil {
				t.Fatalf("toDecNumber(%v): %v", tc.value, err)
			}
			if got != tc.want {
				t.Fatalf("toDecNumber(%v) = %+v, want %+v", tc.value, got, tc.want)
			}
		})
	}
}

func TestToDecNumberDecimal(t *testing.T) {
	d, err := decimal.Parse("1234.56")
	if err != nil {
		t.Fatalf("decimal.Parse: %v", err)
	}

	got, err := toDecNumber(d)
	if err != nil {
		t.Fatalf("toDecNumber: %v", err)
	}
	want := decNumber{coef: "123456", scale: 2}
	if got != want {
		t.Fatalf("toDecNumber = %+v, want %+v", got, want)
	}

	got, err = toDecNumber(&d)
	if err != nil {
		t.Fatalf("toDecNumber pointer: %v", err)
	}
	if got != want {
		t.Fatalf("toDecNumber pointer = %+v, want %+v", got, want)
	}
}

func TestToDecNumberRejects(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"empty string", ""},
		{"garbage string", "12a4"},
		{"lone sign", "-"},
		{"nil decimal", (*decimal.Decimal)(nil)},
		{"unsupported type", struct{}{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := toDecNumber(tc.value); !errors.Is(err, ErrBadNumber) {
				t.Fatalf("toDecNumber(%v) error = %v, want ErrBadNumber", tc.value, err)
			}
		})
	}
}

func TestRoundDec(t *testing.T) {
	tests := []struct {
		name  string
		input string
		scale int
		mode  RoundingMode
		want  string
	}{
		{"half even down", "0.125", 2, RoundHalfEven, "0.12"},
		{"half even up", "0.135", 2, RoundHalfEven, "0.14"},
		{"half even above half", "0.1251", 2, RoundHalfEven, "0.13"},
		{"half up", "0.125", 2, RoundHalfUp, "0.13"},
		{"half up negative", "-0.125", 2, RoundHalfUp, "-0.13"},
		{"half down", "0.125", 2, RoundHalfDown, "0.12"},
		{"half down above half", "0.1250001", 2, RoundHalfDown, "0.13"},
		{"up", "0.121", 2, RoundUp, "0.13"},
		{"up negative", "-0.121", 2, RoundUp, "-0.13"},
		{"down", "0.129", 2, RoundDown, "0.12"},
		{"down negative", "-0.129", 2, RoundDown, "-0.12"},
		{"ceiling positive", "0.121", 2, RoundCeiling, "0.13"},
		{"ceiling negative", "-0.129", 2, RoundCeiling, "-0.12"},
		{"floor positive", "0.129", 2, RoundFloor, "0.12"},
		{"floor negative", "-0.121", 2, RoundFloor, "-0.13"},
		{"carry across all digits", "9.999", 2, RoundHalfEven, "10"},
		{"below one ulp", "0.004", 2, RoundHalfEven, "0"},
		{"below one ulp rounds up", "0.004", 2, RoundUp, "0.01"},
		{"already short enough", "0.12", 4, RoundHalfEven, "0.12"},
		{"integer scale", "1234.5", 0, RoundHalfEven, "1234"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := parseDecNumber(tc.input)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			got := decString(roundDec(n, tc.scale, tc.mode))
			if got != tc.want {
				t.Fatalf("roundDec(%s, %d) = %s, want %s", tc.input, tc.scale, got, tc.want)
			}
		})
	}
}

func TestRoundDecSignificant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sig   int
		want  string
	}{
		{"truncates fraction", "1.2345", 2, "1.2"},
		{"rounds integer digits", "12345", 2, "12000"},
		{"half even at boundary", "1250", 2, "1200"},
		{"keeps shorter value", "12", 4, "12"},
		{"small fraction", "0.0012345", 3, "0.00123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := parseDecNumber(tc.input)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			got := decString(roundDecSignificant(n, tc.sig, RoundHalfEven))
			if got != tc.want {
				t.Fatalf("roundDecSignificant(%s, %d) = %s, want %s", tc.input, tc.sig, got, tc.want)
			}
		})
	}
}

func TestShiftDec(t *testing.T) {
	tests := []struct {
		input string
		k     int
		want  string
	}{
		{"1.25", 2, "125"},
		{"1.25", 5, "125000"},
		{"125", -2, "1.25"},
		{"1", -4, "0.0001"},
		{"0", 3, "0"},
	}

	for _, tc := range tests {
		n, err := parseDecNumber(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if got := decString(shiftDec(n, tc.k)); got != tc.want {
			t.Fatalf("shiftDec(%s, %d) = %s, want %s", tc.input, tc.k, got, tc.want)
		}
	}
}

// decString renders a decNumber back to plain decimal notation for assertions.
func decString(n decNumber) string {
	intPart, fracPart := intFracParts(n)
	if intPart == "" {
		intPart = "0"
	}
	s := intPart
	if fracPart != "" {
		s += "." + fracPart
	}
	if n.neg && !n.isZero() {
		s = "-" + s
	}
	return s
}
