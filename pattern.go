package numfmt

import (
	"strings"
	"unicode/utf8"
)

// affixKind tags one token of a pattern prefix or suffix.
type affixKind int

const (
	affixLiteral affixKind = iota
	affixCurrency
	affixPercent
	affixPerMille
	affixMinus
	affixPlus
)

type affixToken struct {
	kind  affixKind
	text  string // literal text for affixLiteral
	arity int    // currency placeholder arity 1..3
}

// subPattern is the digit and affix shape for one sign.
type subPattern struct {
	prefix []affixToken
	suffix []affixToken

	minInt int
	maxInt int // -1 when unbounded

	minFrac int
	maxFrac int

	groupPrimary   int // 0 when the pattern carries no grouping
	groupSecondary int

	minSig int // 0 when significant-digit mode is off
	maxSig int

	scientific   bool
	minExpDigits int
	expPlus      bool
}

// PatternMetadata is the compiled form of a format pattern. It is a pure
// function of the pattern string and safe for concurrent reuse.
type PatternMetadata struct {
	source        string
	positive      subPattern
	negative      subPattern
	explicitNeg   bool
	currencyArity int // 0 none, 1 symbol, 2 ISO code, 3 long name
	scalePow      int // implicit scale: 2 for %, 3 for ‰
}

// Source returns the pattern string the metadata was compiled from.
func (m *PatternMetadata) Source() string { return m.source }

// IsCurrency reports whether the pattern contains a currency placeholder.
func (m *PatternMetadata) IsCurrency() bool { return m.currencyArity > 0 }

func (m *PatternMetadata) forSign(negative bool) *subPattern {
	if negative {
		return &m.negative
	}
	return &m.positive
}

// compilePattern parses pattern into metadata. Identical inputs always yield
// structurally identical results; no external state is consulted.
func compilePattern(pattern string) (*PatternMetadata, error) {
	parser := &patternParser{src: pattern}

	positive, err := parser.subPattern()
	if err != nil {
		return nil, err
	}

	meta := &PatternMetadata{source: pattern, positive: positive}

	if parser.peek() == ';' {
		parser.next()
		negative, err := parser.subPattern()
		if err != nil {
			return nil, err
		}
		// only the affixes of the negative form are significant; digit and
		// grouping shape always follow the positive half
		shape := positive
		shape.prefix = negative.prefix
		shape.suffix = negative.suffix
		meta.negative = shape
		meta.explicitNeg = true
	} else {
		meta.negative = synthesizeNegative(positive)
	}

	if parser.pos < len(parser.src) {
		return nil, patternErr(pattern, parser.pos, "unexpected character %q", parser.peek())
	}

	meta.currencyArity = maxCurrencyArity(meta)
	meta.scalePow = scalePow(meta)
	return meta, nil
}

func synthesizeNegative(positive subPattern) subPattern {
	negative := positive
	negative.prefix = append([]affixToken{{kind: affixMinus}}, positive.prefix...)
	negative.suffix = append([]affixToken(nil), positive.suffix...)
	return negative
}

func maxCurrencyArity(meta *PatternMetadata) int {
	arity := 0
	for _, tokens := range [][]affixToken{
		meta.positive.prefix, meta.positive.suffix,
		meta.negative.prefix, meta.negative.suffix,
	} {
		for _, token := range tokens {
			if token.kind == affixCurrency && token.arity > arity {
				arity = token.arity
			}
		}
	}
	return arity
}

func scalePow(meta *PatternMetadata) int {
	for _, tokens := range [][]affixToken{meta.positive.prefix, meta.positive.suffix} {
		for _, token := range tokens {
			switch token.kind {
			case affixPercent:
				return 2
			case affixPerMille:
				return 3
			}
		}
	}
	return 0
}

type patternParser struct {
	src string
	pos int
}

func (p *patternParser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *patternParser) next() rune {
	r, n := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += n
	return r
}

func isDigitChar(r rune) bool {
	return r == '#' || r == '@' || (r >= '0' && r <= '9')
}

func (p *patternParser) subPattern() (subPattern, error) {
	var sub subPattern

	prefix, err := p.affix(true)
	if err != nil {
		return sub, err
	}
	sub.prefix = prefix

	if err := p.digits(&sub); err != nil {
		return sub, err
	}

	suffix, err := p.affix(false)
	if err != nil {
		return sub, err
	}
	sub.suffix = suffix

	return sub, nil
}

// affix consumes prefix or suffix tokens. A prefix ends at the first digit
// character; a suffix ends at ';' or end of input.
func (p *patternParser) affix(isPrefix bool) ([]affixToken, error) {
	var tokens []affixToken
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, affixToken{kind: affixLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for p.pos < len(p.src) {
		r := p.peek()
		if r == ';' {
			break
		}
		if isPrefix && (isDigitChar(r) || r == ',' || r == '.') {
			break
		}

		start := p.pos
		p.next()
		switch r {
		case '\'':
			text, err := p.quoted(start)
			if err != nil {
				return nil, err
			}
			literal.WriteString(text)
		case '¤':
			flush()
			arity := 1
			for arity < 3 && p.peek() == '¤' {
				p.next()
				arity++
			}
			tokens = append(tokens, affixToken{kind: affixCurrency, arity: arity})
		case '%':
			flush()
			tokens = append(tokens, affixToken{kind: affixPercent})
		case '‰':
			flush()
			tokens = append(tokens, affixToken{kind: affixPerMille})
		case '-':
			flush()
			tokens = append(tokens, affixToken{kind: affixMinus})
		case '+':
			flush()
			tokens = append(tokens, affixToken{kind: affixPlus})
		default:
			literal.WriteRune(r)
		}
	}

	flush()
	return tokens, nil
}

// quoted consumes a literal-escape run opened at start. A doubled quote
// inside the run is a single literal quote.
func (p *patternParser) quoted(start int) (string, error) {
	if p.peek() == '\'' {
		p.next()
		return "'", nil
	}

	var text strings.Builder
	for p.pos < len(p.src) {
		r := p.next()
		if r == '\'' {
			if p.peek() == '\'' {
				p.next()
				text.WriteRune('\'')
				continue
			}
			return text.String(), nil
		}
		text.WriteRune(r)
	}
	return "", patternErr(p.src, start, "unterminated literal escape")
}

// digits consumes the digit-and-grouping section and extracts digit counts,
// grouping sizes, significant-digit bounds, and the scientific clause.
func (p *patternParser) digits(sub *subPattern) error {
	type groupMark struct{ digitsAfter int }

	intDigits := 0      // all digit markers before the decimal point
	intRequired := 0    // required digits before the decimal point
	fracDigits := 0     // all digit markers after the decimal point
	fracRequired := 0   // required digits after the decimal point
	sigMin, sigOpt := 0, 0
	sawSig := false
	decimalPos := -1
	var groups []groupMark
	digitsSinceGroup := 0
	lastWasGroup := false
	lastGroupPos := -1

	for p.pos < len(p.src) {
		r := p.peek()
		pos := p.pos

		switch {
		case r == '#':
			p.next()
			if decimalPos >= 0 {
				fracDigits++
			} else {
				if sawSig {
					sigOpt++
				}
				intDigits++
				digitsSinceGroup++
			}
			lastWasGroup = false
		case r >= '0' && r <= '9':
			p.next()
			if decimalPos >= 0 {
				fracDigits++
				fracRequired++
			} else {
				intDigits++
				intRequired++
				digitsSinceGroup++
			}
			lastWasGroup = false
		case r == '@':
			p.next()
			if decimalPos >= 0 {
				return patternErr(p.src, pos, "significant-digit marker after decimal point")
			}
			sawSig = true
			sigMin++
			intDigits++
			digitsSinceGroup++
			lastWasGroup = false
		case r == ',':
			p.next()
			if decimalPos >= 0 {
				return patternErr(p.src, pos, "grouping marker after decimal point")
			}
			groups = append(groups, groupMark{digitsAfter: digitsSinceGroup})
			digitsSinceGroup = 0
			lastWasGroup = true
			lastGroupPos = pos
		case r == '.':
			p.next()
			if decimalPos >= 0 {
				return patternErr(p.src, pos, "multiple decimal points")
			}
			if lastWasGroup {
				return patternErr(p.src, lastGroupPos, "grouping marker not followed by digits")
			}
			decimalPos = pos
		case r == 'E':
			p.next()
			if err := p.exponent(sub, pos); err != nil {
				return err
			}
			goto done
		default:
			goto done
		}
	}

done:
	if lastWasGroup {
		return patternErr(p.src, lastGroupPos, "grouping marker not followed by digits")
	}
	if intDigits == 0 && fracDigits == 0 {
		return patternErr(p.src, p.pos, "pattern has no digit markers")
	}

	sub.minInt = intRequired
	sub.maxInt = -1
	if sub.scientific {
		sub.maxInt = intDigits
	}
	sub.minFrac = fracRequired
	sub.maxFrac = fracDigits

	if sawSig {
		sub.minSig = sigMin
		sub.maxSig = sigMin + sigOpt
	}

	// grouping sizes count digits from the decimal point outward; the run
	// after the last marker is the primary size
	if len(groups) > 0 {
		sub.groupPrimary = digitsSinceGroup
		sub.groupSecondary = sub.groupPrimary
		if len(groups) > 1 {
			sub.groupSecondary = groups[len(groups)-1].digitsAfter
		}
	}

	return nil
}

// exponent consumes the scientific clause following 'E'.
func (p *patternParser) exponent(sub *subPattern, start int) error {
	sub.scientific = true
	if p.peek() == '+' {
		p.next()
		sub.expPlus = true
	}
	for p.peek() == '0' {
		p.next()
		sub.minExpDigits++
	}
	if sub.minExpDigits == 0 {
		return patternErr(p.src, start, "malformed exponent clause")
	}
	return nil
}
