// Package verbex builds regular expressions from chained, readable method
// calls instead of hand-written regex syntax.
//
// A Builder describes a pattern one unit at a time. Each unit has a quantity
// (Exactly, Min, Max, MinMax), a character source (Of, OfAny, From, NotFrom,
// Like) and optional modifiers (Reluctantly, AsCapturingGroup, Behind,
// NotBehind). Starting the next quantity closes the previous unit and
// appends it to the pattern.
//
// Basic usage:
//
//	re, err := verbex.New().
//	    Start().
//	    Exactly(3).From('p', 'q', 'r').
//	    End().
//	    Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("rqp") // true
//
// Composition:
//
//	word := func(r *verbex.Builder) *verbex.Builder {
//	    return r.Min(1).From('a', 'b', 'c')
//	}
//	re := verbex.New().
//	    Either(word).
//	    Or(func(r *verbex.Builder) *verbex.Builder { return r.Exactly(2).Of("-") }).
//	    MustCompile()
//
// Escaping:
//
// Text passed to Of is escaped so it matches literally; class members passed
// to From and NotFrom are escaped for use inside brackets. Nested builders
// are spliced in verbatim.
//
// Compiled patterns run on coregex when possible and on regexp2 when the
// pattern needs lookaround (Behind, NotBehind) or repeat counts above 1000.
// See the meta package for engine selection.
//
// A Builder is not safe for concurrent use. A compiled Regex is.
package verbex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Construction describes a sub-pattern on the fresh Builder it receives.
// Returning nil is the same as returning the argument.
type Construction func(*Builder) *Builder

// token is the unit being described but not yet emitted.
type token struct {
	min, max       int
	hasMin, hasMax bool

	of        string // escaped
	ofRaw     string
	ofAny     bool
	from      string // escaped class body
	notFrom   string // escaped class body
	like      string
	reluctant bool
	capture   bool
	behind    string
	notBehind string
}

// hasSource reports whether the token would emit anything.
func (t *token) hasSource() bool {
	return t.of != "" || t.ofAny || t.from != "" || t.notFrom != "" || t.like != ""
}

// dirty reports whether anything besides a character source was set.
func (t *token) dirty() bool {
	return t.hasMin || t.hasMax || t.reluctant || t.capture ||
		t.behind != "" || t.notBehind != ""
}

// characterLiteral picks the source by priority: of, any, from, notFrom, like.
func (t *token) characterLiteral() string {
	switch {
	case t.of != "":
		return t.of
	case t.ofAny:
		return "."
	case t.from != "":
		return "[" + t.from + "]"
	case t.notFrom != "":
		return "[^" + t.notFrom + "]"
	default:
		return t.like
	}
}

func (t *token) quantityLiteral() string {
	switch {
	case t.hasMin && t.hasMax:
		return "{" + strconv.Itoa(t.min) + "," + strconv.Itoa(t.max) + "}"
	case t.hasMin:
		return "{" + strconv.Itoa(t.min) + ",}"
	case t.hasMax:
		return "{0," + strconv.Itoa(t.max) + "}"
	default:
		return ""
	}
}

// minimum is the smallest number of repetitions the token accepts.
func (t *token) minimum() int {
	switch {
	case t.hasMin:
		return t.min
	case t.hasMax:
		return 0
	default:
		return 1
	}
}

// Builder accumulates a pattern literal.
//
// The zero value is an empty builder ready to use.
type Builder struct {
	literal strings.Builder
	pending token

	either    string
	hasEither bool

	ignoreCase bool
	multiLine  bool

	required []string
	errs     []error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Reset empties the builder, including flags and recorded errors.
func (b *Builder) Reset() *Builder {
	*b = Builder{}
	return b
}

// IgnoreCase makes the compiled pattern match case-insensitively.
// It has no effect on Literal.
func (b *Builder) IgnoreCase() *Builder {
	b.ignoreCase = true
	return b
}

// MultiLine makes Start and End match at line boundaries in the compiled
// pattern. It has no effect on Literal.
func (b *Builder) MultiLine() *Builder {
	b.multiLine = true
	return b
}

// Start anchors the pattern at the beginning of input.
// It does not close the pending unit.
func (b *Builder) Start() *Builder {
	b.literal.WriteString("(?:^)")
	return b
}

// End closes the pending unit and anchors the pattern at the end of input.
func (b *Builder) End() *Builder {
	b.flush()
	b.literal.WriteString("(?:$)")
	return b
}

// Exactly closes the pending unit and starts one repeated exactly n times.
//
// Example:
//
//	verbex.New().Exactly(2).Of("p").Literal() // "(?:(?:p){2,2})"
func (b *Builder) Exactly(n int) *Builder {
	b.flush()
	if b.checkCount("Exactly", n) {
		b.setMin(n)
		b.setMax(n)
	}
	return b
}

// Min closes the pending unit and starts one repeated at least n times.
// Followed by Max, it bounds the same unit from both sides.
func (b *Builder) Min(n int) *Builder {
	b.flush()
	if b.checkCount("Min", n) {
		b.setMin(n)
	}
	return b
}

// Max closes the pending unit and starts one repeated at most n times.
// Without Min the lower bound is 0.
func (b *Builder) Max(n int) *Builder {
	b.flush()
	if b.checkCount("Max", n) {
		b.setMax(n)
	}
	return b
}

// MinMax closes the pending unit and starts one repeated between min and
// max times, inclusive.
func (b *Builder) MinMax(min, max int) *Builder {
	b.flush()
	if b.checkCount("MinMax", min) && b.checkCount("MinMax", max) {
		b.setMin(min)
		b.setMax(max)
	}
	return b
}

// Of sets the pending unit to the literal text s.
func (b *Builder) Of(s string) *Builder {
	b.pending.of = QuoteLiteral(s)
	b.pending.ofRaw = s
	return b
}

// OfAny sets the pending unit to any single character except newline.
func (b *Builder) OfAny() *Builder {
	b.pending.ofAny = true
	return b
}

// From sets the pending unit to any one of chars.
func (b *Builder) From(chars ...rune) *Builder {
	b.pending.from = QuoteClass(string(chars))
	return b
}

// FromString is From with the class members given as a string.
func (b *Builder) FromString(chars string) *Builder {
	b.pending.from = QuoteClass(chars)
	return b
}

// NotFrom sets the pending unit to any one character not in chars.
func (b *Builder) NotFrom(chars ...rune) *Builder {
	b.pending.notFrom = QuoteClass(string(chars))
	return b
}

// NotFromString is NotFrom with the class members given as a string.
func (b *Builder) NotFromString(chars string) *Builder {
	b.pending.notFrom = QuoteClass(chars)
	return b
}

// Reluctantly makes the pending unit's quantifier match as few repetitions
// as possible. A unit without a quantity has nothing to make reluctant.
func (b *Builder) Reluctantly() *Builder {
	b.pending.reluctant = true
	return b
}

// AsCapturingGroup makes the pending unit, quantifier included, a numbered
// capturing group. Groups are numbered left to right from 1.
func (b *Builder) AsCapturingGroup() *Builder {
	b.pending.capture = true
	return b
}

// Literal closes the pending unit and returns the pattern built so far.
// Calling it again without further changes returns the same string.
func (b *Builder) Literal() string {
	b.flush()
	return b.literal.String()
}

// String implements fmt.Stringer. It is Literal.
func (b *Builder) String() string {
	return b.Literal()
}

// Err returns the misuse recorded so far, or nil.
//
// Misuse never changes the pattern: the builder keeps going the way it
// always has (dropping orphaned quantities, emitting an empty branch for Or
// without Either) and Err reports what happened.
func (b *Builder) Err() error {
	errs := b.errs[:len(b.errs):len(b.errs)]
	if !b.pending.hasSource() && b.pending.dirty() {
		errs = append(errs, fmt.Errorf("%w: quantity or modifier has no character source", ErrDroppedToken))
	}
	if b.hasEither {
		errs = append(errs, ErrEitherWithoutOr)
	}
	return errors.Join(errs...)
}

// flush emits the pending unit if it has a character source. Otherwise the
// pending state is kept as is.
func (b *Builder) flush() {
	t := &b.pending
	if !t.hasSource() {
		return
	}
	if t.hasMin && t.hasMax && t.min > t.max {
		b.errs = append(b.errs, fmt.Errorf("%w: {%d,%d}", ErrInvertedBounds, t.min, t.max))
	}

	w := &b.literal
	w.WriteByte('(')
	if !t.capture {
		w.WriteString("?:")
	}
	w.WriteString("(?:")
	w.WriteString(t.characterLiteral())
	w.WriteByte(')')
	if q := t.quantityLiteral(); q != "" {
		w.WriteString(q)
		if t.reluctant {
			w.WriteByte('?')
		}
	}
	w.WriteByte(')')
	if t.behind != "" {
		w.WriteString("(?=" + t.behind + ")")
	}
	if t.notBehind != "" {
		w.WriteString("(?!" + t.notBehind + ")")
	}

	// An unescaped | would turn the text into an alternation.
	if t.of != "" && t.minimum() > 0 && !strings.Contains(t.ofRaw, "|") {
		b.required = append(b.required, t.ofRaw)
	}

	b.pending = token{}
}

func (b *Builder) setMin(n int) {
	if b.pending.hasMin {
		b.errs = append(b.errs, fmt.Errorf("%w: lower bound %d replaced by %d", ErrDroppedToken, b.pending.min, n))
	}
	b.pending.min, b.pending.hasMin = n, true
}

func (b *Builder) setMax(n int) {
	if b.pending.hasMax {
		b.errs = append(b.errs, fmt.Errorf("%w: upper bound %d replaced by %d", ErrDroppedToken, b.pending.max, n))
	}
	b.pending.max, b.pending.hasMax = n, true
}

// checkCount records negative counts and reports whether n is usable.
func (b *Builder) checkCount(op string, n int) bool {
	if n < 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: %s(%d)", ErrNegativeCount, op, n))
		return false
	}
	return true
}
