package verbex

import "fmt"

// Either closes the pending unit and builds the left branch of an
// alternation. The alternation is emitted by the following Or.
func (b *Builder) Either(fn Construction) *Builder {
	b.flush()
	b.either = b.sub("Either", fn)
	b.hasEither = true
	return b
}

// Or builds the right branch and emits the alternation
// (?:(?:left)|(?:right)). The alternation takes no quantity; anything
// pending is discarded.
//
// Chains of more than two alternatives nest another Either/Or pair inside
// the right branch.
func (b *Builder) Or(fn Construction) *Builder {
	right := b.sub("Or", fn)
	if !b.hasEither {
		b.errs = append(b.errs, ErrOrWithoutEither)
	}
	if b.pending.hasSource() {
		b.errs = append(b.errs, fmt.Errorf("%w: unit pending at Or", ErrDroppedToken))
	}

	b.literal.WriteString("(?:(?:" + b.either + ")|(?:" + right + "))")
	b.pending = token{}
	b.either, b.hasEither = "", false
	return b
}

// Like sets the pending unit to the pattern built by fn, spliced in as is.
//
// Example:
//
//	pq := func(r *verbex.Builder) *verbex.Builder {
//	    return r.Min(1).Of("p").Min(2).Of("q")
//	}
//	verbex.New().Exactly(2).Like(pq) // matches "pqqpqq"
func (b *Builder) Like(fn Construction) *Builder {
	b.pending.like = b.sub("Like", fn)
	return b
}

// Behind requires the pattern built by fn to immediately follow the pending
// unit. The followed text is asserted, not consumed: it is not part of the
// match.
func (b *Builder) Behind(fn Construction) *Builder {
	b.pending.behind = b.sub("Behind", fn)
	return b
}

// NotBehind forbids the pattern built by fn from immediately following the
// pending unit.
func (b *Builder) NotBehind(fn Construction) *Builder {
	b.pending.notBehind = b.sub("NotBehind", fn)
	return b
}

// sub runs fn on a fresh Builder and returns its literal. Only the literal
// and the sub-builder's recorded misuse come back; flags set inside fn do
// not apply to the parent.
func (b *Builder) sub(op string, fn Construction) string {
	if fn == nil {
		return ""
	}
	r := New()
	if out := fn(r); out != nil {
		r = out
	}
	literal := r.Literal()
	if err := r.Err(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", op, err))
	}
	return literal
}
