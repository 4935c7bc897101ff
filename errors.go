package verbex

import "errors"

// Misuse reported by Builder.Err. None of these stop the builder.
var (
	// ErrOrWithoutEither is recorded when Or runs without a preceding
	// Either. The alternation is emitted with an empty left branch.
	ErrOrWithoutEither = errors.New("verbex: Or without Either")

	// ErrEitherWithoutOr is reported while an Either is waiting for its Or.
	ErrEitherWithoutOr = errors.New("verbex: Either without Or")

	// ErrDroppedToken is recorded when a quantity or modifier is lost
	// because no character source followed it.
	ErrDroppedToken = errors.New("verbex: dropped pending unit")

	// ErrNegativeCount is recorded for negative repetition counts, which
	// are ignored.
	ErrNegativeCount = errors.New("verbex: negative repetition count")

	// ErrInvertedBounds is recorded when a unit's lower bound exceeds its
	// upper bound. The pattern is emitted as given and fails to compile.
	ErrInvertedBounds = errors.New("verbex: lower bound exceeds upper bound")
)
