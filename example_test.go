package verbex_test

import (
	"errors"
	"fmt"

	"github.com/coregx/verbex"
)

// ExampleBuilder_Compile demonstrates an anchored exact-count class.
func ExampleBuilder_Compile() {
	re, err := verbex.New().
		Start().
		Exactly(3).From('p', 'q', 'r').
		End().
		Compile()
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("rqp"))
	fmt.Println(re.MatchString("pyy"))
	// Output:
	// true
	// false
}

// ExampleBuilder_Literal shows the pattern text a chain produces.
func ExampleBuilder_Literal() {
	literal := verbex.New().
		Start().
		Min(1).Max(3).Of("p").
		Exactly(1).Of("1+1").
		End().
		Literal()

	fmt.Println(literal)
	// Output: (?:^)(?:(?:p){1,3})(?:(?:1\+1){1,1})(?:$)
}

// ExampleBuilder_Either demonstrates alternation.
func ExampleBuilder_Either() {
	re := verbex.New().
		Start().
		Either(func(r *verbex.Builder) *verbex.Builder { return r.Exactly(1).Of("p") }).
		Or(func(r *verbex.Builder) *verbex.Builder { return r.Exactly(2).Of("q") }).
		End().
		MustCompile()

	for _, s := range []string{"p", "qq", "pqq"} {
		fmt.Println(s, re.MatchString(s))
	}
	// Output:
	// p true
	// qq true
	// pqq false
}

// ExampleBuilder_Behind demonstrates a zero-width assertion on what follows.
func ExampleBuilder_Behind() {
	re := verbex.New().
		Exactly(1).Of("dart").
		Behind(func(r *verbex.Builder) *verbex.Builder { return r.Exactly(1).Of("lang") }).
		MustCompile()

	fmt.Printf("%q\n", re.FindString("dartlang"))
	fmt.Println(re.MatchString("dartpqr"))
	fmt.Println(re.Engine())
	// Output:
	// "dart"
	// false
	// regexp2
}

// ExampleBuilder_Reluctantly demonstrates a non-greedy run.
func ExampleBuilder_Reluctantly() {
	re := verbex.New().
		Exactly(2).Of("p").
		Min(2).OfAny().Reluctantly().
		Exactly(2).Of("p").
		MustCompile()

	fmt.Println(re.FindString("pprrrrpprrpp"))
	// Output: pprrrrpp
}

// ExampleBuilder_AsCapturingGroup demonstrates reading a captured unit.
func ExampleBuilder_AsCapturingGroup() {
	re := verbex.New().
		Min(1).Max(3).Of("p").
		Exactly(1).Of("dart").AsCapturingGroup().
		Exactly(1).From('p', 'q', 'r').
		MustCompile()

	fmt.Println(re.FindStringSubmatch("pdartq")[1])
	// Output: dart
}

// ExampleBuilder_Like demonstrates reusing a sub-pattern.
func ExampleBuilder_Like() {
	pq := func(r *verbex.Builder) *verbex.Builder {
		return r.Min(1).Of("p").Min(2).Of("q")
	}

	re := verbex.New().Start().Exactly(2).Like(pq).End().MustCompile()

	fmt.Println(re.MatchString("pqqpqq"))
	fmt.Println(re.MatchString("qppqpp"))
	// Output:
	// true
	// false
}

// ExampleBuilder_Err demonstrates misuse reporting.
func ExampleBuilder_Err() {
	b := verbex.New().Or(func(r *verbex.Builder) *verbex.Builder { return r.Exactly(1).Of("q") })

	fmt.Println(b.Literal())
	fmt.Println(errors.Is(b.Err(), verbex.ErrOrWithoutEither))
	// Output:
	// (?:(?:)|(?:(?:(?:q){1,1})))
	// true
}
