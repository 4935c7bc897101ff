package verbex

import (
	"strings"

	"github.com/coregx/verbex/meta"
)

// Regex is a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := verbex.New().Exactly(1).Of("dart").MustCompile()
//	if re.MatchString("dartlang") {
//	    println("matched!")
//	}
type Regex struct {
	engine *meta.Engine
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass it to Builder.CompileWithConfig.
//
// Example:
//
//	config := verbex.DefaultConfig()
//	config.Engine = meta.KindRegexp2
//	re, err := builder.CompileWithConfig(config)
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Compile closes the pending unit and compiles the pattern with the
// builder's flags and the default configuration.
//
// The builder does not validate the pattern beforehand; a malformed nested
// construction surfaces here as a *meta.CompileError.
//
// Example:
//
//	re, err := verbex.New().Start().Exactly(1).Of("p").Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
func (b *Builder) Compile() (*Regex, error) {
	return b.CompileWithConfig(meta.DefaultConfig())
}

// CompileWithConfig is Compile with a custom configuration.
func (b *Builder) CompileWithConfig(config meta.Config) (*Regex, error) {
	engine, err := meta.Compile(b.Literal(), meta.Options{
		Flags:    b.flags(),
		Literals: b.required,
	}, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// This is useful for patterns known to be valid at program start.
//
// Example:
//
//	var pqr = verbex.New().Start().Exactly(3).From('p', 'q', 'r').End().MustCompile()
func (b *Builder) MustCompile() *Regex {
	re, err := b.Compile()
	if err != nil {
		panic("regexp: Compile(`" + b.Literal() + "`): " + err.Error())
	}
	return re
}

func (b *Builder) flags() meta.Flags {
	var f meta.Flags
	if b.ignoreCase {
		f |= meta.FlagIgnoreCase
	}
	if b.multiLine {
		f |= meta.FlagMultiLine
	}
	return f
}

// Match reports whether the byte slice b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(string(b))
}

// MatchString reports whether the string s contains any match of the pattern.
//
// Example:
//
//	re := verbex.New().Start().Exactly(1).Of("p").MustCompile()
//	re.MatchString("p")  // true
//	re.MatchString("qp") // false
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(s)
}

// Find returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found.
func (r *Regex) Find(b []byte) []byte {
	loc := r.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]:loc[1]]
}

// FindString returns a string holding the text of the leftmost match in s.
// Returns empty string if no match is found.
//
// Example:
//
//	re := verbex.New().
//	    Exactly(1).Of("dart").
//	    Behind(func(r *verbex.Builder) *verbex.Builder { return r.Exactly(1).Of("lang") }).
//	    MustCompile()
//	re.FindString("dartlang") // "dart"
func (r *Regex) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b. The match is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
func (r *Regex) FindIndex(b []byte) []int {
	return r.FindStringIndex(string(b))
}

// FindStringIndex returns a two-element slice of integers defining the
// location of the leftmost match in s. The match is at s[loc[0]:loc[1]].
// Returns nil if no match is found.
func (r *Regex) FindStringIndex(s string) []int {
	idx := r.engine.FindSubmatchIndex(s)
	if idx == nil {
		return nil
	}
	return idx[0:2:2]
}

// FindStringSubmatch returns the text of the leftmost match followed by the
// text of every capturing group. Unmatched groups are empty strings.
// Returns nil if no match is found.
//
// Example:
//
//	re := verbex.New().
//	    MinMax(1, 3).Of("p").
//	    Exactly(1).Of("dart").AsCapturingGroup().
//	    Exactly(1).From('p', 'q', 'r').
//	    MustCompile()
//	m := re.FindStringSubmatch("pdartq")
//	// m[0] = "pdartq"
//	// m[1] = "dart"
func (r *Regex) FindStringSubmatch(s string) []string {
	idx := r.engine.FindSubmatchIndex(s)
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] >= 0 {
			out[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return out
}

// FindStringSubmatchIndex returns index pairs for the leftmost match and
// every capturing group. Result[2*i:2*i+2] is the ith group; unmatched
// groups have -1 indices. Returns nil if no match is found.
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	return r.engine.FindSubmatchIndex(s)
}

// FindAllString returns a slice of all successive matches of the pattern in s.
// If n > 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllString(s string, n int) []string {
	locs := r.engine.FindAllIndex(s, n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// FindAllStringIndex returns index pairs of all successive matches in s.
// If n > 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.engine.FindAllIndex(s, n)
}

// ReplaceAllLiteralString returns a copy of src with every match replaced
// by repl, without expanding $ variables.
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	locs := r.engine.FindAllIndex(src, -1)
	if len(locs) == 0 {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src))
	last := 0
	for _, loc := range locs {
		sb.WriteString(src[last:loc[0]])
		sb.WriteString(repl)
		last = loc[1]
	}
	sb.WriteString(src[last:])
	return sb.String()
}

// NumSubexp returns the number of capturing groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.engine.NumSubexp()
}

// String returns the pattern literal the Regex was compiled from.
// Flags are not included.
func (r *Regex) String() string {
	return r.engine.Pattern()
}

// Engine reports which engine executes the pattern.
func (r *Regex) Engine() meta.Kind {
	return r.engine.Kind()
}
