package meta

// Options carries what the pattern's author knows about the pattern,
// as opposed to Config, which carries caller policy.
type Options struct {
	// Flags are the matching modes to compile with.
	Flags Flags

	// Literals are texts every match is known to contain.
	// They feed the regexp2 prefilter; an empty list disables it.
	Literals []string
}

// backend is the minimal surface shared by both engines.
// All positions are byte offsets into the input string.
type backend interface {
	isMatch(s string) bool
	findSubmatchIndex(s string) []int
	findAllIndex(s string, n int) [][]int
}

// Engine is a compiled pattern bound to one execution engine.
//
// An Engine is safe for concurrent use.
type Engine struct {
	pattern   string
	kind      Kind
	numSubexp int
	backend   backend
	prefilter *prefilter
}

// Compile compiles pattern with the given options and configuration.
//
// Example:
//
//	engine, err := meta.Compile(`(?:dart)(?=lang)`, meta.Options{}, meta.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(engine.Kind()) // regexp2
func Compile(pattern string, opts Options, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if len(pattern) > config.MaxPatternLen {
		return nil, &CompileError{
			Pattern: pattern,
			Engine:  config.Engine,
			Err:     ErrPatternTooLong,
		}
	}

	switch config.Engine {
	case KindCoregex:
		return compileCoregex(pattern, opts, config)
	case KindRegexp2:
		return compileRegexp2(pattern, opts, config)
	}

	engine, err := compileCoregex(pattern, opts, config)
	if err == nil {
		return engine, nil
	}
	if !needsBacktracker(err) {
		return nil, err
	}

	config.Logger.Debug().
		Str("pattern", pattern).
		Err(err).
		Msg("coregex rejected pattern, falling back to regexp2")
	return compileRegexp2(pattern, opts, config)
}

// Pattern returns the pattern the engine was compiled from, without inline
// flags.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Kind returns the engine that executes the pattern: KindCoregex or
// KindRegexp2, never KindAuto.
func (e *Engine) Kind() Kind {
	return e.kind
}

// NumSubexp returns the number of capturing groups, not counting the
// whole match.
func (e *Engine) NumSubexp() int {
	return e.numSubexp
}

// IsMatch reports whether s contains a match.
func (e *Engine) IsMatch(s string) bool {
	if e.prefilter.reject(s) {
		return false
	}
	return e.backend.isMatch(s)
}

// FindSubmatchIndex returns index pairs for the leftmost match and every
// capturing group, or nil if there is no match.
// Unmatched groups have -1 indices.
func (e *Engine) FindSubmatchIndex(s string) []int {
	if e.prefilter.reject(s) {
		return nil
	}
	return e.backend.findSubmatchIndex(s)
}

// FindAllIndex returns index pairs of successive non-overlapping matches.
// If n > 0, at most n matches are returned; if n < 0, all of them.
// n == 0 returns nil.
func (e *Engine) FindAllIndex(s string, n int) [][]int {
	if n == 0 || e.prefilter.reject(s) {
		return nil
	}
	return e.backend.findAllIndex(s, n)
}
