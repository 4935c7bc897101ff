package meta

import (
	"regexp/syntax"

	"github.com/coregx/coregex"
)

type coregexBackend struct {
	re *coregex.Regex
}

func compileCoregex(pattern string, opts Options, config Config) (*Engine, error) {
	expr := opts.Flags.inline() + pattern

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Engine:  KindCoregex,
			Err:     err,
		}
	}

	// coregex accepted expr, so the stdlib parser will too.
	parsed, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Engine:  KindCoregex,
			Err:     err,
		}
	}

	config.Logger.Debug().
		Str("pattern", pattern).
		Stringer("engine", KindCoregex).
		Msg("compiled pattern")

	return &Engine{
		pattern:   pattern,
		kind:      KindCoregex,
		numSubexp: parsed.MaxCap(),
		backend:   coregexBackend{re: re},
	}, nil
}

func (b coregexBackend) isMatch(s string) bool {
	return b.re.MatchString(s)
}

func (b coregexBackend) findSubmatchIndex(s string) []int {
	return b.re.FindStringSubmatchIndex(s)
}

func (b coregexBackend) findAllIndex(s string, n int) [][]int {
	return b.re.FindAllStringIndex(s, n)
}
