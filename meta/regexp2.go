package meta

import (
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"

	"github.com/coregx/verbex/internal/conv"
)

type regexp2Backend struct {
	re        *regexp2.Regexp
	numSubexp int
	log       zerolog.Logger
}

func compileRegexp2(pattern string, opts Options, config Config) (*Engine, error) {
	re, err := regexp2.Compile(pattern, opts.Flags.options())
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Engine:  KindRegexp2,
			Err:     err,
		}
	}
	if config.MatchTimeout > 0 {
		re.MatchTimeout = config.MatchTimeout
	}

	var pf *prefilter
	if config.EnablePrefilter && !opts.Flags.Has(FlagIgnoreCase) {
		pf = newPrefilter(opts.Literals)
	}

	config.Logger.Debug().
		Str("pattern", pattern).
		Stringer("engine", KindRegexp2).
		Bool("prefilter", pf != nil).
		Msg("compiled pattern")

	numSubexp := len(re.GetGroupNumbers()) - 1
	return &Engine{
		pattern:   pattern,
		kind:      KindRegexp2,
		numSubexp: numSubexp,
		backend: &regexp2Backend{
			re:        re,
			numSubexp: numSubexp,
			log:       config.Logger,
		},
		prefilter: pf,
	}, nil
}

func (b *regexp2Backend) isMatch(s string) bool {
	ok, err := b.re.MatchString(s)
	if err != nil {
		b.matchFailed(err)
		return false
	}
	return ok
}

func (b *regexp2Backend) findSubmatchIndex(s string) []int {
	m, err := b.re.FindStringMatch(s)
	if err != nil {
		b.matchFailed(err)
		return nil
	}
	if m == nil {
		return nil
	}
	return b.indices(m, offsetsFor(s))
}

func (b *regexp2Backend) findAllIndex(s string, n int) [][]int {
	offsets := offsetsFor(s)

	var out [][]int
	prevEnd := -1
	m, err := b.re.FindStringMatch(s)
	for m != nil {
		start, end := span(offsets, m.Index, m.Length)
		// An empty match abutting the previous match is not reported.
		if start != end || start != prevEnd {
			out = append(out, []int{start, end})
			if n > 0 && len(out) >= n {
				break
			}
		}
		prevEnd = end
		m, err = b.re.FindNextMatch(m)
	}
	if err != nil {
		b.matchFailed(err)
	}
	return out
}

// indices flattens the groups of m into stdlib submatch index form.
func (b *regexp2Backend) indices(m *regexp2.Match, offsets conv.Offsets) []int {
	out := make([]int, 2*(b.numSubexp+1))
	for i := 0; i <= b.numSubexp; i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			out[2*i], out[2*i+1] = -1, -1
			continue
		}
		out[2*i], out[2*i+1] = span(offsets, g.Index, g.Length)
	}
	return out
}

// matchFailed logs a match error. regexp2 only fails a match on timeout.
func (b *regexp2Backend) matchFailed(err error) {
	b.log.Warn().
		Str("pattern", b.re.String()).
		Dur("timeout", b.re.MatchTimeout).
		Err(err).
		Msg("match aborted, reporting no match")
}

// offsetsFor returns nil for ASCII input, where rune and byte offsets agree.
func offsetsFor(s string) conv.Offsets {
	if conv.ASCII(s) {
		return nil
	}
	return conv.RuneOffsets(s)
}

func span(offsets conv.Offsets, start, length int) (int, int) {
	if offsets == nil {
		return start, start + length
	}
	return offsets.Span(start, length)
}
