package meta

import "github.com/coregx/ahocorasick"

// prefilter rejects haystacks that cannot contain a match because none of
// the pattern's required literals occur in them. It only ever says "no";
// a haystack that passes still goes through the engine.
type prefilter struct {
	automaton *ahocorasick.Automaton
}

// newPrefilter returns nil when there is nothing to filter on or the
// automaton cannot be built.
func newPrefilter(literals []string) *prefilter {
	builder := ahocorasick.NewBuilder()
	added := 0
	for _, lit := range literals {
		if lit == "" {
			continue
		}
		builder.AddPattern([]byte(lit))
		added++
	}
	if added == 0 {
		return nil
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &prefilter{automaton: automaton}
}

// reject reports whether s can be skipped. A nil prefilter rejects nothing.
func (p *prefilter) reject(s string) bool {
	if p == nil {
		return false
	}
	return !p.automaton.IsMatch([]byte(s))
}
