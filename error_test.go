package verbex

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/verbex/meta"
)

// TestCompileErrorFromInvertedBounds verifies a pattern that neither engine
// accepts surfaces as a *meta.CompileError.
func TestCompileErrorFromInvertedBounds(t *testing.T) {
	b := New().MinMax(5, 2).Of("p")

	_, err := b.Compile()
	if err == nil {
		t.Fatal("Compile() expected error for inverted bounds")
	}

	var compileErr *meta.CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Compile() error = %T, want *meta.CompileError", err)
	}
	if compileErr.Pattern != b.Literal() {
		t.Errorf("CompileError.Pattern = %q, want %q", compileErr.Pattern, b.Literal())
	}
	if !errors.Is(b.Err(), ErrInvertedBounds) {
		t.Errorf("Err() = %v, want ErrInvertedBounds", b.Err())
	}
}

// TestCompileErrorForcedCoregex verifies lookaround is rejected when the
// fallback is switched off, with the stdlib message.
func TestCompileErrorForcedCoregex(t *testing.T) {
	config := DefaultConfig()
	config.Engine = meta.KindCoregex

	_, err := New().
		Exactly(1).Of("dart").
		Behind(func(r *Builder) *Builder { return r.Exactly(1).Of("lang") }).
		CompileWithConfig(config)
	if err == nil {
		t.Fatal("CompileWithConfig() expected error")
	}
	if !strings.HasPrefix(err.Error(), "error parsing regexp: invalid or unsupported Perl syntax") {
		t.Errorf("error = %q, want stdlib syntax error", err.Error())
	}
}

// TestMustCompilePanicFormat verifies the MustCompile panic message follows
// stdlib format.
func TestMustCompilePanicFormat(t *testing.T) {
	b := New().MinMax(5, 2).Of("p")

	var ourPanic string
	func() {
		defer func() {
			if r := recover(); r != nil {
				ourPanic = r.(string)
			}
		}()
		b.MustCompile()
	}()

	wantPrefix := "regexp: Compile(`"
	if !strings.HasPrefix(ourPanic, wantPrefix) {
		t.Errorf("MustCompile panic should start with %q, got: %s", wantPrefix, ourPanic)
	}
	if !strings.Contains(ourPanic, "`"+b.Literal()+"`") {
		t.Errorf("MustCompile panic should contain pattern in backticks, got: %s", ourPanic)
	}
}

// TestConfigErrorPrefix verifies config errors use "regexp:" prefix.
func TestConfigErrorPrefix(t *testing.T) {
	config := DefaultConfig()
	config.MaxPatternLen = 0

	_, err := New().Exactly(1).Of("p").CompileWithConfig(config)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}

	var configErr *meta.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("error = %T, want *meta.ConfigError", err)
	}
	if !strings.HasPrefix(err.Error(), "regexp:") {
		t.Errorf("config error should start with 'regexp:', got: %s", err.Error())
	}
}

func TestPatternTooLong(t *testing.T) {
	config := DefaultConfig()
	config.MaxPatternLen = 16

	_, err := New().Exactly(1).Of("a fairly long literal").CompileWithConfig(config)
	if !errors.Is(err, meta.ErrPatternTooLong) {
		t.Errorf("CompileWithConfig() error = %v, want ErrPatternTooLong", err)
	}
}
