// Package meta implements the engine selector that compiles a finished
// pattern literal into an executable matcher.
//
// Two engines are available:
//   - coregex: RE2 syntax, linear time, used whenever it can parse the pattern
//   - regexp2: backtracking, supports lookaround assertions and repeat
//     bounds above RE2's limit of 1000
//
// With KindAuto (the default) the selector tries coregex first and falls back
// to regexp2 only when the pattern uses syntax coregex rejects as unsupported.
// Callers never see which engine runs except through Engine.Kind.
package meta

import (
	"time"

	"github.com/rs/zerolog"
)

// Kind selects the engine used to execute a pattern.
type Kind int

const (
	// KindAuto compiles with coregex and falls back to regexp2 for
	// unsupported Perl syntax.
	KindAuto Kind = iota
	// KindCoregex compiles with coregex only.
	KindCoregex
	// KindRegexp2 compiles with regexp2 only.
	KindRegexp2
)

// String returns the engine name.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindCoregex:
		return "coregex"
	case KindRegexp2:
		return "regexp2"
	default:
		return "unknown"
	}
}

// Config controls engine selection and matching limits.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Engine = meta.KindRegexp2
//	config.MatchTimeout = 50 * time.Millisecond
type Config struct {
	// Engine selects the execution engine.
	// Default: KindAuto
	Engine Kind

	// MatchTimeout bounds a single regexp2 match attempt.
	// Zero means no timeout. Ignored by coregex, which runs in linear time.
	// Default: 0
	MatchTimeout time.Duration

	// EnablePrefilter enables the Aho-Corasick literal prefilter in front of
	// the regexp2 engine.
	// Default: true
	EnablePrefilter bool

	// MaxPatternLen caps the length of the pattern literal in bytes.
	// Deeply nested builders grow patterns quickly; this keeps a runaway
	// construction from reaching the parser.
	// Default: 1 << 20
	MaxPatternLen int

	// Logger receives debug output about engine selection.
	// Default: zerolog.Nop()
	Logger zerolog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
func DefaultConfig() Config {
	return Config{
		Engine:          KindAuto,
		EnablePrefilter: true,
		MaxPatternLen:   1 << 20,
		Logger:          zerolog.Nop(),
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Engine: KindAuto, KindCoregex or KindRegexp2
//   - MatchTimeout: >= 0
//   - MaxPatternLen: 1 to 1<<24
func (c Config) Validate() error {
	if c.Engine < KindAuto || c.Engine > KindRegexp2 {
		return &ConfigError{
			Field:   "Engine",
			Message: "must be KindAuto, KindCoregex or KindRegexp2",
		}
	}

	if c.MatchTimeout < 0 {
		return &ConfigError{
			Field:   "MatchTimeout",
			Message: "must not be negative",
		}
	}

	if c.MaxPatternLen < 1 || c.MaxPatternLen > 1<<24 {
		return &ConfigError{
			Field:   "MaxPatternLen",
			Message: "must be between 1 and 16,777,216",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
