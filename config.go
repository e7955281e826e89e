package markre

import (
	"errors"

	"github.com/coregx/markre/literal"
	"github.com/coregx/markre/prefilter"
)

// ErrInvalidConfig indicates a Config failed validation.
var ErrInvalidConfig = errors.New("markre: invalid configuration")

// Config controls how a pattern is compiled.
//
// Example:
//
//	config := markre.DefaultConfig()
//	config.EnablePrefilter = false // always run mark propagation
//	re, err := markre.CompileWithConfig("bc", config)
type Config struct {
	// EnablePrefilter enables literal-based line rejection.
	// Default: true
	EnablePrefilter bool

	// MaxLiteralLen caps the literal extracted for the prefilter. Patterns
	// longer than this get a prefix prefilter that still needs
	// propagation to confirm. Default: 64
	MaxLiteralLen int

	// Tracker sets when an ineffective prefilter is retired.
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns the default compilation settings.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MaxLiteralLen:   literal.DefaultConfig().MaxLiteralLen,
		Tracker:         prefilter.DefaultTrackerConfig(),
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if !c.EnablePrefilter {
		return nil
	}
	if c.MaxLiteralLen < 1 {
		return &ConfigError{Field: "MaxLiteralLen", Message: "must be at least 1"}
	}
	if c.Tracker.MinEfficiency < 0 || c.Tracker.MinEfficiency > 1 {
		return &ConfigError{Field: "Tracker.MinEfficiency", Message: "must be within [0, 1]"}
	}
	return nil
}

// ConfigError names the invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return "markre: invalid configuration: " + e.Field + " " + e.Message
}

// Unwrap returns ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
