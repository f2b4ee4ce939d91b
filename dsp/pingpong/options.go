package pingpong

import (
	"fmt"

	"github.com/cwbudde/algo-pingpong/dsp/core"
)

// DefaultMaxDelaySeconds is the delay-buffer length allocated by Prepare.
const DefaultMaxDelaySeconds = MaxDelayTimeMs / 1000

// Option mutates engine construction parameters.
type Option func(*engineConfig) error

type engineConfig struct {
	maxDelaySeconds float64
	defaults        Snapshot
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		maxDelaySeconds: DefaultMaxDelaySeconds,
		defaults:        DefaultSnapshot(),
	}
}

// WithMaxDelay sets the buffer length in seconds. It must cover the longest
// configurable delay time, so values below MaxDelayTimeMs/1000 are rejected.
func WithMaxDelay(seconds float64) Option {
	return func(cfg *engineConfig) error {
		if !core.IsFinite(seconds) || seconds < DefaultMaxDelaySeconds {
			return fmt.Errorf("pingpong: max delay must be >= %g s: %f", DefaultMaxDelaySeconds, seconds)
		}
		cfg.maxDelaySeconds = seconds
		return nil
	}
}

// WithDefaults sets the initial parameter values.
func WithDefaults(s Snapshot) Option {
	return func(cfg *engineConfig) error {
		cfg.defaults = s
		return nil
	}
}
