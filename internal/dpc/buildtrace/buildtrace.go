// Package buildtrace times and logs the stages of turning a witness into a
// proof: circuit compilation, setup, proving, and verification. The
// circuit-builder packages themselves stay silent (see the concurrency and
// resource model in the expanded specification); this package and the
// cmd/utxobuild binary are the only places that log, and this package is
// the only one that measures duration, matching the auction protocol's
// separation between its circuit code and its metrics collector.
package buildtrace

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Stage names a phase of the build → prove → verify pipeline.
type Stage string

const (
	StageCompile Stage = "compile"
	StageSetup   Stage = "setup"
	StageProve   Stage = "prove"
	StageVerify  Stage = "verify"
)

// Sample is one recorded duration for a stage.
type Sample struct {
	Stage    Stage
	Duration time.Duration
}

// Collector accumulates stage durations and logs each one as it's
// recorded. It is safe for concurrent use, since independent transactions
// may be built in parallel across threads, each with its own constraint
// system.
type Collector struct {
	log zerolog.Logger

	mu      sync.Mutex
	samples []Sample
}

// New creates a Collector that logs through the given zerolog logger.
func New(log zerolog.Logger) *Collector {
	return &Collector{log: log}
}

// Track runs fn, records how long it took against stage, and logs the
// result at debug level, or at error level when fn fails. The error fn
// returns is passed through unchanged.
func (c *Collector) Track(stage Stage, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	c.mu.Lock()
	c.samples = append(c.samples, Sample{Stage: stage, Duration: elapsed})
	c.mu.Unlock()

	event := c.log.Debug().Str("stage", string(stage)).Dur("elapsed", elapsed)
	if err != nil {
		event = c.log.Error().Str("stage", string(stage)).Dur("elapsed", elapsed).Err(err)
	}
	event.Msg("build stage complete")

	return err
}

// Samples returns every recorded sample, in recording order.
func (c *Collector) Samples() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Sample, len(c.samples))
	copy(out, c.samples)
	return out
}

// Total sums every recorded sample's duration for a given stage.
func (c *Collector) Total(stage Stage) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total time.Duration
	for _, s := range c.samples {
		if s.Stage == stage {
			total += s.Duration
		}
	}
	return total
}
