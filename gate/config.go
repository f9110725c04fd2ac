// SPDX-License-Identifier: EPL-2.0

package gate

import (
	"fmt"
	"math"
	"time"
)

// Config holds the gate settings. A Config is validated once by New and is
// not mutated afterwards; processing never re-validates.
type Config struct {
	// Threshold is the minimum level considered "loud". It lives in the
	// same [0, 1] domain as the LevelFunc output.
	Threshold float32

	// ReleaseSamples is how many frames the gate stays open after the
	// level last met Threshold. Use ReleaseSamples() to derive it from a
	// release time and a sample rate.
	ReleaseSamples int

	// Level reduces a frame to a loudness value. nil means MaxAbs.
	Level LevelFunc
}

// Validate reports whether the configuration can drive a gate.
func (c Config) Validate() error {
	t := float64(c.Threshold)
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("threshold %v: %w", c.Threshold, ErrThresholdOutOfRange)
	}

	if c.ReleaseSamples < 0 {
		return fmt.Errorf("release samples %d: %w", c.ReleaseSamples, ErrNegativeRelease)
	}

	return nil
}

// level applies the configured reduction, defaulting to MaxAbs.
func (c Config) level(frame []float32) float32 {
	if c.Level == nil {
		return MaxAbs(frame)
	}
	return c.Level(frame)
}

// ReleaseSamples converts a release time to a frame count at sampleRate.
// The result is rounded to the nearest whole frame (half rounds up), so a
// 250ms release at 44100Hz yields 11025 frames.
func ReleaseSamples(release time.Duration, sampleRate int) (int, error) {
	if release < 0 {
		return 0, fmt.Errorf("release %v: %w", release, ErrNegativeReleaseTime)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("sample rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}

	return int(math.Round(release.Seconds() * float64(sampleRate))), nil
}
