// SPDX-License-Identifier: EPL-2.0

package gate

import "math"

// LevelFunc reduces one frame (one float32 sample per channel, in [-1, 1])
// to a single non-negative loudness value in [0, 1]. It must be
// deterministic and must not modify the frame.
type LevelFunc func(frame []float32) float32

// MaxAbs returns the largest absolute sample value in the frame, so the
// loudest channel drives the gate. This is the default reduction.
func MaxAbs(frame []float32) float32 {
	var peak float32
	for _, s := range frame {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// RMS returns the root mean square of the frame's channels. Compared to
// MaxAbs it reacts less to a single hot channel; useful when one channel
// carries spikes the gate should ignore.
func RMS(frame []float32) float32 {
	if len(frame) == 0 {
		return 0
	}

	var sum float64
	for _, s := range frame {
		sum += float64(s) * float64(s)
	}

	return float32(math.Sqrt(sum / float64(len(frame))))
}
