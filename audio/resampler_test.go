// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	res := NewResampler(src, 16000)

	if res.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", res.SampleRate())
	}
	if res.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", res.Channels())
	}
}

func TestResampler_SameRatePassesValuesThrough(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 1, 50, func(frame, channel int) float32 {
		return float32(frame) / 100
	})
	res := NewResampler(src, 8000)

	out := drain(t, res, 16)
	if len(out) != 50 {
		t.Fatalf("output samples = %d, want 50", len(out))
	}

	// At a 1:1 ratio the interpolation lands exactly on source frames.
	for i, v := range out {
		want := float32(i) / 100
		if math.Abs(float64(v-want)) > 1e-5 {
			t.Errorf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestResampler_Downsampling(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 44100, 440)
	res := NewResampler(src, 16000)

	out := drain(t, res, 4096)

	// One second of audio should come out as roughly one second at the
	// new rate.
	if len(out) < 15990 || len(out) > 16010 {
		t.Errorf("output samples = %d, want ~16000", len(out))
	}

	// Values stay in range.
	for i, v := range out {
		if v < -1.01 || v > 1.01 {
			t.Fatalf("out[%d] = %v, outside [-1, 1]", i, v)
		}
	}
}

func TestResampler_Upsampling(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 1, 8000, 200)
	res := NewResampler(src, 44100)

	out := drain(t, res, 4096)
	if len(out) < 44050 || len(out) > 44150 {
		t.Errorf("output samples = %d, want ~44100", len(out))
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	// Distinct constants per channel must survive resampling.
	src := newMockSource(44100, 2, 4410, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.75
	})
	res := NewResampler(src, 22050)

	out := drain(t, res, 4096)
	if len(out)%2 != 0 {
		t.Fatalf("output samples = %d, want even count", len(out))
	}

	for f := 0; f < len(out)/2; f++ {
		l, r := out[f*2], out[f*2+1]
		if math.Abs(float64(l-0.25)) > 0.001 {
			t.Errorf("frame %d left = %v, want 0.25", f, l)
		}
		if math.Abs(float64(r+0.75)) > 0.001 {
			t.Errorf("frame %d right = %v, want -0.75", f, r)
		}
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	res := NewResampler(newSilentSource(8000, 1, 0), 16000)

	buf := make([]float32, 16)
	n, err := res.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestResampler_VeryShortSource(t *testing.T) {
	t.Parallel()

	// Two frames is shorter than the interpolation window.
	src := newConstantSource(8000, 1, 2, 0.5)
	res := NewResampler(src, 16000)

	out := drain(t, res, 16)
	if len(out) == 0 {
		t.Fatal("no output from short source")
	}

	for i, v := range out {
		if math.Abs(float64(v-0.5)) > 0.001 {
			t.Errorf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	res := NewResampler(src, 16000)

	buf := make([]float32, 7) // not a multiple of 2
	if _, err := res.ReadSamples(buf); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_SmallBuffer(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.3)
	res := NewResampler(src, 4000)

	// Tiny reads must still make progress.
	out := drain(t, res, 2)
	if len(out) < 48 || len(out) > 52 {
		t.Errorf("output samples = %d, want ~50", len(out))
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	res := NewResampler(newSilentSource(8000, 1, 10), 16000)
	if err := res.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
