// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audsplit/utils"
)

// Resampler streams from src at a different sample rate using cubic
// interpolation over a sliding four-frame window. Works on interleaved
// samples and preserves the channel count. Edge frames are duplicated at
// the start and end of the stream so the window is always full.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// step is how far the source position moves per output frame.
	step float64
	// pos is the source position of the next output frame. The window
	// holds source frames winIdx-1 .. winIdx+2.
	pos    float64
	winIdx int
	win    [4][]float32

	primed  bool
	srcEOF  bool
	srcRead int // real frames read from the source
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readSrcFrame fills dst with one source frame. ok is false at end of
// stream; a trailing partial frame is discarded.
func (r *Resampler) readSrcFrame(dst []float32) (ok bool, err error) {
	if r.srcEOF {
		return false, io.EOF
	}

	got := 0
	for got < r.channels {
		n, rdErr := r.src.ReadSamples(dst[got:r.channels])
		got += n

		if rdErr == io.EOF {
			r.srcEOF = true
			if got < r.channels {
				return false, io.EOF
			}
			return true, nil
		}
		if rdErr != nil {
			return false, fmt.Errorf("reading source frame: %w", rdErr)
		}
		if n == 0 {
			// No progress and no error; treat the stream as done.
			r.srcEOF = true
			return false, io.EOF
		}
	}

	return true, nil
}

// prime fills the window with the first source frames, duplicating edges
// when the stream is shorter than the window.
func (r *Resampler) prime() error {
	ok, err := r.readSrcFrame(r.win[1])
	if !ok {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}
	r.srcRead = 1
	copy(r.win[0], r.win[1])

	for i := 2; i < 4; i++ {
		ok, err := r.readSrcFrame(r.win[i])
		switch {
		case ok:
			r.srcRead++
		case err == io.EOF:
			copy(r.win[i], r.win[i-1])
		default:
			return err
		}
	}

	r.primed = true
	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]

	ok, err := r.readSrcFrame(r.win[3])
	switch {
	case ok:
		r.srcRead++
	case err == io.EOF:
		copy(r.win[3], r.win[2])
	default:
		return err
	}

	r.winIdx++
	return nil
}

// ReadSamples produces interleaved samples at the destination rate. dst
// length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		idx := int(r.pos)

		for r.winIdx < idx {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// Past the last real frame means the stream is done.
		if r.srcEOF && r.pos > float64(r.srcRead-1) {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		frac := float32(r.pos - float64(idx))
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], frac)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
