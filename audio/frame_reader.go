// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// FrameReader chops a Source's interleaved sample stream into frames, one
// sample per channel. It buffers reads internally so per-frame consumers
// (such as a noise gate) do not pay a Source read per frame.
//
// A trailing partial frame, where the stream ends mid-frame, is discarded.
type FrameReader struct {
	src      Source
	channels int
	buf      []float32
	pos      int // next unread sample in buf
	filled   int // valid samples in buf
	eof      bool
}

// NewFrameReader returns a FrameReader over src, or ErrNoChannels when the
// source reports a non-positive channel count.
func NewFrameReader(src Source) (*FrameReader, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("channels %d: %w", channels, ErrNoChannels)
	}

	// Round the buffer down to a whole number of frames.
	size := 4096 / channels * channels
	if size == 0 {
		size = channels
	}

	return &FrameReader{
		src:      src,
		channels: channels,
		buf:      make([]float32, size),
	}, nil
}

// Channels returns the fixed frame width.
func (r *FrameReader) Channels() int { return r.channels }

// SampleRate of the underlying source in Hz.
func (r *FrameReader) SampleRate() int { return r.src.SampleRate() }

// ReadFrame returns the next frame, or io.EOF when the stream is finished.
// The returned slice is only valid until the next ReadFrame call.
func (r *FrameReader) ReadFrame() ([]float32, error) {
	for r.filled-r.pos < r.channels {
		if err := r.fill(); err != nil {
			return nil, err
		}
	}

	frame := r.buf[r.pos : r.pos+r.channels]
	r.pos += r.channels

	return frame, nil
}

// fill moves any unread remainder to the front of the buffer and reads
// more samples from the source.
func (r *FrameReader) fill() error {
	if r.eof {
		return io.EOF
	}

	remainder := r.filled - r.pos
	copy(r.buf, r.buf[r.pos:r.filled])
	r.pos = 0
	r.filled = remainder

	n, err := r.src.ReadSamples(r.buf[r.filled:])
	r.filled += n

	if err == io.EOF {
		r.eof = true
		if r.filled-r.pos < r.channels {
			// Whatever is left is a partial frame; drop it.
			return io.EOF
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading samples: %w", err)
	}

	return nil
}
