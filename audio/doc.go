// SPDX-License-Identifier: EPL-2.0

// Package audio provides the source pipeline feeding the splitter.
//
// This package contains the building blocks between a decoded audio
// stream and the gate:
//   - Source interface for audio input
//   - FrameReader for per-frame consumption
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - Registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processing stages implement it, so stages chain
// freely: decoder -> resampler -> mono mixer -> frame reader.
//
// # Frames
//
// The gate consumes one frame at a time: one sample per channel at a
// single time index. FrameReader turns a Source's bulk interleaved reads
// into per-frame slices:
//
//	fr, err := audio.NewFrameReader(src)
//	for {
//	    frame, err := fr.ReadFrame()
//	    if err == io.EOF {
//	        break
//	    }
//	    // feed frame to the gate
//	}
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]: 0.0 is silence, ±1.0 is full scale.
// The normalized format keeps the gate threshold independent of the
// source's bit depth.
//
// # Error Handling
//
// Pipeline stages return io.EOF when no more data is available; other
// errors indicate a problem with the source or processing and wrap the
// underlying cause.
package audio
