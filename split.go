// SPDX-License-Identifier: EPL-2.0

package audsplit

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/gate"
)

// Split feeds every frame of src through g and dispatches the decisions
// to sink: Open starts a clip, Forward appends the frame, Close
// finalizes the clip. At end of stream the gate is finalized so a clip
// still in progress is closed.
//
// Split returns the number of clips started. Any sink or source error
// aborts the stream immediately and is returned; clips closed before the
// error are unaffected.
//
// Frames passed to sink.Write are only valid for the duration of the
// call; a sink that retains frames must copy them.
func Split(src audio.Source, g *gate.Gate, sink gate.Sink) (int, error) {
	fr, err := audio.NewFrameReader(src)
	if err != nil {
		return 0, err
	}

	clips := 0

	for {
		frame, err := fr.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			return clips, err
		}

		switch g.Process(frame) {
		case gate.Open:
			if err := sink.Open(); err != nil {
				return clips, fmt.Errorf("opening clip: %w", err)
			}
			clips++

			if err := sink.Write(frame); err != nil {
				return clips, fmt.Errorf("writing clip frame: %w", err)
			}
		case gate.Forward:
			if err := sink.Write(frame); err != nil {
				return clips, fmt.Errorf("writing clip frame: %w", err)
			}
		case gate.Close:
			if err := sink.Close(); err != nil {
				return clips, fmt.Errorf("closing clip: %w", err)
			}
		}
	}

	if g.Finalize() == gate.Close {
		if err := sink.Close(); err != nil {
			return clips, fmt.Errorf("closing clip: %w", err)
		}
	}

	return clips, nil
}

// SplitStream is a convenience wrapper around Split: it derives the
// release frame count from a release duration and the source's sample
// rate, builds a gate with the default MaxAbs reduction, and runs the
// split.
//
// Example:
//
//	clips, err := audsplit.SplitStream(src, sink, 0.1, 250*time.Millisecond)
func SplitStream(src audio.Source, sink gate.Sink, threshold float32, release time.Duration) (int, error) {
	releaseSamples, err := gate.ReleaseSamples(release, src.SampleRate())
	if err != nil {
		return 0, fmt.Errorf("deriving release samples: %w", err)
	}

	g, err := gate.New(gate.Config{
		Threshold:      threshold,
		ReleaseSamples: releaseSamples,
	})
	if err != nil {
		return 0, fmt.Errorf("configuring gate: %w", err)
	}

	return Split(src, g, sink)
}
