// SPDX-License-Identifier: EPL-2.0

package gate

// Decision is what the gate decided for a single frame. Exactly one
// Decision is produced per call to Process, plus one from Finalize.
type Decision uint8

const (
	// Drop: the gate is closed and the frame is silence; no sink call.
	Drop Decision = iota

	// Open: the level met the threshold while the gate was closed. A new
	// clip starts at this frame, and the frame belongs to it.
	Open

	// Forward: the frame belongs to the clip already in progress, either
	// because the level met the threshold or because the release window
	// is still counting down.
	Forward

	// Close: the release window ran out. The clip ended at the previous
	// frame; the frame that produced Close is NOT part of it.
	Close
)

// Forwarded reports whether the frame that produced d belongs to a clip.
func (d Decision) Forwarded() bool { return d == Open || d == Forward }

func (d Decision) String() string {
	switch d {
	case Drop:
		return "drop"
	case Open:
		return "open"
	case Forward:
		return "forward"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Sink receives clip boundaries and frames from the split driver, in
// stream order. Open allocates a fresh destination, Write appends one
// frame's samples to it, Close finalizes it. Any error aborts the stream;
// clips closed before the error are untouched.
type Sink interface {
	Open() error
	Write(frame []float32) error
	Close() error
}

// Gate is a noise gate that classifies a frame stream into clips and
// silence. It keeps the clip open for a configurable number of frames
// after the level last met the threshold, so short dips (breaths, word
// gaps, note decay) do not split a clip.
//
// A Gate starts closed, is advanced exactly once per frame via Process,
// and must be finished with a single Finalize call so a clip still in
// progress at end of stream is closed. Each stream needs its own Gate;
// a Gate holds no references to past frames, only the countdown.
type Gate struct {
	cfg       Config
	open      bool
	remaining int
}

// New returns a closed Gate for cfg, or a validation error. A Gate must
// not be used when New returned an error.
func New(cfg Config) (*Gate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Gate{cfg: cfg}, nil
}

// IsOpen reports whether a clip is currently in progress.
func (g *Gate) IsOpen() bool { return g.open }

// Remaining returns how many more quiet frames the gate will stay open.
// Meaningful only while IsOpen.
func (g *Gate) Remaining() int { return g.remaining }

// Process advances the gate by one frame and returns the decision for it.
//
// A loud frame (level >= threshold) always refreshes the countdown to the
// full release window, no partial credit. A quiet frame consumes one frame
// of the countdown; when the countdown is already spent, the gate closes
// and the quiet frame is dropped.
func (g *Gate) Process(frame []float32) Decision {
	if g.cfg.level(frame) >= g.cfg.Threshold {
		wasOpen := g.open
		g.open = true
		g.remaining = g.cfg.ReleaseSamples

		if wasOpen {
			return Forward
		}
		return Open
	}

	if !g.open {
		return Drop
	}

	if g.remaining > 0 {
		g.remaining--
		return Forward
	}

	g.open = false
	return Close
}

// Finalize ends the stream. If a clip is in progress it is closed and
// Finalize returns Close; otherwise it returns Drop. Call it exactly once,
// after the last Process call.
func (g *Gate) Finalize() Decision {
	if !g.open {
		return Drop
	}

	g.open = false
	g.remaining = 0
	return Close
}
