// SPDX-License-Identifier: EPL-2.0

// Package gate implements a noise gate for splitting audio at silence.
//
// The gate consumes one frame at a time (one float32 sample per channel,
// normalized to [-1, 1]) and classifies the stream into clips and silence.
// A configurable release window keeps a clip open across short quiet gaps,
// which preserves trailing decay and avoids chattering near the threshold.
//
// # Decisions
//
// Each frame produces exactly one Decision:
//
//	Open    — a new clip starts at this frame (frame is forwarded)
//	Forward — the frame belongs to the current clip
//	Close   — the clip ended at the PREVIOUS frame; this frame is silence
//	Drop    — silence outside any clip
//
// # Usage
//
//	cfg := gate.Config{Threshold: 0.1, ReleaseSamples: 11025}
//	g, err := gate.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	for _, frame := range frames {
//	    switch g.Process(frame) {
//	    case gate.Open:
//	        // allocate a new clip, then append frame
//	    case gate.Forward:
//	        // append frame to the current clip
//	    case gate.Close:
//	        // finalize the current clip; frame is not part of it
//	    }
//	}
//	if g.Finalize() == gate.Close {
//	    // finalize the clip that was still in progress
//	}
//
// The audsplit root package wires this loop to an audio.Source and a Sink;
// most callers want audsplit.Split instead of driving the gate by hand.
//
// # Level reduction
//
// Multi-channel frames are reduced to a single loudness value before the
// threshold comparison. MaxAbs (the default) lets the loudest channel
// drive the gate; RMS averages energy across channels. Config.Level
// accepts any LevelFunc.
//
// # Hold-open placement
//
// The release window attaches to the trailing edge of loud audio: a loud
// frame at any point during the countdown refreshes it fully. Counting
// this way needs no buffering of past frames, only a single integer.
package gate
