// SPDX-License-Identifier: EPL-2.0

// Package audsplit splits audio streams into clips at natural pauses.
//
// A noise gate watches the stream's loudness frame by frame: while the
// level stays above a threshold (or within a hold-open release window
// after it last was), frames belong to the current clip; sustained
// silence ends the clip and is skipped. Long recordings (field
// recordings, broadcast monitoring, dictation) come out as one file per
// spoken or played passage.
//
// # Quick Start
//
// Split a WAV file into clips in an output directory:
//
//	f, _ := os.Open("recording.wav")
//	defer f.Close()
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	sink, err := wav.NewClipWriter("out", "clip_", src.SampleRate(), src.Channels())
//	if err != nil {
//	    return err
//	}
//
//	clips, err := audsplit.SplitStream(src, sink, 0.1, 250*time.Millisecond)
//
// # Architecture
//
// The module is a small pipeline of three roles:
//
//   - a Source (package audio) produces decoded float32 frames; the
//     format decoders under formats/ all implement it
//   - the Gate (package gate) decides per frame whether the frame is
//     clip audio or silence, with release-time hysteresis
//   - a Sink receives clip boundaries and frames; formats/wav.ClipWriter
//     writes one numbered WAV file per clip
//
// Split in this package is the driver connecting the three. Everything
// runs single-threaded as a strict left-to-right fold over the frame
// sequence; to split several streams concurrently, give each its own
// gate and sink.
//
// # Supported Formats
//
// Input decoding is provided for:
//   - WAV (PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Tuning
//
// Threshold is in the normalized [0, 1] amplitude domain: 0.1 is roughly
// -20 dBFS. The release time decides how long a pause must be to split:
// shorter values split aggressively, longer values bridge hesitations.
// For multi-channel input the loudest channel drives the gate by
// default; gate.RMS is available when average energy fits better.
//
// # Pipeline Stages
//
// The audio package also provides optional stages that compose in front
// of the splitter:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//	clips, err := audsplit.SplitStream(mono, sink, 0.1, 250*time.Millisecond)
package audsplit
