// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and the WAV clip sink.
//
// It uses github.com/go-audio/wav for both directions: Decoder turns a
// WAV stream into an audio.Source for the pipeline, and ClipWriter
// receives the splitter's clip events and writes numbered 16-bit PCM
// files, one per clip.
package wav
