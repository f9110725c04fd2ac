// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into the pipeline's Source form.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always emits
// 16-bit stereo PCM; mono inputs arrive duplicated on both channels.
package mp3
