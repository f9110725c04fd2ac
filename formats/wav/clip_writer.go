// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsplit/utils"
)

// ClipWriter materializes clips as numbered 16-bit PCM WAV files in a
// directory. It implements the gate.Sink protocol: Open starts
// <prefix><n>.wav, Write appends one frame, Close finalizes the file.
//
// Files are created lazily on Open, so a stream that is all silence
// produces no files at all.
type ClipWriter struct {
	dir        string
	prefix     string
	sampleRate int
	channels   int

	clipNum int
	file    *os.File
	enc     *gowav.Encoder
	buf     *goaudio.IntBuffer
	names   []string
}

// NewClipWriter returns a ClipWriter targeting dir, creating it if
// needed. Clips are named <prefix>0.wav, <prefix>1.wav, ...
func NewClipWriter(dir, prefix string, sampleRate, channels int) (*ClipWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating clip directory: %w", err)
	}

	return &ClipWriter{
		dir:        dir,
		prefix:     prefix,
		sampleRate: sampleRate,
		channels:   channels,
		buf: &goaudio.IntBuffer{
			Data:           make([]int, channels),
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// Open starts the next clip file.
func (w *ClipWriter) Open() error {
	if w.enc != nil {
		return ErrClipInProgress
	}

	name := filepath.Join(w.dir, fmt.Sprintf("%s%d.wav", w.prefix, w.clipNum))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating clip file: %w", err)
	}

	w.clipNum++
	w.file = f
	w.enc = gowav.NewEncoder(f, w.sampleRate, 16, w.channels, 1)
	w.names = append(w.names, name)

	return nil
}

// Write appends one frame's samples to the open clip.
func (w *ClipWriter) Write(frame []float32) error {
	if w.enc == nil {
		return ErrNoOpenClip
	}

	for i, s := range frame {
		w.buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing clip frame: %w", err)
	}

	return nil
}

// Close finalizes the open clip file (header sizes are patched by the
// encoder on close).
func (w *ClipWriter) Close() error {
	if w.enc == nil {
		return ErrNoOpenClip
	}

	encErr := w.enc.Close()
	fileErr := w.file.Close()
	w.enc = nil
	w.file = nil

	if encErr != nil {
		return fmt.Errorf("finalizing clip: %w", encErr)
	}
	if fileErr != nil {
		return fmt.Errorf("closing clip file: %w", fileErr)
	}

	return nil
}

// Clips returns the paths of all clips opened so far, in stream order.
func (w *ClipWriter) Clips() []string {
	return append([]string(nil), w.names...)
}
