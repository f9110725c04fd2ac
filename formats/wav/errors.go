package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyPCMSupported    = errors.New("only PCM WAV supported")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrNoOpenClip          = errors.New("no clip is open")
	ErrClipInProgress      = errors.New("a clip is already open")
)
