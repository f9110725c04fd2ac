package gate

import "errors"

var (
	ErrThresholdOutOfRange = errors.New("threshold must be a finite value in [0, 1]")
	ErrNegativeRelease     = errors.New("release sample count must not be negative")
	ErrNegativeReleaseTime = errors.New("release time must not be negative")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
)
