package yuletide

import "errors"

var (
	// ErrAssetLoad marks an image, font or audio resource that was missing or
	// could not be decoded. The caller substitutes a placeholder or silence.
	ErrAssetLoad = errors.New("yuletide: asset load failure")

	// ErrPlatform marks a window host operation (transparency, always-on-top,
	// monitor query) that failed on this OS.
	ErrPlatform = errors.New("yuletide: platform integration failure")
)
