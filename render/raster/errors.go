package raster

import "errors"

// ErrFrameCount indicates a request for fewer than one frame.
var ErrFrameCount = errors.New("raster: frame count must be at least 1")
