package scene

import "errors"

// ErrInvalidConfig indicates a Config field outside its domain, typically in
// a hand-built Config that bypassed the option constructors.
var ErrInvalidConfig = errors.New("scene: invalid configuration")
