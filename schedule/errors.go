package schedule

import "errors"

// ErrNegativeGridSize indicates a grid size below zero.
var ErrNegativeGridSize = errors.New("schedule: grid size must not be negative")
