package svgdoc

import "errors"

var (
	// ErrDuplicateDefinition indicates a second definition with an existing id.
	ErrDuplicateDefinition = errors.New("svgdoc: duplicate definition id")
	// ErrUnknownReference indicates an instance pointing at an undefined id.
	ErrUnknownReference = errors.New("svgdoc: reference to undefined id")
	// ErrEmptyID indicates a definition without an id.
	ErrEmptyID = errors.New("svgdoc: definition id must not be empty")
)
