package raster

// Option customises a Renderer.
type Option func(*Renderer)

// DefaultScale is the number of pixels per scene unit.
const DefaultScale = 4.0

// WithScale sets the number of pixels per scene unit. Panics if k <= 0.
func WithScale(k float64) Option {
	if !(k > 0) {
		panic("raster: WithScale(k<=0)")
	}
	return func(r *Renderer) { r.scale = k }
}

// WithLabels draws each cell's ring index at its centre, in scene units of
// the given size. Panics if size <= 0.
func WithLabels(size float64) Option {
	if !(size > 0) {
		panic("raster: WithLabels(size<=0)")
	}
	return func(r *Renderer) { r.labelSize = size }
}
