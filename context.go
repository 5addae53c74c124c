package fx

// Quality selects the resampling filter used when a node has to resample
// its content against the context transform.
type Quality uint8

// Quality constants, from fastest to best.
const (
	// QualityFast uses nearest-neighbor sampling.
	QualityFast Quality = iota

	// QualityGood uses bilinear sampling. This is the default.
	QualityGood

	// QualityBest uses Catmull-Rom sampling.
	QualityBest
)

// String returns a human-readable name for the quality level.
func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "Fast"
	case QualityGood:
		return "Good"
	case QualityBest:
		return "Best"
	default:
		return "Unknown"
	}
}

// Context carries the caller-supplied parameters of a render pass:
// the user-space to device-space transform, a resampling quality hint,
// and an optional region of interest.
//
// Filter nodes pass the context through to their sources unchanged;
// only leaf nodes (see SourceNode) consume the transform and hints.
//
// A Context is immutable after construction and may be shared between
// concurrent Render calls.
type Context struct {
	transform Matrix
	quality   Quality
	region    Rect
	hasRegion bool
}

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithTransform sets the user-space to device-space transform.
// The default is the identity transform.
func WithTransform(m Matrix) ContextOption {
	return func(c *Context) {
		c.transform = m
	}
}

// WithQuality sets the resampling quality hint.
// The default is QualityGood.
func WithQuality(q Quality) ContextOption {
	return func(c *Context) {
		c.quality = q
	}
}

// WithRegion restricts rendering to a region of interest in device space.
// Leaf nodes may use it to avoid producing pixels outside the region.
func WithRegion(r Rect) ContextOption {
	return func(c *Context) {
		c.region = r
		c.hasRegion = true
	}
}

// NewContext creates a rendering context.
//
// Example:
//
//	ctx := fx.NewContext(
//	    fx.WithTransform(fx.Scale(2, 2)),
//	    fx.WithQuality(fx.QualityBest),
//	)
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		transform: IdentityMatrix(),
		quality:   QualityGood,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transform returns the user-space to device-space transform.
func (c *Context) Transform() Matrix {
	return c.transform
}

// Quality returns the resampling quality hint.
func (c *Context) Quality() Quality {
	return c.quality
}

// Region returns the region of interest and whether one was set.
func (c *Context) Region() (Rect, bool) {
	return c.region, c.hasRegion
}
