package quadtree

// Config holds the tunable parameters of a Tree build. Following the functional-options
// pattern the teacher library used for geometric configuration, a Config is built up via
// Option values rather than populated directly.
type Config struct {
	// MaxLinesPerNode is the number of segment references a leaf may hold before it
	// subdivides, provided MaxDepth has not been reached.
	MaxLinesPerNode int

	// MaxDepth bounds recursive subdivision. A node at MaxDepth never subdivides
	// regardless of how many segments it holds.
	MaxDepth int

	// MinCellSize bounds subdivision from the other direction: a node is never split into
	// quadrants smaller than MinCellSize on a side.
	MinCellSize float64

	// BBoxEpsilon is a fixed absolute margin added to every swept bounding box,
	// independent of velocity.
	BBoxEpsilon float64

	// BBoxVelFactor scales how far every segment's swept bounding box is inflated beyond
	// its literal swept parallelogram, expressed as a multiple of the tree-wide maximum
	// segment speed times dt (see Tree.maxSpeed), not the individual segment's own speed.
	BBoxVelFactor float64

	// EnableDebugStats causes Build to populate Tree.Stats with node and candidate-pair
	// counts, at a small bookkeeping cost.
	EnableDebugStats bool
}

// DefaultConfig returns the Config used when no options are supplied.
func DefaultConfig() Config {
	return Config{
		MaxLinesPerNode:  32,
		MaxDepth:         12,
		MinCellSize:      1e-3,
		BBoxEpsilon:      1e-4,
		BBoxVelFactor:    0.2,
		EnableDebugStats: false,
	}
}

// Option is a functional option that customizes a Config.
type Option func(*Config)

// WithMaxLinesPerNode overrides the per-leaf segment capacity before subdivision.
func WithMaxLinesPerNode(n int) Option {
	return func(c *Config) { c.MaxLinesPerNode = n }
}

// WithMaxDepth overrides the maximum subdivision depth.
func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

// WithMinCellSize overrides the smallest permitted cell side length.
func WithMinCellSize(size float64) Option {
	return func(c *Config) { c.MinCellSize = size }
}

// WithBBoxEpsilon overrides the fixed absolute swept-bounding-box margin.
func WithBBoxEpsilon(eps float64) Option {
	return func(c *Config) { c.BBoxEpsilon = eps }
}

// WithBBoxVelFactor overrides the swept-bounding-box inflation factor.
func WithBBoxVelFactor(factor float64) Option {
	return func(c *Config) { c.BBoxVelFactor = factor }
}

// WithDebugStats enables Stats population on the built Tree.
func WithDebugStats() Option {
	return func(c *Config) { c.EnableDebugStats = true }
}

// Apply folds a sequence of Options onto DefaultConfig, applying overrides in order.
func Apply(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
