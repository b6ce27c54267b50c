package skiplist

import "go.uber.org/zap"

// Tunable defaults: a maximum of 16 levels, a 0.25 level-up
// probability, a 4096-byte node split threshold, and 128 bytes of default
// edit slack on every gap leaf.
const (
	DefaultMaxLevel    = 16
	DefaultP           = 0.25
	DefaultNodeMaxSize = 4096
	DefaultGapSize     = 128
)

// config holds the fully-resolved construction parameters for a Sequence.
type config struct {
	maxLevel    int
	p           float64
	nodeMaxSize int
	gapSize     int
	source      Source
	pool        *NodePool
	logger      *zap.Logger
}

func defaultConfig() *config {
	return &config{
		maxLevel:    DefaultMaxLevel,
		p:           DefaultP,
		nodeMaxSize: DefaultNodeMaxSize,
		gapSize:     DefaultGapSize,
		source:      newDefaultSource(),
		pool:        NewNodePool(),
		logger:      zap.NewNop(),
	}
}

// Option configures a Sequence at construction time.
type Option func(*config)

// WithMaxLevel overrides the skip list's maximum level. Panics at
// construction if lvl is not positive.
func WithMaxLevel(lvl int) Option {
	return func(c *config) {
		if lvl < 1 {
			panic("skiplist: WithMaxLevel requires lvl >= 1")
		}
		c.maxLevel = lvl
	}
}

// WithP overrides the level-generator's up-probability.
func WithP(p float64) Option {
	return func(c *config) {
		if p <= 0 || p >= 1 {
			panic("skiplist: WithP requires 0 < p < 1")
		}
		c.p = p
	}
}

// WithNodeMaxSize overrides the byte threshold above which a node is split.
func WithNodeMaxSize(n int) Option {
	return func(c *config) {
		if n < 1 {
			panic("skiplist: WithNodeMaxSize requires n >= 1")
		}
		c.nodeMaxSize = n
	}
}

// WithGapSize overrides the default edit slack retained by gap leaves.
func WithGapSize(n int) Option {
	return func(c *config) {
		if n < 1 {
			panic("skiplist: WithGapSize requires n >= 1")
		}
		c.gapSize = n
	}
}

// WithSource injects the uniform random source used by the level
// generator, for reproducible tests.
func WithSource(src Source) Option {
	return func(c *config) { c.source = src }
}

// WithPool injects a node allocator. Sharing a pool across sequences
// that are not used concurrently is safe and avoids redundant allocation.
func WithPool(p *NodePool) Option {
	return func(c *config) {
		if p != nil {
			c.pool = p
		}
	}
}

// WithLogger attaches a zap logger for structural debug events (node
// splits, defragmentation merges). The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
