package arena

// Config holds the resolved settings for a new Arena. Its fields are
// unexported; callers configure it through Option values passed to
// New/NewEmbed.
type Config struct {
	pagesize uintptr
}

// Option configures an Arena at construction time.
type Option func(*Config)

// WithPageSize overrides the page granularity used to round region mapping
// requests. Zero restores the platform default. Mostly useful for tests
// that want predictable, small region sizes without mapping real huge
// pages.
func WithPageSize(n uintptr) Option {
	return func(c *Config) {
		c.pagesize = n
	}
}

func resolveConfig(opts ...Option) *Config {
	c := &Config{pagesize: platformPageSize()}

	for _, opt := range opts {
		opt(c)
	}

	if c.pagesize == 0 {
		c.pagesize = platformPageSize()
	}

	return c
}
