package layout

// Config holds the fixed parameters layout needs from the outside
// world, passed explicitly rather than read from globals.
type Config struct {
	// ContentAreaWidth is the fixed content-area width in pixels that
	// the root block's sizing pass starts from.
	ContentAreaWidth int
}

// DefaultConfig is the configuration used when the caller has no
// opinion: a 600px content area.
func DefaultConfig() Config {
	return Config{ContentAreaWidth: 600}
}
