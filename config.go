package xraster

// Default canvas dimensions.
const (
	DefaultWidth  = 264
	DefaultHeight = 264
)

// Config describes a canvas to be created by [New].
type Config struct {
	// Width and Height are the size of the canvas in pixels. Negative
	// values are treated as zero.
	Width, Height int

	// Background is the color that every pixel starts out as.
	Background Color

	// Workers is the number of goroutines that Draw splits each scan
	// across. Each one is given a disjoint band of rows. Values less
	// than two draw on the calling goroutine.
	Workers int
}

// DefaultConfig returns the configuration of a DefaultWidth by
// DefaultHeight canvas filled with DefaultBackground.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		Workers:    1,
	}
}
