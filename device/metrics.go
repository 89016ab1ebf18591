// device/metrics.go
package device

// Fallback metrics used when no device information is available, e.g. in
// headless or test contexts. A 390x450 square screen is the smallest shape
// the stock schemas are authored against.
const (
	DefaultWidth  = 390
	DefaultHeight = 450
)

// Roundness is inferred rather than reported by the device: screens whose
// width and height differ by at most this fraction of the larger dimension
// are treated as round.
const roundTolerance = 0.04

// Metrics describes the physical drawing surface for one resolution pass.
// It is immutable by convention; callers build a fresh value per pass.
type Metrics struct {
	Width   int  `json:"width" yaml:"width"`
	Height  int  `json:"height" yaml:"height"`
	IsRound bool `json:"isRound" yaml:"round"`
}

// Default returns the square-screen baseline metrics.
func Default() Metrics {
	return Metrics{Width: DefaultWidth, Height: DefaultHeight, IsRound: false}
}

// FromDimensions builds Metrics from raw device dimensions, inferring
// roundness from near-equal width and height. Non-positive dimensions fall
// back to the defaults so a broken device-info reply never produces a
// degenerate surface.
func FromDimensions(width, height int) Metrics {
	if width <= 0 || height <= 0 {
		return Default()
	}
	return Metrics{Width: width, Height: height, IsRound: nearlySquare(width, height)}
}

func nearlySquare(width, height int) bool {
	larger := width
	if height > larger {
		larger = height
	}
	diff := width - height
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) <= float64(larger)*roundTolerance
}
