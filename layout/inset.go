// layout/inset.go
package layout

import (
	"math"

	"github.com/trystan2k/padelbuddy-sub002/device"
)

// DefaultRoundPadding is the extra clearance, in pixels, kept between content
// and the circular bezel on round screens.
const DefaultRoundPadding = 4

// ChordInset returns the horizontal inset at vertical position y that keeps
// rectangular content within the visible chord of a round screen:
//
//	inset(y) = max(0, w/2 - sqrt((w/2)^2 - (y - h/2)^2) + padding)
//
// It is minimal (= padding) at the vertical midline and grows towards the
// top and bottom edges. Positions outside the circle clamp to the half-width.
func ChordInset(m device.Metrics, y int) int {
	half := float64(m.Width) / 2
	dy := float64(y) - float64(m.Height)/2

	disc := half*half - dy*dy
	if disc <= 0 {
		return int(math.Round(half + DefaultRoundPadding))
	}
	inset := half - math.Sqrt(disc) + DefaultRoundPadding
	if inset < 0 {
		return 0
	}
	return int(math.Round(inset))
}

// sectionInset is the round-safe inset for a section spanning [top, bottom]:
// the worst case over the section's two horizontal edges, which is where the
// chord is narrowest within the span.
func sectionInset(m device.Metrics, top, bottom int) int {
	topInset := ChordInset(m, top)
	bottomInset := ChordInset(m, bottom)
	if bottomInset > topInset {
		return bottomInset
	}
	return topInset
}
