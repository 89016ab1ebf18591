// layout/inset_test.go
package layout

import (
	"testing"

	"github.com/trystan2k/padelbuddy-sub002/device"
)

func roundWatch() device.Metrics {
	return device.Metrics{Width: 466, Height: 466, IsRound: true}
}

func TestChordInsetMinimalAtMidline(t *testing.T) {
	m := roundWatch()
	if got := ChordInset(m, m.Height/2); got != DefaultRoundPadding {
		t.Errorf("inset at midline = %d, want %d", got, DefaultRoundPadding)
	}
}

func TestChordInsetMonotonicTowardsEdges(t *testing.T) {
	m := roundWatch()
	mid := m.Height / 2

	prev := ChordInset(m, mid)
	for y := mid - 10; y >= 0; y -= 10 {
		cur := ChordInset(m, y)
		if cur < prev {
			t.Fatalf("inset decreased moving up: inset(%d)=%d < inset(%d)=%d", y, cur, y+10, prev)
		}
		prev = cur
	}

	if top, bottom := ChordInset(m, 0), ChordInset(m, m.Height); top != bottom {
		t.Errorf("inset not symmetric: top=%d bottom=%d", top, bottom)
	}
	if edge := ChordInset(m, 0); edge < m.Width/2 {
		t.Errorf("edge inset = %d, want at least the half-width %d", edge, m.Width/2)
	}
}

func TestRoundSectionGetsInset(t *testing.T) {
	m := roundWatch()
	schema := Schema{
		Sections: map[string]SectionSpec{
			"mid": {Top: 200, Height: 66},
		},
	}

	rect := Resolve(schema, m).Sections["mid"]

	// A section hugging the vertical middle needs barely more clearance than
	// the base padding; the worst edge here is y=266.
	wantInset := sectionInset(m, 200, 266)
	if rect.X != wantInset {
		t.Errorf("mid.X = %d, want %d", rect.X, wantInset)
	}
	if rect.X < DefaultRoundPadding || rect.X > 10 {
		t.Errorf("mid.X = %d, expected a small inset near the padding", rect.X)
	}
	if rect.W != m.Width-2*wantInset {
		t.Errorf("mid.W = %d, want %d", rect.W, m.Width-2*wantInset)
	}
}

func TestRoundSafeInsetCanBeDisabled(t *testing.T) {
	m := roundWatch()
	off := false
	schema := Schema{
		Sections: map[string]SectionSpec{
			"raw":   {Top: 200, Height: 66, RoundSafeInset: &off},
			"inset": {Top: 200, Height: 66},
		},
	}

	result := Resolve(schema, m)

	if got := result.Sections["raw"]; got.X != 0 || got.W != m.Width {
		t.Errorf("raw section = %+v, want full width with no inset", got)
	}
	if got := result.Sections["inset"]; got.X == 0 {
		t.Error("inset section should not span the full width on a round screen")
	}
}

func TestSideInsetAppliesOnSquareScreens(t *testing.T) {
	schema := Schema{
		Sections: map[string]SectionSpec{
			"padded": {Top: 0, Height: 100, SideInset: 12},
		},
	}

	rect := Resolve(schema, device.Metrics{Width: 390, Height: 450}).Sections["padded"]
	if rect.X != 12 || rect.W != 390-24 {
		t.Errorf("padded = %+v, want X=12 W=366", rect)
	}
}
