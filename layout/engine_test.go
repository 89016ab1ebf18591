// layout/engine_test.go
package layout

import (
	"testing"

	"github.com/trystan2k/padelbuddy-sub002/device"
)

func squareMetrics() device.Metrics {
	return device.Metrics{Width: 390, Height: 450}
}

func TestResolveThreeSectionScreen(t *testing.T) {
	schema := Schema{
		Sections: map[string]SectionSpec{
			"header": {Top: 0, Height: "20%"},
			"body":   {Height: KeywordFill, After: "header"},
			"footer": {Bottom: 0, Height: "10%"},
		},
	}

	result := Resolve(schema, squareMetrics())

	want := map[string]Rect{
		"header": {X: 0, Y: 0, W: 390, H: 90},
		"body":   {X: 0, Y: 90, W: 390, H: 315},
		"footer": {X: 0, Y: 405, W: 390, H: 45},
	}
	for name, expected := range want {
		if got := result.Sections[name]; got != expected {
			t.Errorf("section %q = %+v, want %+v", name, got, expected)
		}
	}
}

func TestFillDistributionIsExact(t *testing.T) {
	// Three fills over a remainder that does not divide evenly: the section
	// heights must still sum to the remainder exactly.
	schema := Schema{
		Sections: map[string]SectionSpec{
			"header": {Top: 0, Height: 350},
			"f1":     {After: "header", Height: KeywordFill},
			"f2":     {After: "f1", Height: KeywordFill},
			"f3":     {After: "f2", Height: KeywordFill},
		},
	}

	result := Resolve(schema, squareMetrics())

	total := result.Sections["f1"].H + result.Sections["f2"].H + result.Sections["f3"].H
	if total != 100 {
		t.Fatalf("fill heights sum to %d, want exactly 100", total)
	}
	if result.Sections["f1"].H != 33 || result.Sections["f2"].H != 33 || result.Sections["f3"].H != 34 {
		t.Errorf("fill split = %d/%d/%d, want 33/33/34",
			result.Sections["f1"].H, result.Sections["f2"].H, result.Sections["f3"].H)
	}
	if result.Sections["f1"].Y != 350 {
		t.Errorf("f1.Y = %d, want 350", result.Sections["f1"].Y)
	}
	if got := result.Sections["f3"].Bottom(); got != 450 {
		t.Errorf("f3 bottom = %d, want 450", got)
	}
}

func TestFillAccountsForGaps(t *testing.T) {
	schema := Schema{
		Sections: map[string]SectionSpec{
			"header": {Top: 0, Height: 100},
			"body":   {After: "header", Gap: 10, Height: KeywordFill},
			"footer": {Bottom: 0, Height: 40},
		},
	}

	result := Resolve(schema, squareMetrics())

	if got := result.Sections["body"]; got.Y != 110 || got.H != 300 {
		t.Errorf("body = %+v, want Y=110 H=300", got)
	}
}

func TestExpressionTopSection(t *testing.T) {
	schema := Schema{
		Sections: map[string]SectionSpec{
			"header": {Top: 0, Height: 100},
			"badge":  {Top: "header.bottom + 2%", Height: 50},
		},
	}

	result := Resolve(schema, squareMetrics())

	if got := result.Sections["badge"].Y; got != 109 {
		t.Errorf("badge.Y = %d, want 109", got)
	}
}

func TestCyclicAfterChainDegrades(t *testing.T) {
	schema := Schema{
		Sections: map[string]SectionSpec{
			"a": {After: "b", Height: 50},
			"b": {After: "a", Height: 50},
		},
	}

	result := Resolve(schema, squareMetrics())

	// Cycles are an authoring error: both sections must still resolve (to
	// defaulted positions) rather than panic or disappear.
	for _, name := range []string{"a", "b"} {
		rect, ok := result.Sections[name]
		if !ok {
			t.Fatalf("section %q missing from result", name)
		}
		if rect.H != 50 {
			t.Errorf("section %q height = %d, want 50", name, rect.H)
		}
	}
}

func TestResolveEmptySchemaAndBadMetrics(t *testing.T) {
	result := Resolve(Schema{}, device.Metrics{})
	if result.Sections == nil || result.Elements == nil {
		t.Fatal("Resolve must always return non-nil maps")
	}

	schema := Schema{Sections: map[string]SectionSpec{"only": {Top: 0, Height: "10%"}}}
	result = Resolve(schema, device.Metrics{Width: -5, Height: 0})
	// Falls back to the 390x450 default metrics.
	if got := result.Sections["only"].H; got != 45 {
		t.Errorf("height under default metrics = %d, want 45", got)
	}
}

func TestElementPlacement(t *testing.T) {
	schema := Schema{
		Sections: map[string]SectionSpec{
			"body": {Top: 100, Height: 200},
		},
		Elements: map[string]ElementSpec{
			"plain":     {Section: "body", X: 10, Y: 20, Width: 100, Height: 50},
			"centered":  {Section: "body", Y: 0, Width: "50%", Height: 40, Align: AlignCenter},
			"keyword":   {Section: "body", X: KeywordCenter, Y: KeywordCenter, Width: 100, Height: 40},
			"right":     {Section: "body", Y: 0, Width: 90, Height: 40, Align: AlignRight},
			"filling":   {Section: "body", Width: KeywordFill, Height: KeywordFill},
			"screenful": {X: 5, Y: 5, Width: 80, Height: 30},
			"orphan":    {Section: "nope", X: 0, Y: 0, Width: 60, Height: 30},
			"overflow":  {Section: "body", X: 500, Y: 0, Width: 100, Height: 40},
		},
	}

	result := Resolve(schema, squareMetrics())

	tests := map[string]Rect{
		"plain":     {X: 10, Y: 120, W: 100, H: 50},
		"centered":  {X: 97, Y: 100, W: 195, H: 40},
		"keyword":   {X: 145, Y: 180, W: 100, H: 40},
		"right":     {X: 300, Y: 100, W: 90, H: 40},
		"filling":   {X: 0, Y: 100, W: 390, H: 200},
		"screenful": {X: 5, Y: 5, W: 80, H: 30},
		"orphan":    {X: 0, Y: 0, W: 60, H: 30},
		"overflow":  {X: 290, Y: 100, W: 100, H: 40},
	}
	for name, want := range tests {
		if got := result.Elements[name]; got != want {
			t.Errorf("element %q = %+v, want %+v", name, got, want)
		}
	}
}

func TestPresetsResolveEverywhere(t *testing.T) {
	screens := map[string]Schema{
		"match":   MatchScreen(),
		"menu":    MenuScreen(),
		"history": HistoryScreen(),
	}
	metrics := []device.Metrics{
		{Width: 390, Height: 450},
		{Width: 466, Height: 466, IsRound: true},
	}

	for name, schema := range screens {
		for _, m := range metrics {
			result := Resolve(schema, m)
			if len(result.Sections) != len(schema.Sections) {
				t.Errorf("%s on %dx%d: %d sections resolved, want %d",
					name, m.Width, m.Height, len(result.Sections), len(schema.Sections))
			}
			for section, rect := range result.Sections {
				if rect.W < 0 || rect.H < 0 || rect.X < 0 || rect.Y < 0 {
					t.Errorf("%s on %dx%d: section %q has negative geometry %+v",
						name, m.Width, m.Height, section, rect)
				}
				if rect.Bottom() > m.Height {
					t.Errorf("%s on %dx%d: section %q overflows screen: %+v",
						name, m.Width, m.Height, section, rect)
				}
			}
		}
	}
}
