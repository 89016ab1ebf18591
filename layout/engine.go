// layout/engine.go
package layout

import (
	"log"
	"sort"

	"github.com/trystan2k/padelbuddy-sub002/device"
)

// Resolve computes absolute pixel rectangles for every section and element of
// the schema on the given screen. It never panics and never returns nil maps:
// malformed schemas degrade to defaulted rects, and a failure in one pass
// does not prevent the other from resolving, so a schema authoring mistake
// can never crash a render pass.
func Resolve(schema Schema, metrics device.Metrics) Result {
	if metrics.Width <= 0 || metrics.Height <= 0 {
		log.Printf("Warn Resolve: invalid metrics %dx%d, falling back to defaults", metrics.Width, metrics.Height)
		metrics = device.Default()
	}

	result := emptyResult()
	result.Sections = resolveSections(schema, metrics)
	result.Elements = resolveElements(schema, metrics, result.Sections)
	return result
}

// resolveSections runs the multi-stage section pass. Stages run in dependency
// order so no topological sort is required of the schema author:
//
//  1. simple sections (numeric/percentage top and height)
//  2. expression-top sections (their targets are simple sections)
//  3. bottom-anchored sections (plain bottoms, then expression bottoms)
//  4. fill-height distribution over the remaining vertical space
//  5. after-chain fixpoint (sections waiting on a not-yet-resolved target)
//
// Whatever is still unresolved after the fixpoint stalls (a cycle or a
// missing target) is placed with defaulted coordinates and a warning.
func resolveSections(schema Schema, metrics device.Metrics) (rects map[string]Rect) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error resolveSections: recovered from %v, returning empty section set", r)
			rects = map[string]Rect{}
		}
	}()

	rects = map[string]Rect{}
	if len(schema.Sections) == 0 {
		return rects
	}

	height := metrics.Height
	var simple, exprTop, bottomPlain, bottomExpr, deferred, fills []string

	for _, name := range sortedSectionNames(schema) {
		spec := schema.Sections[name]
		switch {
		case isKeyword(spec.Height, KeywordFill):
			fills = append(fills, name)
		case spec.Bottom != nil && spec.Top == nil && spec.After == "":
			if isReference(spec.Bottom) {
				bottomExpr = append(bottomExpr, name)
			} else {
				bottomPlain = append(bottomPlain, name)
			}
		case spec.After != "":
			deferred = append(deferred, name)
		case isReference(spec.Top):
			exprTop = append(exprTop, name)
		default:
			simple = append(simple, name)
		}
	}

	place := func(name string, y, h int) {
		rects[name] = placeSection(schema.Sections[name], metrics, y, h)
	}
	sectionHeight := func(name string) int {
		h, _ := resolveValue(schema.Sections[name].Height, height, rects)
		if h < 0 {
			h = 0
		}
		return h
	}

	for _, name := range simple {
		top, _ := resolveValue(schema.Sections[name].Top, height, rects)
		place(name, top, sectionHeight(name))
	}
	for _, name := range exprTop {
		top, _ := resolveValue(schema.Sections[name].Top, height, rects)
		place(name, top, sectionHeight(name))
	}
	for _, group := range [][]string{bottomPlain, bottomExpr} {
		for _, name := range group {
			h := sectionHeight(name)
			bottom, _ := resolveValue(schema.Sections[name].Bottom, height, rects)
			place(name, height-bottom-h, h)
		}
	}

	fillHeights := distributeFill(schema, metrics, rects, fills, sectionHeight)

	// After-chain fixpoint: fills and after-anchored sections resolve as soon
	// as their target does. Iterate until a full pass makes no progress.
	pending := append(append([]string{}, deferred...), fills...)
	sort.Strings(pending)
	for len(pending) > 0 {
		progressed := false
		var next []string
		for _, name := range pending {
			spec := schema.Sections[name]
			y, ok := sectionTop(spec, height, rects)
			if !ok {
				next = append(next, name)
				continue
			}
			h := fillHeights[name]
			if !isKeyword(spec.Height, KeywordFill) {
				h = sectionHeight(name)
			}
			place(name, y, h)
			progressed = true
		}
		if !progressed {
			for _, name := range next {
				log.Printf("Warn resolveSections: section %q has an unresolvable anchor chain (missing target or cycle), defaulting", name)
				h := fillHeights[name]
				spec := schema.Sections[name]
				if !isKeyword(spec.Height, KeywordFill) {
					h = sectionHeight(name)
				}
				top, _ := resolveValue(spec.Top, height, rects)
				place(name, top, h)
			}
			break
		}
		pending = next
	}
	return rects
}

// sectionTop resolves the y origin of an after-anchored or top-anchored
// section. ok is false while the anchor target is still unresolved.
func sectionTop(spec SectionSpec, height int, rects map[string]Rect) (int, bool) {
	if spec.After != "" {
		target, ok := rects[spec.After]
		if !ok {
			return 0, false
		}
		gap, _ := resolveValue(spec.Gap, height, rects)
		return target.Bottom() + gap, true
	}
	if ref := referenceTarget(spec.Top); ref != "" {
		if _, ok := rects[ref]; !ok {
			return 0, false
		}
	}
	top, _ := resolveValue(spec.Top, height, rects)
	return top, true
}

// distributeFill splits the vertical space left over by fixed sections and
// gaps across the fill sections: integer floor share for each, with the last
// fill section absorbing the rounding remainder so heights sum exactly.
func distributeFill(schema Schema, metrics device.Metrics, rects map[string]Rect, fills []string, sectionHeight func(string) int) map[string]int {
	heights := map[string]int{}
	if len(fills) == 0 {
		return heights
	}

	remaining := metrics.Height
	for _, name := range sortedSectionNames(schema) {
		spec := schema.Sections[name]
		if isKeyword(spec.Height, KeywordFill) {
			// Zero-height placeholder at this stage; gap still counts below.
		} else if placed, ok := rects[name]; ok {
			remaining -= placed.H
		} else {
			remaining -= sectionHeight(name)
		}
		if spec.After != "" {
			gap, _ := resolveValue(spec.Gap, metrics.Height, rects)
			remaining -= gap
		}
	}
	if remaining < 0 {
		remaining = 0
	}

	share := remaining / len(fills)
	for i, name := range fills {
		if i == len(fills)-1 {
			heights[name] = remaining - share*(len(fills)-1)
		} else {
			heights[name] = share
		}
	}
	return heights
}

// placeSection clamps the vertical span to the screen and applies round-safe
// and side insets symmetrically to produce the final rect.
func placeSection(spec SectionSpec, metrics device.Metrics, y, h int) Rect {
	if h < 0 {
		h = 0
	}
	if y < 0 {
		y = 0
	}
	if y > metrics.Height {
		y = metrics.Height
	}
	if y+h > metrics.Height {
		h = metrics.Height - y
	}

	inset := 0
	if metrics.IsRound && spec.roundSafe() {
		inset = sectionInset(metrics, y, y+h)
	}
	if side, ok := resolveValue(spec.SideInset, metrics.Width, nil); ok && side > 0 {
		inset += side
	}

	w := metrics.Width - 2*inset
	if w < 0 {
		inset = metrics.Width / 2
		w = metrics.Width - 2*inset
	}
	return Rect{X: inset, Y: y, W: w, H: h}
}

// resolveElements runs the element pass against the already-resolved section
// rects. Each element resolves against its parent section (or the full
// screen) and is clamped to the screen bounds.
func resolveElements(schema Schema, metrics device.Metrics, sections map[string]Rect) (rects map[string]Rect) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error resolveElements: recovered from %v, returning empty element set", r)
			rects = map[string]Rect{}
		}
	}()

	rects = map[string]Rect{}
	screen := Rect{X: 0, Y: 0, W: metrics.Width, H: metrics.Height}

	for name, spec := range schema.Elements {
		parent := screen
		if spec.Section != "" {
			if r, ok := sections[spec.Section]; ok {
				parent = r
			} else {
				log.Printf("Warn resolveElements: element %q references unknown section %q, using full screen", name, spec.Section)
			}
		}
		rects[name] = placeElement(spec, parent, screen, sections)
	}
	return rects
}

func placeElement(spec ElementSpec, parent, screen Rect, sections map[string]Rect) Rect {
	w := elementSize(spec.Width, parent.W, sections)
	h := elementSize(spec.Height, parent.H, sections)

	relX := elementOffset(spec.X, spec.Align, parent.W, w, sections)
	relY := elementOffsetVertical(spec.Y, parent.H, h, sections)

	x := clampAxis(parent.X+relX, screen.W, w)
	y := clampAxis(parent.Y+relY, screen.H, h)
	return Rect{X: x, Y: y, W: w, H: h}
}

func elementSize(v Value, base int, sections map[string]Rect) int {
	size, ok := resolveValue(v, base, sections)
	if !ok {
		if isKeyword(v, KeywordFill) {
			return base
		}
		return 0
	}
	if size < 0 {
		return 0
	}
	return size
}

// elementOffset computes the horizontal offset within the parent, honoring
// the "center" keyword and the align property.
func elementOffset(x Value, align string, parentW, w int, sections map[string]Rect) int {
	offset, ok := resolveValue(x, parentW, sections)
	if !ok && isKeyword(x, KeywordCenter) {
		return (parentW - w) / 2
	}
	switch align {
	case AlignCenter:
		return (parentW - w) / 2
	case AlignRight:
		return parentW - w
	default:
		return offset
	}
}

func elementOffsetVertical(y Value, parentH, h int, sections map[string]Rect) int {
	offset, ok := resolveValue(y, parentH, sections)
	if !ok && isKeyword(y, KeywordCenter) {
		return (parentH - h) / 2
	}
	return offset
}

// clampAxis keeps pos within [0, screenDim - size].
func clampAxis(pos, screenDim, size int) int {
	limit := screenDim - size
	if limit < 0 {
		limit = 0
	}
	if pos < 0 {
		return 0
	}
	if pos > limit {
		return limit
	}
	return pos
}

func sortedSectionNames(schema Schema) []string {
	names := make([]string, 0, len(schema.Sections))
	for name := range schema.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
