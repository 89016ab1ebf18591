// layout/types.go
package layout

// Value is a single layout dimension as authored in a schema. It is one of:
//
//   - nil (treated as 0)
//   - a number (pixels)
//   - a percentage string, e.g. "20%" (of the base dimension)
//   - a pixel string, e.g. "48px"
//   - a cross-reference expression, e.g. "header.bottom + 2%" or "body.top"
//   - the keyword "fill" (sections: absorb remaining space; elements: parent size)
//   - the keyword "center" (elements: auto-center within the parent)
//
// Anything else resolves to 0. Schemas loaded from YAML/JSON decode numbers
// and strings into Value directly.
type Value any

// Layout keywords recognized by the value grammar.
const (
	KeywordFill   = "fill"
	KeywordCenter = "center"
)

// Element alignment within its parent section.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// SectionSpec describes one named horizontal strip of the screen. Exactly one
// anchoring style applies: top-anchored (Top+Height), after-anchored
// (After+Gap+Height), bottom-anchored (Bottom+Height), or fill
// (Height: "fill"). Missing or malformed fields default instead of erroring.
type SectionSpec struct {
	Top    Value  `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom Value  `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	After  string `yaml:"after,omitempty" json:"after,omitempty"`
	Gap    Value  `yaml:"gap,omitempty" json:"gap,omitempty"`
	Height Value  `yaml:"height,omitempty" json:"height,omitempty"`

	// RoundSafeInset keeps the section clear of a round screen's bezel.
	// Defaults to true when unset.
	RoundSafeInset *bool `yaml:"roundSafeInset,omitempty" json:"roundSafeInset,omitempty"`
	SideInset      Value `yaml:"sideInset,omitempty" json:"sideInset,omitempty"`
}

// roundSafe reports whether the round-screen inset applies (default true).
func (s SectionSpec) roundSafe() bool {
	return s.RoundSafeInset == nil || *s.RoundSafeInset
}

// ElementSpec describes one element nested in a section (or the full screen
// when Section is empty or names an unresolved section). Position and size
// use the same value grammar as sections, relative to the parent rect.
type ElementSpec struct {
	Section string `yaml:"section,omitempty" json:"section,omitempty"`
	X       Value  `yaml:"x,omitempty" json:"x,omitempty"`
	Y       Value  `yaml:"y,omitempty" json:"y,omitempty"`
	Width   Value  `yaml:"width,omitempty" json:"width,omitempty"`
	Height  Value  `yaml:"height,omitempty" json:"height,omitempty"`
	Align   string `yaml:"align,omitempty" json:"align,omitempty"`
}

// Schema is an author-supplied declarative layout. The engine never mutates it.
type Schema struct {
	Sections map[string]SectionSpec `yaml:"sections" json:"sections"`
	Elements map[string]ElementSpec `yaml:"elements,omitempty" json:"elements,omitempty"`
}

// Rect is a resolved rectangle in absolute screen pixels.
type Rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Top, Bottom, Left and Right are the edge values the cross-reference
// grammar exposes ("name.top", "name.bottom", ...).
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }
func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }

// Result holds every resolved section and element rect from one pass.
// Both maps are always non-nil, possibly empty.
type Result struct {
	Sections map[string]Rect `json:"sections" yaml:"sections"`
	Elements map[string]Rect `json:"elements" yaml:"elements"`
}

func emptyResult() Result {
	return Result{Sections: map[string]Rect{}, Elements: map[string]Rect{}}
}
