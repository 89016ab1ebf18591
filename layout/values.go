// layout/values.go
package layout

import (
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// refExpr matches cross-reference expressions: "name.prop", optionally
// followed by "+ offset" or "- offset" where offset is a number, a
// percentage, or a pixel amount.
var refExpr = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_-]*)\.(top|bottom|left|right)\s*(?:([+-])\s*([0-9]+(?:\.[0-9]+)?)(%|px)?)?\s*$`)

// resolveValue turns a schema value into pixels against base (the relevant
// parent dimension) and the rects resolved so far. The second return is false
// only for the "fill" and "center" keywords, whose meaning depends on caller
// context. Unrecognized strings resolve to 0; this is a deliberate
// permissive-fallback policy so a schema typo degrades instead of crashing a
// render pass.
func resolveValue(v Value, base int, rects map[string]Rect) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		return int(val), true
	case float32:
		return int(math.Round(float64(val))), true
	case float64:
		return int(math.Round(val)), true
	case string:
		return resolveStringValue(val, base, rects)
	default:
		log.Printf("Warn resolveValue: unsupported value type %T, defaulting to 0", v)
		return 0, true
	}
}

func resolveStringValue(s string, base int, rects map[string]Rect) (int, bool) {
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "":
		return 0, true
	case KeywordFill, KeywordCenter:
		return 0, false
	}

	if strings.HasSuffix(trimmed, "%") {
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "%"), 64); err == nil {
			return percentOf(base, pct), true
		}
		return 0, true
	}

	if m := refExpr.FindStringSubmatch(trimmed); m != nil {
		return resolveReference(m, base, rects), true
	}

	if strings.HasSuffix(trimmed, "px") {
		if px, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "px"), 64); err == nil {
			return int(math.Round(px)), true
		}
		return 0, true
	}

	if px, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int(math.Round(px)), true
	}

	log.Printf("Warn resolveValue: unrecognized value %q, defaulting to 0", s)
	return 0, true
}

// percentOf clamps pct to [0,100] and rounds base*pct/100 to whole pixels.
func percentOf(base int, pct float64) int {
	pct = math.Max(0, math.Min(100, pct))
	return int(math.Round(float64(base) * pct / 100))
}

// resolveReference evaluates a matched cross-reference expression. A
// reference to a rect that has not been resolved yet contributes 0, so an
// authoring cycle degrades to default placement rather than erroring.
func resolveReference(m []string, base int, rects map[string]Rect) int {
	name, prop := m[1], m[2]

	rect, ok := rects[name]
	if !ok {
		log.Printf("Warn resolveValue: reference %q.%s targets an unresolved rect, using 0", name, prop)
	}

	value := 0
	switch prop {
	case "top":
		value = rect.Top()
	case "bottom":
		value = rect.Bottom()
	case "left":
		value = rect.Left()
	case "right":
		value = rect.Right()
	}

	if m[3] != "" {
		offset, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return value
		}
		amount := int(math.Round(offset))
		if m[5] == "%" {
			amount = percentOf(base, offset)
		}
		if m[3] == "-" {
			amount = -amount
		}
		value += amount
	}
	return value
}

// isReference reports whether v is a cross-reference expression string.
func isReference(v Value) bool {
	s, ok := v.(string)
	return ok && refExpr.MatchString(s)
}

// isKeyword reports whether v equals the given layout keyword.
func isKeyword(v Value, keyword string) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == keyword
}

// referenceTarget returns the section name a reference expression points at,
// or "" when v is not a reference.
func referenceTarget(v Value) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	if m := refExpr.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
