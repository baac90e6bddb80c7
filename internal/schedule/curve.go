// Package schedule implements the time-weighting half of prompt math: a
// fixed library of easing curves, a runtime-extensible registry of named
// schedule kinds, and pure evaluation of resolved bindings at arbitrary
// normalized timeline positions.
package schedule

import "strings"

// CurveFunc maps normalized progress t in [0,1] to a raw weight in [0,1].
type CurveFunc func(t float64) float64

// DefaultCurve is the universal fallback for unknown curve names.
const DefaultCurve = "linear"

// curves is the fixed policy table of easing shapes.
var curves = map[string]CurveFunc{
	"linear": func(t float64) float64 { return t },
	"smooth": func(t float64) float64 { return t * t * (3.0 - 2.0*t) },
	"ease_in": func(t float64) float64 { return t * t },
	"ease_out": func(t float64) float64 {
		u := 1.0 - t
		return 1.0 - u*u
	},
	"ease_in_out": func(t float64) float64 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		u := -2.0*t + 2.0
		return 1.0 - u*u/2.0
	},
	"constant": func(t float64) float64 { return 0.0 },
}

// CurveNames returns the curve catalogue in a fixed display order.
func CurveNames() []string {
	return []string{"linear", "smooth", "ease_in", "ease_out", "ease_in_out", "constant"}
}

// ResolveCurve looks up a curve function case-insensitively. Unknown or
// empty names fall back to linear so partially-typed editor input still
// previews.
func ResolveCurve(name string) CurveFunc {
	if fn, ok := curves[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn
	}
	return curves[DefaultCurve]
}

// NormalizeCurveName returns the canonical lowercase curve name, or
// DefaultCurve when the name is unknown.
func NormalizeCurveName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if _, ok := curves[n]; ok {
		return n
	}
	return DefaultCurve
}
