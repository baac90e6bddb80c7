// Package frontend produces the read-only configuration snapshot an
// expression editor consumes: every registered schedule's metadata, the
// curve catalogue, and a catalogue of example expressions. The snapshot is
// purely informational and built deterministically from the registry.
package frontend

import (
	"encoding/json"

	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

// Template is a named example expression shown by editors.
type Template struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DefaultTemplates is the builtin example catalogue.
var DefaultTemplates = []Template{
	{Name: "Basic Analogy", Code: "[[ [king] - [man] + [woman] ]]", Description: "Classic vector arithmetic analogy"},
	{Name: "Quality Aggregate", Code: "[[ mean([blurry],[grainy],[ugly]) ]]", Description: "Average multiple negative qualities"},
	{Name: "Style Transfer", Code: "[[ [content] + 0.7*([style] - mean([photo],[realistic])) ]]", Description: "Transfer style while preserving content"},
	{Name: "Temporal Fade In", Code: "[[ [detailed] @ fade_in(0.2, 0.8) ]]", Description: "Gradually introduce details during sampling"},
	{Name: "Style Morphing", Code: "[[ [oil_painting] @ fade_out(0.0, 0.5) + [watercolor] @ fade_in(0.5, 1.0) ]]", Description: "Transition from one style to another"},
	{Name: "Eased Fade", Code: "[[ [glowing] @ fade_in(0.3, 0.9, \"smooth\") ]]", Description: "Smoothstep ramp with zero end slopes"},
	{Name: "Early Decay", Code: "[[ [sketch lines] @ fade_out(0.0, 0.4, \"ease_out\") ]]", Description: "Drop an element quickly at the start"},
	{Name: "Late Detail", Code: "[[ [fine detail] @ fade_in(0.6, 1.0, \"ease_in\") ]]", Description: "Bring detail in only near the end"},
}

// Snapshot is the serializable editor-facing mirror of the registry.
type Snapshot struct {
	ScheduleFunctions map[string]schedule.Metadata `json:"scheduleFunctions"`
	Curves            []string                     `json:"curves"`
	Templates         []Template                   `json:"templates"`
}

// Build assembles a snapshot from reg. Map keys serialize sorted, so the
// output is byte-stable for identical registry contents.
func Build(reg *schedule.Registry) Snapshot {
	fns := make(map[string]schedule.Metadata, len(reg.Names()))
	for _, name := range reg.Names() {
		if meta, ok := reg.Metadata(name); ok {
			fns[name] = meta
		}
	}
	return Snapshot{
		ScheduleFunctions: fns,
		Curves:            schedule.CurveNames(),
		Templates:         append([]Template(nil), DefaultTemplates...),
	}
}

// MarshalIndent renders the snapshot as indented JSON.
func (s Snapshot) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
