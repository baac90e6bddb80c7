package schedule

// Direction controls whether the raw curve output is used as-is or inverted.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// spanEpsilon floors the effective time span so a zero-length window never
// divides by zero.
const spanEpsilon = 1e-6

// Binding is one fully resolved schedule attached to one token occurrence.
// It is self-contained: weight queries never touch the registry again, so
// a renderer can sample bindings from any number of goroutines.
type Binding struct {
	Token       string         `json:"token"`
	Direction   Direction      `json:"direction"`
	Start       float64        `json:"start"`
	End         float64        `json:"end"`
	Curve       string         `json:"curve"`
	ClampOutput bool           `json:"clamp_output"`
	Indices     []int          `json:"indices"`
	Metadata    map[string]any `json:"metadata"`
}

// WeightAt returns the instantaneous weight at normalized time tau.
//
// Exactly at or beyond the window boundaries the curve is bypassed so the
// endpoints are exact 0 and 1 regardless of curve rounding. Interior values
// run through the configured curve. Decrease direction inverts, and the
// final weight is clamped into [0,1] when ClampOutput is set.
func (b Binding) WeightAt(tau float64) float64 {
	var raw float64
	switch {
	case tau <= b.Start:
		raw = 0.0
	case tau >= b.End:
		raw = 1.0
	default:
		span := b.End - b.Start
		if span < spanEpsilon {
			span = spanEpsilon
		}
		t := clamp01((tau - b.Start) / span)
		raw = ResolveCurve(b.Curve)(t)
	}
	weight := raw
	if b.Direction == Decrease {
		weight = 1.0 - raw
	}
	if b.ClampOutput {
		weight = clamp01(weight)
	}
	return weight
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Set aggregates bindings produced by one or more evaluations and answers
// per-token weight queries the way an attention renderer consumes them.
type Set struct {
	bindings []Binding
}

// Add appends b to the set.
func (s *Set) Add(b Binding) {
	s.bindings = append(s.bindings, b)
}

// Clear removes every binding.
func (s *Set) Clear() {
	s.bindings = nil
}

// For returns the bindings attached to token, in insertion order. An empty
// token returns every binding.
func (s *Set) For(token string) []Binding {
	if token == "" {
		return append([]Binding(nil), s.bindings...)
	}
	var out []Binding
	for _, b := range s.bindings {
		if b.Token == token {
			out = append(out, b)
		}
	}
	return out
}

// WeightAt returns the strongest weight for token at tau across the set,
// defaulting to 1.0 when the token has no bindings (unscheduled tokens are
// always fully weighted).
func (s *Set) WeightAt(token string, tau float64) float64 {
	matched := s.For(token)
	if len(matched) == 0 {
		return 1.0
	}
	max := matched[0].WeightAt(tau)
	for _, b := range matched[1:] {
		if w := b.WeightAt(tau); w > max {
			max = w
		}
	}
	return max
}
