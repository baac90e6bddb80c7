package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownSchedule is returned when resolving a name with no registered kind.
var ErrUnknownSchedule = errors.New("unknown schedule")

// ParamType is the declared type of a schedule parameter.
type ParamType string

const (
	ParamFloat  ParamType = "float"
	ParamString ParamType = "string"
)

// Param describes one declared schedule parameter.
type Param struct {
	Name     string    `json:"name" toml:"name"`
	Type     ParamType `json:"type" toml:"type"`
	Required bool      `json:"required" toml:"required"`
}

// Metadata is the declarative description of a schedule kind. It is
// immutable after registration.
type Metadata struct {
	Label       string             `json:"label" toml:"label"`
	Direction   Direction          `json:"direction" toml:"direction"`
	Description string             `json:"description" toml:"description"`
	Defaults    map[string]float64 `json:"defaults" toml:"defaults"`
	Parameters  []Param            `json:"parameters" toml:"parameters"`
	ClampOutput bool               `json:"clamp_output" toml:"clamp_output"`
	Template    string             `json:"template,omitempty" toml:"template,omitempty"`
}

// Arg is one positional argument from a parsed schedule call: either a
// string literal (quotes already stripped by the lexer) or a number.
type Arg struct {
	Str   string
	Num   float64
	IsStr bool
}

// NumArg builds a numeric argument.
func NumArg(v float64) Arg { return Arg{Num: v} }

// StrArg builds a string argument.
func StrArg(s string) Arg { return Arg{Str: s, IsStr: true} }

// Resolved carries coerced parameter values handed to a Builder.
type Resolved struct {
	Floats  map[string]float64
	Strings map[string]string
	Extra   map[string]any // positional args beyond the declared list
	Meta    Metadata
}

// Builder turns resolved parameters into a concrete Binding for a token.
type Builder func(token string, params Resolved) Binding

// Registry maps schedule names to builders and metadata. It is populated
// during configuration and read-only afterwards; callers must not register
// concurrently with in-flight Resolve calls.
type Registry struct {
	kinds map[string]kind
}

type kind struct {
	meta    Metadata
	builder Builder
}

// NewRegistry returns a registry pre-loaded with the builtin fade_in and
// fade_out kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]kind)}
	r.RegisterKind("fade_in", Metadata{
		Label:       "Fade In",
		Direction:   Increase,
		Description: "Gradually raise attention between start and end timesteps.",
		Defaults:    map[string]float64{"start": 0.0, "end": 1.0},
		Parameters: []Param{
			{Name: "start", Type: ParamFloat, Required: true},
			{Name: "end", Type: ParamFloat, Required: true},
			{Name: "curve", Type: ParamString, Required: false},
		},
		ClampOutput: true,
		Template:    "@ fade_in({start}, {end})",
	})
	r.RegisterKind("fade_out", Metadata{
		Label:       "Fade Out",
		Direction:   Decrease,
		Description: "Gradually lower attention between start and end timesteps.",
		Defaults:    map[string]float64{"start": 0.0, "end": 1.0},
		Parameters: []Param{
			{Name: "start", Type: ParamFloat, Required: true},
			{Name: "end", Type: ParamFloat, Required: true},
			{Name: "curve", Type: ParamString, Required: false},
		},
		ClampOutput: true,
		Template:    "@ fade_out({start}, {end})",
	})
	return r
}

// Register installs a schedule kind with a custom builder. Re-registering
// an existing name overwrites it (last write wins, used for live
// reconfiguration).
func (r *Registry) Register(name string, meta Metadata, builder Builder) {
	r.kinds[name] = kind{meta: meta, builder: builder}
}

// RegisterKind installs a schedule kind driven entirely by its metadata,
// using the default builder that reads start/end/curve parameters.
func (r *Registry) RegisterKind(name string, meta Metadata) {
	r.Register(name, meta, defaultBuilder)
}

// Has reports whether name is a registered schedule kind. The parser uses
// this to reject unknown schedule names at parse time.
func (r *Registry) Has(name string) bool {
	_, ok := r.kinds[name]
	return ok
}

// Names returns all registered kind names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Metadata returns the metadata registered under name.
func (r *Registry) Metadata(name string) (Metadata, bool) {
	k, ok := r.kinds[name]
	return k.meta, ok
}

// Resolve coerces positional args against the declared parameter list of
// name and invokes its builder for token.
//
// Coercion is deliberately forgiving: malformed or missing float arguments
// fall back to declared defaults (start/end default to 0 and 1 when no
// default is declared) because schedules are previewed while still being
// typed. String parameters take their argument verbatim. Positional args
// beyond the declared list are preserved in the binding metadata.
func (r *Registry) Resolve(name, token string, args []Arg) (Binding, error) {
	k, ok := r.kinds[name]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
	}

	resolved := Resolved{
		Floats:  make(map[string]float64),
		Strings: make(map[string]string),
		Extra:   make(map[string]any),
		Meta:    k.meta,
	}
	for i, p := range k.meta.Parameters {
		var arg *Arg
		if i < len(args) {
			arg = &args[i]
		}
		switch p.Type {
		case ParamString:
			resolved.Strings[p.Name] = coerceString(arg)
		default:
			resolved.Floats[p.Name] = coerceFloat(arg, paramDefault(k.meta, p.Name))
		}
	}
	for i := len(k.meta.Parameters); i < len(args); i++ {
		key := fmt.Sprintf("arg%d", i)
		if args[i].IsStr {
			resolved.Extra[key] = args[i].Str
		} else {
			resolved.Extra[key] = args[i].Num
		}
	}

	return k.builder(token, resolved), nil
}

// defaultBuilder materializes a Binding straight from metadata plus the
// conventional start/end/curve parameters.
func defaultBuilder(token string, params Resolved) Binding {
	start, ok := params.Floats["start"]
	if !ok {
		start = paramDefault(params.Meta, "start")
	}
	end, ok := params.Floats["end"]
	if !ok {
		end = paramDefault(params.Meta, "end")
	}
	return Binding{
		Token:       token,
		Direction:   params.Meta.Direction,
		Start:       start,
		End:         end,
		Curve:       NormalizeCurveName(params.Strings["curve"]),
		ClampOutput: params.Meta.ClampOutput,
		Indices:     []int{},
		Metadata:    params.Extra,
	}
}

// paramDefault looks up a declared default, falling back to the universal
// 0/1 window for start/end.
func paramDefault(meta Metadata, name string) float64 {
	if v, ok := meta.Defaults[name]; ok {
		return v
	}
	switch name {
	case "start":
		return 0.0
	case "end":
		return 1.0
	}
	return 0.0
}

func coerceFloat(arg *Arg, fallback float64) float64 {
	if arg == nil {
		return fallback
	}
	if !arg.IsStr {
		return arg.Num
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(arg.Str), 64)
	if err != nil {
		return fallback
	}
	return v
}

func coerceString(arg *Arg) string {
	if arg == nil {
		return ""
	}
	if arg.IsStr {
		return arg.Str
	}
	return strconv.FormatFloat(arg.Num, 'g', -1, 64)
}
