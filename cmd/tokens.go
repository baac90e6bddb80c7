package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/eval"
	"github.com/enigmatic-figure/TensorMath-Node/internal/vector"
)

// loadTokenLibrary reads a JSON file mapping token names to vectors, e.g.
// {"king": [1,0,0], "man": [0,1,0]}. An empty path yields an empty library.
func loadTokenLibrary(path string) (map[string]vector.Vector, error) {
	if path == "" {
		return map[string]vector.Vector{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token library: %w", err)
	}
	var lib map[string]vector.Vector
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing token library: %w", err)
	}
	return lib, nil
}

// lookupFrom wraps a token library as an eval.Lookup.
func lookupFrom(lib map[string]vector.Vector) eval.Lookup {
	return func(name string) (vector.Vector, bool) {
		v, ok := lib[name]
		return v, ok
	}
}

// padFrom materializes the configured pad vector, or nil when padding is
// disabled (unresolved tokens then fail loudly).
func padFrom(cfg config.Config) vector.Vector {
	if !cfg.PadEnabled || cfg.PadDim <= 0 {
		return nil
	}
	pad := make(vector.Vector, cfg.PadDim)
	for i := range pad {
		pad[i] = cfg.PadValue
	}
	return pad
}
