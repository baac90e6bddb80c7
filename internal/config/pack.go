package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

// Pack is a declarative schedule pack: extra schedule kinds registered at
// start-up (and re-registered on file change). Registration is
// last-write-wins, so a pack may also override the builtins.
type Pack struct {
	Schedules []PackSchedule `toml:"schedule"`
}

// PackSchedule is one [[schedule]] table in the pack file.
type PackSchedule struct {
	Name string `toml:"name"`
	schedule.Metadata
}

// LoadPack parses a schedules.toml file.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule pack: %w", err)
	}
	return ParsePack(data)
}

// ParsePack decodes pack TOML and validates each entry.
func ParsePack(data []byte) (*Pack, error) {
	var pack Pack
	if err := toml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parsing schedule pack: %w", err)
	}
	for i := range pack.Schedules {
		s := &pack.Schedules[i]
		if s.Name == "" {
			return nil, fmt.Errorf("schedule pack entry %d has no name", i)
		}
		switch s.Direction {
		case schedule.Increase, schedule.Decrease:
		case "":
			s.Direction = schedule.Increase
		default:
			return nil, fmt.Errorf("schedule %q: direction must be %q or %q, got %q",
				s.Name, schedule.Increase, schedule.Decrease, s.Direction)
		}
	}
	return &pack, nil
}

// Apply registers every pack entry on reg using the metadata-driven
// default builder.
func (p *Pack) Apply(reg *schedule.Registry) {
	for _, s := range p.Schedules {
		reg.RegisterKind(s.Name, s.Metadata)
	}
}
