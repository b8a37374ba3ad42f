package hansen

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownTarget indicates a name that resolves to no target record.
var ErrUnknownTarget = errors.New("hansen: unknown target material")

// Target is a material to screen solvent blends against: a center in
// Hansen space plus the interaction radius R₀ of its solubility sphere.
type Target struct {
	Name   string  `db:"name" json:"name"`
	Center Params  `json:"center"`
	Radius float64 `db:"radius" json:"radius"` // MPa^0.5, interaction radius R₀
}

// TargetSet is a read-only lookup of target materials.
type TargetSet struct {
	byKey map[string]Target
}

// NewTargetSet builds a set from the given targets.
func NewTargetSet(targets []Target) *TargetSet {
	byKey := make(map[string]Target, len(targets))
	for _, t := range targets {
		byKey[strings.ToLower(strings.TrimSpace(t.Name))] = t
	}
	return &TargetSet{byKey: byKey}
}

// BuiltinTargets returns the builtin coating-resin screening table.
func BuiltinTargets() *TargetSet {
	return NewTargetSet([]Target{
		{Name: "Epoxy Resin", Center: Params{D: 17.4, P: 10.5, H: 9.0}, Radius: 7.0},
		{Name: "PMMA", Center: Params{D: 18.6, P: 10.5, H: 7.5}, Radius: 8.6},
		{Name: "Polystyrene", Center: Params{D: 18.5, P: 4.5, H: 2.9}, Radius: 5.3},
		{Name: "PVC", Center: Params{D: 18.2, P: 7.5, H: 8.3}, Radius: 3.5},
		{Name: "Nitrocellulose", Center: Params{D: 15.4, P: 14.7, H: 8.8}, Radius: 11.5},
		{Name: "Polyurethane", Center: Params{D: 18.1, P: 9.3, H: 4.5}, Radius: 9.7},
	})
}

// Lookup resolves a target name case-insensitively.
func (s *TargetSet) Lookup(name string) (Target, error) {
	t, ok := s.byKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Target{}, ErrUnknownTarget
	}
	return t, nil
}

// Names returns all target names, sorted.
func (s *TargetSet) Names() []string {
	names := make([]string, 0, len(s.byKey))
	for _, t := range s.byKey {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
