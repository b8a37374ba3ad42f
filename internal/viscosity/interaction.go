package viscosity

import "strings"

// InteractionTable maps an unordered pair of component names to a
// Grunberg-Nissan excess coefficient Gᵢⱼ. Lookups are symmetric and
// case-insensitive; an absent pair means ideal mixing (G = 0). The table is
// caller-supplied data — nothing ships builtin.
type InteractionTable struct {
	params map[pairKey]float64
}

type pairKey struct {
	lo, hi string
}

// Param is one table entry in exportable form.
type Param struct {
	CompA string  `db:"comp_a" json:"comp_a"`
	CompB string  `db:"comp_b" json:"comp_b"`
	G     float64 `db:"g" json:"g"`
}

// NewInteractionTable creates an empty table.
func NewInteractionTable() *InteractionTable {
	return &InteractionTable{params: make(map[pairKey]float64)}
}

// Set stores the coefficient for the unordered pair (a, b).
func (t *InteractionTable) Set(a, b string, g float64) {
	t.params[keyOf(a, b)] = g
}

// Get returns the coefficient for the unordered pair (a, b), defaulting to
// 0 for unlisted pairs. A nil table is a valid all-zero table.
func (t *InteractionTable) Get(a, b string) float64 {
	if t == nil {
		return 0
	}
	return t.params[keyOf(a, b)]
}

// Len returns the number of stored pairs.
func (t *InteractionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.params)
}

// Params returns all entries, for persistence or echoing back to callers.
func (t *InteractionTable) Params() []Param {
	if t == nil {
		return nil
	}
	out := make([]Param, 0, len(t.params))
	for k, g := range t.params {
		out = append(out, Param{CompA: k.lo, CompB: k.hi, G: g})
	}
	return out
}

func keyOf(a, b string) pairKey {
	na, nb := normalize(a), normalize(b)
	if na > nb {
		na, nb = nb, na
	}
	return pairKey{lo: na, hi: nb}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
