package solvent

import (
	"sort"
	"strings"
)

// Database is a read-only lookup table of component records keyed by name.
// Safe for concurrent readers once built.
type Database struct {
	byKey map[string]Component
}

// NewDatabase builds a database from the given records, validating each.
func NewDatabase(records []Component) (*Database, error) {
	byKey := make(map[string]Component, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		byKey[normalize(rec.Name)] = rec
	}
	return &Database{byKey: byKey}, nil
}

// Builtin returns a database of the builtin solvent table.
func Builtin() *Database {
	db, err := NewDatabase(builtinComponents())
	if err != nil {
		// The builtin table is compile-time data; a bad record is a bug.
		panic(err)
	}
	return db
}

// Lookup resolves a component name case-insensitively.
func (d *Database) Lookup(name string) (Component, error) {
	rec, ok := d.byKey[normalize(name)]
	if !ok {
		return Component{}, ErrUnknownComponent
	}
	return rec, nil
}

// Resolve looks up every name, preserving order.
func (d *Database) Resolve(names []string) ([]Component, error) {
	comps := make([]Component, len(names))
	for i, name := range names {
		rec, err := d.Lookup(name)
		if err != nil {
			return nil, err
		}
		comps[i] = rec
	}
	return comps, nil
}

// Names returns all component names, sorted.
func (d *Database) Names() []string {
	names := make([]string, 0, len(d.byKey))
	for _, rec := range d.byKey {
		names = append(names, rec.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of records.
func (d *Database) Len() int { return len(d.byKey) }

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// builtinComponents is the builtin reference table: common industrial
// solvents at 25 °C. Critical pressures in bar, densities in kg/m³,
// viscosities in cP, surface tensions in mN/m, HSP axes in MPa^0.5.
func builtinComponents() []Component {
	return []Component{
		{Name: "Water", MolarMass: 18.015, Tc: 647.1, Pc: 220.6, Omega: 0.344, Zra: 0.2338,
			RefDensity: 997.0, RefVisc: 0.89, RefTension: 72.8, Parachor: 52.0,
			DispD: 15.5, PolarP: 16.0, HBondH: 42.3},
		{Name: "Ethanol", MolarMass: 46.069, Tc: 513.9, Pc: 61.4, Omega: 0.644, Zra: 0.2520,
			RefDensity: 789.0, RefVisc: 1.07, RefTension: 22.1, Parachor: 128.0,
			DispD: 15.8, PolarP: 8.8, HBondH: 19.4},
		{Name: "Acetone", MolarMass: 58.08, Tc: 508.1, Pc: 47.0, Omega: 0.304, Zra: 0.2547,
			RefDensity: 784.0, RefVisc: 0.31, RefTension: 23.3, Parachor: 161.0,
			DispD: 15.5, PolarP: 10.4, HBondH: 7.0},
		{Name: "Toluene", MolarMass: 92.14, Tc: 591.8, Pc: 41.0, Omega: 0.264, Zra: 0.2646,
			RefDensity: 867.0, RefVisc: 0.56, RefTension: 28.5, Parachor: 246.0,
			DispD: 18.0, PolarP: 1.4, HBondH: 2.0},
		{Name: "Methanol", MolarMass: 32.04, Tc: 512.6, Pc: 80.9, Omega: 0.556, Zra: 0.2329,
			RefDensity: 791.0, RefVisc: 0.54, RefTension: 22.5, Parachor: 91.0,
			DispD: 15.1, PolarP: 12.3, HBondH: 22.3},
		{Name: "n-Butanol", MolarMass: 74.12, Tc: 563.0, Pc: 44.2, Omega: 0.594, Zra: 0.2587,
			RefDensity: 810.0, RefVisc: 2.54, RefTension: 24.6, Parachor: 210.0,
			DispD: 16.0, PolarP: 5.7, HBondH: 15.8},
		{Name: "Butyl Acetate", MolarMass: 116.16, Tc: 579.0, Pc: 31.1, Omega: 0.434, Zra: 0.2590,
			RefDensity: 881.0, RefVisc: 0.73, RefTension: 25.2, Parachor: 315.0,
			DispD: 15.8, PolarP: 3.7, HBondH: 6.3},
		{Name: "MEK", MolarMass: 72.11, Tc: 535.5, Pc: 41.5, Omega: 0.323, Zra: 0.2600,
			RefDensity: 805.0, RefVisc: 0.41, RefTension: 24.0, Parachor: 198.0,
			DispD: 16.0, PolarP: 9.0, HBondH: 5.1},
		{Name: "Xylene", MolarMass: 106.16, Tc: 617.0, Pc: 35.1, Omega: 0.302, Zra: 0.2630,
			RefDensity: 861.0, RefVisc: 0.62, RefTension: 28.7, Parachor: 284.0,
			DispD: 17.6, PolarP: 1.0, HBondH: 3.1},
		{Name: "Isopropanol", MolarMass: 60.10, Tc: 508.3, Pc: 47.6, Omega: 0.665, Zra: 0.2501,
			RefDensity: 785.0, RefVisc: 2.04, RefTension: 21.7, Parachor: 160.0,
			DispD: 15.8, PolarP: 6.1, HBondH: 16.4},
		{Name: "Cyclohexane", MolarMass: 84.16, Tc: 553.5, Pc: 40.7, Omega: 0.210, Zra: 0.2729,
			RefDensity: 778.1, RefVisc: 0.89, RefTension: 24.3, Parachor: 217.0,
			DispD: 16.8, PolarP: 0.0, HBondH: 0.2},
		{Name: "n-Heptane", MolarMass: 100.20, Tc: 540.2, Pc: 27.4, Omega: 0.349, Zra: 0.2635,
			RefDensity: 684.0, RefVisc: 0.39, RefTension: 19.7, Parachor: 311.0,
			DispD: 15.3, PolarP: 0.0, HBondH: 0.0},
		{Name: "Ethyl Acetate", MolarMass: 88.11, Tc: 523.3, Pc: 38.8, Omega: 0.366, Zra: 0.2554,
			RefDensity: 900.3, RefVisc: 0.42, RefTension: 23.4, Parachor: 216.0,
			DispD: 15.8, PolarP: 5.3, HBondH: 7.2},
		{Name: "THF", MolarMass: 72.11, Tc: 540.2, Pc: 51.9, Omega: 0.226, Zra: 0.2560,
			RefDensity: 889.0, RefVisc: 0.46, RefTension: 26.4, Parachor: 174.0,
			DispD: 16.8, PolarP: 5.7, HBondH: 8.0},
		{Name: "DMSO", MolarMass: 78.13, Tc: 719.0, Pc: 56.5, Omega: 0.345, Zra: 0.2350,
			RefDensity: 1100.0, RefVisc: 1.99, RefTension: 42.9, Parachor: 189.0,
			DispD: 18.4, PolarP: 16.4, HBondH: 10.2},
	}
}
