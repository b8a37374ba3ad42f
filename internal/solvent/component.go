// Package solvent provides the pure-component reference records the mixing
// correlations consume. Records are immutable after load: the database is
// built once at process start and only ever read.
package solvent

import (
	"errors"
	"fmt"
)

// ErrUnknownComponent indicates a name that resolves to no database record.
var ErrUnknownComponent = errors.New("solvent: unknown component")

// ErrInvalidComponent indicates a record with non-physical constants.
var ErrInvalidComponent = errors.New("solvent: invalid component record")

// Component is a pure-component reference record. Reference properties are
// tabulated at 25 °C and 1 atm.
type Component struct {
	Name       string  `db:"name" json:"name"`
	MolarMass  float64 `db:"molar_mass" json:"molar_mass"`   // g/mol
	Tc         float64 `db:"tc" json:"tc"`                   // K, critical temperature
	Pc         float64 `db:"pc" json:"pc"`                   // bar, critical pressure
	Omega      float64 `db:"omega" json:"omega"`             // acentric factor
	Zra        float64 `db:"zra" json:"zra"`                 // Rackett compressibility factor
	RefDensity float64 `db:"rho_ref" json:"rho_ref"`         // kg/m³
	RefVisc    float64 `db:"visc_ref" json:"visc_ref"`       // cP
	RefTension float64 `db:"sigma_ref" json:"sigma_ref"`     // mN/m
	Parachor   float64 `db:"parachor" json:"parachor"`       // Sugden parachor
	DispD      float64 `db:"hsp_d" json:"hsp_d"`             // MPa^0.5, Hansen dispersion
	PolarP     float64 `db:"hsp_p" json:"hsp_p"`             // MPa^0.5, Hansen polarity
	HBondH     float64 `db:"hsp_h" json:"hsp_h"`             // MPa^0.5, Hansen hydrogen bonding
}

// Validate checks that the record can feed every correlation without a
// silent divide-by-zero downstream.
func (c Component) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidComponent)
	case c.MolarMass <= 0:
		return fmt.Errorf("%w: %s: molar mass %.4g", ErrInvalidComponent, c.Name, c.MolarMass)
	case c.RefDensity <= 0:
		return fmt.Errorf("%w: %s: reference density %.4g", ErrInvalidComponent, c.Name, c.RefDensity)
	case c.Tc <= 0 || c.Pc <= 0:
		return fmt.Errorf("%w: %s: critical point Tc=%.4g Pc=%.4g", ErrInvalidComponent, c.Name, c.Tc, c.Pc)
	case c.Zra <= 0:
		return fmt.Errorf("%w: %s: Rackett factor %.4g", ErrInvalidComponent, c.Name, c.Zra)
	}
	return nil
}
