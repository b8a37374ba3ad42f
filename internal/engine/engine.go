// Package engine evaluates a full mixture profile — density, viscosity,
// surface tension, Hansen parameters — for one composition at one state.
// The engine is stateless across calls: every evaluation is a pure function
// of the request and the read-only constant tables, so a single Engine is
// safe for concurrent callers.
package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/solventmix/internal/composition"
	"github.com/talgya/solventmix/internal/density"
	"github.com/talgya/solventmix/internal/hansen"
	"github.com/talgya/solventmix/internal/physconst"
	"github.com/talgya/solventmix/internal/solvent"
	"github.com/talgya/solventmix/internal/tension"
	"github.com/talgya/solventmix/internal/viscosity"
)

// EvalRequest describes one evaluation: which components, on which basis,
// at which state, through which models.
type EvalRequest struct {
	Components []string          `json:"components"`
	Fractions  []float64         `json:"fractions"`
	Basis      composition.Basis `json:"basis"`

	TempK       float64 `json:"temp_k"`
	PressureBar float64 `json:"pressure_bar,omitempty"` // 0 → 1 atm

	Density   DensityModel   `json:"density_model"`
	Viscosity ViscosityModel `json:"viscosity_model"`
	Tension   TensionModel   `json:"tension_model"`

	// Interactions supplies Grunberg-Nissan Gᵢⱼ coefficients. Nil means
	// ideal mixing for every pair.
	Interactions *viscosity.InteractionTable `json:"-"`

	// Target optionally names a Hansen target material to score against.
	Target string `json:"target,omitempty"`
}

// PropertyResult is one family's outcome. A failed model keeps Value as NaN
// with OK false and the cause recorded; it never aborts the other families.
type PropertyResult struct {
	Model    string  `json:"model"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	OK       bool    `json:"ok"`
	Cause    string  `json:"cause,omitempty"`
	Fallback bool    `json:"fallback,omitempty"` // Sprow-Prausnitz linear fallback taken
}

// MarshalJSON emits null for the unavailable value, since NaN is not valid JSON.
func (p PropertyResult) MarshalJSON() ([]byte, error) {
	type alias PropertyResult
	shadow := struct {
		alias
		Value any `json:"value"`
	}{alias: alias(p)}
	if p.OK {
		shadow.Value = p.Value
	}
	return json.Marshal(shadow)
}

// TargetScore is the Hansen compatibility verdict against one material.
type TargetScore struct {
	Target     string  `json:"target"`
	RED        float64 `json:"red"`
	Compatible bool    `json:"compatible"`
}

// Profile is the complete evaluation result, echoing the resolved inputs.
type Profile struct {
	Components  []string        `json:"components"`
	Composition composition.Set `json:"composition"`
	TempK       float64         `json:"temp_k"`
	PressureBar float64         `json:"pressure_bar"`

	Density   PropertyResult `json:"density"`
	Viscosity PropertyResult `json:"viscosity"`
	Tension   PropertyResult `json:"tension"`
	Hansen    hansen.Params  `json:"hansen"`

	Score *TargetScore `json:"score,omitempty"`
}

// Engine evaluates mixture profiles against its constant tables.
type Engine struct {
	db      *solvent.Database
	targets *hansen.TargetSet
}

// New creates an engine over the given component database and Hansen
// target set. A nil target set disables target scoring.
func New(db *solvent.Database, targets *hansen.TargetSet) *Engine {
	return &Engine{db: db, targets: targets}
}

// Evaluate runs the full mixture profile. Configuration errors (unknown
// component, bad fractions, bad state, unknown selector) fail fast before
// any correlation runs; domain violations inside a correlation surface as
// per-family unavailability, never as an error from Evaluate.
func (e *Engine) Evaluate(req EvalRequest) (*Profile, error) {
	comps, err := e.db.Resolve(req.Components)
	if err != nil {
		return nil, fmt.Errorf("resolve components: %w", err)
	}
	if req.TempK <= 0 {
		return nil, fmt.Errorf("%w: got %.4g", ErrBadTemperature, req.TempK)
	}
	pressure := req.PressureBar
	if pressure == 0 {
		pressure = physconst.AtmBar
	}

	set, err := composition.Convert(req.Fractions, req.Basis, comps, composition.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("convert composition: %w", err)
	}

	profile := &Profile{
		Components:  names(comps),
		Composition: set,
		TempK:       req.TempK,
		PressureBar: pressure,
	}

	profile.Density, err = e.evalDensity(req.Density, req.TempK, pressure, set, comps)
	if err != nil {
		return nil, err
	}
	profile.Viscosity, err = e.evalViscosity(req.Viscosity, set, comps, req.Interactions)
	if err != nil {
		return nil, err
	}
	profile.Tension, err = e.evalTension(req.Tension, req.TempK, set, comps, profile.Density)
	if err != nil {
		return nil, err
	}

	profile.Hansen = hansen.Mix(set.Volume, hspAxes(comps))

	if req.Target != "" {
		if e.targets == nil {
			return nil, fmt.Errorf("score target %q: %w", req.Target, hansen.ErrUnknownTarget)
		}
		target, err := e.targets.Lookup(req.Target)
		if err != nil {
			return nil, fmt.Errorf("score target %q: %w", req.Target, err)
		}
		red := hansen.RED(profile.Hansen, target)
		profile.Score = &TargetScore{Target: target.Name, RED: red, Compatible: red < 1}
	}

	slog.Debug("mixture evaluated",
		"components", len(comps),
		"temp_k", req.TempK,
		"density_ok", profile.Density.OK,
		"viscosity_ok", profile.Viscosity.OK,
		"tension_ok", profile.Tension.OK,
	)
	return profile, nil
}

func (e *Engine) evalDensity(model DensityModel, tempK, pressureBar float64, set composition.Set, comps []solvent.Component) (PropertyResult, error) {
	var (
		value float64
		err   error
	)
	switch model {
	case DensityRackett:
		value, err = density.Rackett(tempK, set.Molar, comps)
	case DensityCostald:
		value, err = density.Costald(tempK, set.Molar, comps)
	case DensityPRPeneloux:
		value, err = density.PRPeneloux(tempK, pressureBar, set.Molar, comps)
	case DensityIdeal:
		value, err = density.Ideal(set.Mass, comps)
	default:
		return PropertyResult{}, fmt.Errorf("%w: density %q", ErrUnknownModel, model)
	}
	return result(string(model), "kg/m³", value, err), nil
}

func (e *Engine) evalViscosity(model ViscosityModel, set composition.Set, comps []solvent.Component, table *viscosity.InteractionTable) (PropertyResult, error) {
	var (
		value float64
		err   error
	)
	switch model {
	case ViscosityArrhenius:
		value, err = viscosity.Arrhenius(set.Molar, comps)
	case ViscosityGrunbergNissan:
		value, err = viscosity.GrunbergNissan(set.Molar, comps, table)
	case ViscosityKendallMonroe:
		value, err = viscosity.KendallMonroe(set.Molar, comps)
	case ViscosityLinear:
		value, err = viscosity.Linear(set.Molar, comps)
	default:
		return PropertyResult{}, fmt.Errorf("%w: viscosity %q", ErrUnknownModel, model)
	}
	return result(string(model), "cP", value, err), nil
}

func (e *Engine) evalTension(model TensionModel, tempK float64, set composition.Set, comps []solvent.Component, rho PropertyResult) (PropertyResult, error) {
	var (
		value    float64
		fellBack bool
		err      error
	)
	switch model {
	case TensionMacleodSugden:
		// The one cross-family dependency: Macleod-Sugden consumes the
		// density family's output. When that model failed, fall back to
		// ideal mixing of the reference densities so one family's domain
		// violation does not cascade.
		mixDensity := rho.Value
		if !rho.OK {
			mixDensity, err = density.Ideal(set.Mass, comps)
			if err != nil {
				break
			}
		}
		value, err = tension.MacleodSugden(set.Molar, comps, mixDensity)
	case TensionSprowPrausnitz:
		value, fellBack, err = tension.SprowPrausnitz(tempK, set.Molar, comps)
	case TensionLinearVol:
		value, err = tension.LinearVolumetric(set.Volume, comps)
	case TensionLinearMolar:
		value, err = tension.LinearMolar(set.Molar, comps)
	default:
		return PropertyResult{}, fmt.Errorf("%w: tension %q", ErrUnknownModel, model)
	}
	res := result(string(model), "mN/m", value, err)
	res.Fallback = fellBack
	return res, nil
}

// result folds a correlation outcome into a PropertyResult: a typed failure
// becomes an unavailable value carrying its cause.
func result(model, unit string, value float64, err error) PropertyResult {
	res := PropertyResult{Model: model, Unit: unit, Value: value}
	switch {
	case err != nil:
		res.Value = math.NaN()
		res.Cause = err.Error()
	case math.IsNaN(value) || math.IsInf(value, 0):
		res.Value = math.NaN()
		res.Cause = "non-finite result"
	default:
		res.OK = true
	}
	return res
}

func names(comps []solvent.Component) []string {
	out := make([]string, len(comps))
	for i, c := range comps {
		out[i] = c.Name
	}
	return out
}

func hspAxes(comps []solvent.Component) []hansen.Params {
	out := make([]hansen.Params, len(comps))
	for i, c := range comps {
		out[i] = hansen.Params{D: c.DispD, P: c.PolarP, H: c.HBondH}
	}
	return out
}
