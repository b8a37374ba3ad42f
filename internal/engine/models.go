package engine

import "errors"

// ErrUnknownModel indicates a selector that names no registered model.
var ErrUnknownModel = errors.New("engine: unknown model")

// ErrBadTemperature indicates a non-positive absolute temperature.
var ErrBadTemperature = errors.New("engine: temperature must be positive kelvin")

// DensityModel selects a density correlation.
type DensityModel string

const (
	DensityRackett    DensityModel = "rackett"
	DensityCostald    DensityModel = "costald"
	DensityPRPeneloux DensityModel = "pr-peneloux"
	DensityIdeal      DensityModel = "ideal"
)

// ViscosityModel selects a viscosity correlation.
type ViscosityModel string

const (
	ViscosityArrhenius      ViscosityModel = "arrhenius"
	ViscosityGrunbergNissan ViscosityModel = "grunberg-nissan"
	ViscosityKendallMonroe  ViscosityModel = "kendall-monroe"
	ViscosityLinear         ViscosityModel = "linear"
)

// TensionModel selects a surface-tension correlation.
type TensionModel string

const (
	TensionMacleodSugden  TensionModel = "macleod-sugden"
	TensionSprowPrausnitz TensionModel = "sprow-prausnitz"
	TensionLinearVol      TensionModel = "linear-volumetric"
	TensionLinearMolar    TensionModel = "linear-molar"
)

// DensityModels lists the registered density selectors.
func DensityModels() []DensityModel {
	return []DensityModel{DensityRackett, DensityCostald, DensityPRPeneloux, DensityIdeal}
}

// ViscosityModels lists the registered viscosity selectors.
func ViscosityModels() []ViscosityModel {
	return []ViscosityModel{ViscosityArrhenius, ViscosityGrunbergNissan, ViscosityKendallMonroe, ViscosityLinear}
}

// TensionModels lists the registered surface-tension selectors.
func TensionModels() []TensionModel {
	return []TensionModel{TensionMacleodSugden, TensionSprowPrausnitz, TensionLinearVol, TensionLinearMolar}
}
