package service

import "github.com/emberwell/assess-api/internal/model"

// Unit conversion factors.
const (
	cmPerFoot  = 30.48
	kgPerPound = 0.453592
	cmPerInch  = 2.54
)

// ProfileService derives the question route and body metrics from the
// caller-supplied profile inputs. It is stateless and safe for concurrent
// use.
type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Derive maps raw profile inputs to a routing decision and derived
// metrics. The female route applies exactly when menstruates is "yes";
// every other value, including absent, routes male.
//
// Metrics are computed only when their raw inputs are present. The
// deriver performs no validation or clamping: a malformed number simply
// propagates as NaN.
func (s *ProfileService) Derive(p model.ProfileState) model.DerivedProfile {
	route := model.RouteMale
	if p.Menstruates == "yes" {
		route = model.RouteFemale
	}

	var metrics model.HealthMetrics

	if p.Height != nil && p.Weight != nil {
		// The height number is scaled by 30.48 when tagged "ft" and the
		// result divided by 100, matching the published quiz exactly.
		// Dimensionally odd, but behavioral compatibility wins here; see
		// DESIGN.md before "fixing".
		height := *p.Height
		if p.HeightUnit == "ft" {
			height *= cmPerFoot
		}
		heightM := height / 100

		weightKg := *p.Weight
		if p.WeightUnit == "lbs" {
			weightKg *= kgPerPound
		}

		bmi := weightKg / (heightM * heightM)
		metrics.BMI = &bmi
	}

	if p.Waist != nil && p.Height != nil {
		waistCm := *p.Waist
		if p.WaistUnit == "in" {
			waistCm *= cmPerInch
		}

		// Unlike the BMI branch, height is NOT divided by 100 here. The
		// asymmetry is preserved from the published quiz.
		heightCm := *p.Height
		if p.HeightUnit == "ft" {
			heightCm *= cmPerFoot
		}

		ratio := waistCm / heightCm
		metrics.WaistToHeight = &ratio
	}

	return model.DerivedProfile{Route: route, Metrics: metrics}
}
