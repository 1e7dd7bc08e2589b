package service

import (
	"math"
	"testing"

	"github.com/emberwell/assess-api/internal/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestDeriveRouteFromMenstruation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	cases := []struct {
		name        string
		menstruates string
		want        model.Route
	}{
		{"yes routes female", "yes", model.RouteFemale},
		{"no routes male", "no", model.RouteMale},
		{"absent routes male", "", model.RouteMale},
		{"prefer not to say routes male", "prefer_not_to_say", model.RouteMale},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			derived := svc.Derive(model.ProfileState{Menstruates: tc.menstruates})
			if derived.Route != tc.want {
				t.Errorf("expected route %s, got %s", tc.want, derived.Route)
			}
		})
	}
}

func TestDeriveBMIMetric(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	// 180 cm, 81 kg: BMI = 81 / 1.8^2 = 25.0
	derived := svc.Derive(model.ProfileState{
		Height: floatPtr(180), HeightUnit: "cm",
		Weight: floatPtr(81), WeightUnit: "kg",
	})

	if derived.Metrics.BMI == nil {
		t.Fatal("expected a BMI metric")
	}
	if got := *derived.Metrics.BMI; math.Abs(got-25.0) > 1e-9 {
		t.Errorf("expected BMI 25.0, got %v", got)
	}
}

func TestDeriveBMIImperialUnits(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	// 6 ft is treated as 6 * 30.48 cm; 165 lbs as 165 * 0.453592 kg.
	derived := svc.Derive(model.ProfileState{
		Height: floatPtr(6), HeightUnit: "ft",
		Weight: floatPtr(165), WeightUnit: "lbs",
	})

	if derived.Metrics.BMI == nil {
		t.Fatal("expected a BMI metric")
	}

	heightM := 6 * 30.48 / 100
	weightKg := 165 * 0.453592
	want := weightKg / (heightM * heightM)
	if got := *derived.Metrics.BMI; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected BMI %v, got %v", want, got)
	}
}

func TestDeriveWaistToHeightMetric(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	// 90 cm waist over 180 cm height: ratio 0.5.
	derived := svc.Derive(model.ProfileState{
		Height: floatPtr(180), HeightUnit: "cm",
		Waist:  floatPtr(90), WaistUnit: "cm",
	})

	if derived.Metrics.WaistToHeight == nil {
		t.Fatal("expected a waist-to-height metric")
	}
	if got := *derived.Metrics.WaistToHeight; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected ratio 0.5, got %v", got)
	}
	if derived.Metrics.BMI != nil {
		t.Error("expected no BMI without a weight")
	}
}

func TestDeriveWaistToHeightImperialUnits(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	derived := svc.Derive(model.ProfileState{
		Height: floatPtr(6), HeightUnit: "ft",
		Waist:  floatPtr(35), WaistUnit: "in",
	})

	if derived.Metrics.WaistToHeight == nil {
		t.Fatal("expected a waist-to-height metric")
	}

	want := (35 * 2.54) / (6 * 30.48)
	if got := *derived.Metrics.WaistToHeight; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected ratio %v, got %v", want, got)
	}
}

func TestDeriveNoMetricsWithoutInputs(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	cases := []struct {
		name    string
		profile model.ProfileState
	}{
		{"empty profile", model.ProfileState{}},
		{"height only", model.ProfileState{Height: floatPtr(180)}},
		{"weight only", model.ProfileState{Weight: floatPtr(80)}},
		{"waist only", model.ProfileState{Waist: floatPtr(90)}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			derived := svc.Derive(tc.profile)
			if derived.Metrics.BMI != nil {
				t.Error("expected no BMI")
			}
			if derived.Metrics.WaistToHeight != nil {
				t.Error("expected no waist-to-height ratio")
			}
		})
	}
}

func TestDeriveZeroHeightPropagates(t *testing.T) {
	t.Parallel()

	svc := NewProfileService()

	// The deriver does not validate inputs; division by zero yields Inf.
	derived := svc.Derive(model.ProfileState{
		Height: floatPtr(0),
		Weight: floatPtr(80),
	})

	if derived.Metrics.BMI == nil {
		t.Fatal("expected a BMI metric")
	}
	if !math.IsInf(*derived.Metrics.BMI, 1) {
		t.Errorf("expected +Inf BMI, got %v", *derived.Metrics.BMI)
	}
}
