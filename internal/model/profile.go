package model

// ProfileState is the caller-owned bag of optional demographic inputs.
// No field is required; the deriver works with whatever is present.
// Pointer fields distinguish "absent" from zero values.
type ProfileState struct {
	AgeBracket  string   `json:"age_bracket,omitempty"`
	Menstruates string   `json:"menstruates,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	HeightUnit  string   `json:"height_unit,omitempty"` // "cm" or "ft"
	Weight      *float64 `json:"weight,omitempty"`
	WeightUnit  string   `json:"weight_unit,omitempty"` // "kg" or "lbs"
	Waist       *float64 `json:"waist,omitempty"`
	WaistUnit   string   `json:"waist_unit,omitempty"` // "cm" or "in"
	WeightTrend string   `json:"weight_trend,omitempty"`
}

// HealthMetrics are derived body metrics. A metric is nil whenever its
// required raw inputs are missing; it is never defaulted to zero.
type HealthMetrics struct {
	BMI           *float64 `json:"bmi,omitempty"`
	WaistToHeight *float64 `json:"waist_to_height,omitempty"`
}

// DerivedProfile is the routing decision plus derived metrics computed
// from a ProfileState.
type DerivedProfile struct {
	Route   Route         `json:"route"`
	Metrics HealthMetrics `json:"metrics"`
}
