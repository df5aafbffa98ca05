package domain

type GrowthProjectionInput struct {
	Principal   float64     `json:"principal"`
	Rate        float64     `json:"rate"`
	Horizons    []float64   `json:"horizons" validate:"required,min=1,max=100"`
	Compounding Compounding `json:"compounding,omitempty" validate:"omitempty,oneof=periodic continuous"`
}

type GrowthPoint struct {
	Periods        float64 `json:"periods"`
	Value          float64 `json:"value"`
	Rounded        float64 `json:"rounded"`
	GrowthMultiple float64 `json:"growthMultiple"`
}

type GrowthProjectionResult struct {
	Points []GrowthPoint `json:"points"`
}

type CompoundingScheduleInput struct {
	NominalRate float64 `json:"nominalRate"`
}

type CompoundingScheduleEntry struct {
	Frequency      string  `json:"frequency"`
	PeriodsPerYear float64 `json:"periodsPerYear,omitempty"`
	EffectiveRate  float64 `json:"effectiveRate"`
	Rounded        float64 `json:"rounded"`
}

// CompoundingScheduleResult lists the effective annual rate of one
// nominal rate under the standard compounding frequencies, ending with
// the continuous limit.
type CompoundingScheduleResult struct {
	NominalRate float64                    `json:"nominalRate"`
	Entries     []CompoundingScheduleEntry `json:"entries"`
}
