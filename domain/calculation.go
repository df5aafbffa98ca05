package domain

import "time"

// Compounding selects the convention used when compounding a principal
// forward.
type Compounding string

const (
	CompoundingPeriodic   Compounding = "periodic"
	CompoundingContinuous Compounding = "continuous"
)

type PresentValueInput struct {
	Rate      float64   `json:"rate"`
	CashFlows []float64 `json:"cashFlows" validate:"max=10000"`
}

type PresentValueResult struct {
	Value   float64 `json:"value"`
	Rounded float64 `json:"rounded"`
}

type FutureValueInput struct {
	Principal   float64     `json:"principal"`
	Rate        float64     `json:"rate"`
	Periods     float64     `json:"periods"`
	Compounding Compounding `json:"compounding,omitempty" validate:"omitempty,oneof=periodic continuous"`
}

type FutureValueResult struct {
	Value float64 `json:"value"`
	// Rounded, Gain, and GrowthMultiple are display values, rounded
	// to two decimals.
	Rounded        float64 `json:"rounded"`
	Gain           float64 `json:"gain"`
	GrowthMultiple float64 `json:"growthMultiple"`
}

type EffectiveRateInput struct {
	NominalRate    float64 `json:"nominalRate"`
	PeriodsPerYear float64 `json:"periodsPerYear" validate:"lte=100000"`
}

type EffectiveRateResult struct {
	Value   float64 `json:"value"`
	Rounded float64 `json:"rounded"`
	// Spread is how far the effective rate exceeds the nominal one.
	Spread float64 `json:"spread"`
}

// CalculationRecord is the stored trace of a performed calculation.
type CalculationRecord struct {
	Operation string    `json:"operation"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}
