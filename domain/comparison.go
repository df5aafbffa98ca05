package domain

// RateOffer is one quoted nominal rate with its compounding frequency.
type RateOffer struct {
	Name           string  `json:"name" validate:"required"`
	NominalRate    float64 `json:"nominalRate"`
	PeriodsPerYear float64 `json:"periodsPerYear" validate:"lte=100000"`
}

type RateComparisonInput struct {
	Offers []RateOffer `json:"offers" validate:"required,min=2,max=10,dive"`
}

type OfferRanking struct {
	Name           string  `json:"name"`
	NominalRate    float64 `json:"nominalRate"`
	PeriodsPerYear float64 `json:"periodsPerYear"`
	EffectiveRate  float64 `json:"effectiveRate"`
	Rounded        float64 `json:"rounded"`
}

// RateComparisonResult ranks offers from cheapest to most expensive by
// effective annual rate.
type RateComparisonResult struct {
	Rankings  []OfferRanking `json:"rankings"`
	BestOffer string         `json:"bestOffer"`
	// SavingsOverNext is the effective-rate spread between the best
	// offer and the runner-up, in rate points per year.
	SavingsOverNext  float64 `json:"savingsOverNext"`
	SavingsOverWorst float64 `json:"savingsOverWorst"`
}
