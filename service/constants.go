package service

const (
	MaxCashFlows      = 10_000 // entries per present-value request
	MaxAbsCashFlow    = 1_000_000_000_000.0
	MaxAbsPrincipal   = 1_000_000_000_000.0
	MaxAbsRate        = 10.0    // 1000% per period
	MaxAbsPeriods     = 1_200.0 // 100 years of monthly periods
	MaxPeriodsPerYear = 100_000.0

	// Limits for rate comparison
	MinOffers = 2
	MaxOffers = 10

	// Limits for growth projection
	MaxHorizons = 100
)

// CompoundingFrequency names one of the standard intra-year compounding
// conventions.
type CompoundingFrequency struct {
	Name           string
	PeriodsPerYear float64
}

// StandardFrequencies are the conventions reported by the compounding
// schedule, from annual down to daily.
var StandardFrequencies = []CompoundingFrequency{
	{Name: "annual", PeriodsPerYear: 1},
	{Name: "semi-annual", PeriodsPerYear: 2},
	{Name: "quarterly", PeriodsPerYear: 4},
	{Name: "monthly", PeriodsPerYear: 12},
	{Name: "daily", PeriodsPerYear: 365},
}
