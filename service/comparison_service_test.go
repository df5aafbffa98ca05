package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/finmath"
)

func TestCompareRates_MortgageOffers(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewComparisonService(calc)

	// A lower nominal rate compounded more often still beats a higher
	// one compounded less often here.
	result, err := svc.CompareRates(context.Background(), domain.RateComparisonInput{
		Offers: []domain.RateOffer{
			{Name: "offer-a", NominalRate: 0.035, PeriodsPerYear: 12},
			{Name: "offer-b", NominalRate: 0.0375, PeriodsPerYear: 4},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Rankings, 2)

	assert.Equal(t, "offer-a", result.BestOffer)
	assert.Equal(t, "offer-a", result.Rankings[0].Name)
	assert.InDelta(t, 0.03557, result.Rankings[0].EffectiveRate, 0.0001)
	assert.InDelta(t, 0.03803, result.Rankings[1].EffectiveRate, 0.0001)
	assert.InDelta(t,
		result.Rankings[1].EffectiveRate-result.Rankings[0].EffectiveRate,
		result.SavingsOverNext, 1e-6)
	assert.Equal(t, result.SavingsOverNext, result.SavingsOverWorst)
}

func TestCompareRates_RanksManyOffers(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewComparisonService(calc)

	result, err := svc.CompareRates(context.Background(), domain.RateComparisonInput{
		Offers: []domain.RateOffer{
			{Name: "daily", NominalRate: 0.10, PeriodsPerYear: 365},
			{Name: "annual", NominalRate: 0.10, PeriodsPerYear: 1},
			{Name: "monthly", NominalRate: 0.10, PeriodsPerYear: 12},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Rankings, 3)

	// Same nominal rate: less frequent compounding is cheaper.
	assert.Equal(t, "annual", result.Rankings[0].Name)
	assert.Equal(t, "monthly", result.Rankings[1].Name)
	assert.Equal(t, "daily", result.Rankings[2].Name)
	assert.Greater(t, result.SavingsOverWorst, result.SavingsOverNext)
}

func TestCompareRates_SingleOffer(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewComparisonService(calc)

	_, err := svc.CompareRates(context.Background(), domain.RateComparisonInput{
		Offers: []domain.RateOffer{
			{Name: "only", NominalRate: 0.10, PeriodsPerYear: 12},
		},
	})

	var invalidErr *finmath.InvalidArgumentError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidErr))
}

func TestCompareRates_DuplicateNames(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewComparisonService(calc)

	_, err := svc.CompareRates(context.Background(), domain.RateComparisonInput{
		Offers: []domain.RateOffer{
			{Name: "same", NominalRate: 0.10, PeriodsPerYear: 12},
			{Name: "same", NominalRate: 0.12, PeriodsPerYear: 4},
		},
	})

	var invalidErr *finmath.InvalidArgumentError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidErr))
}

func TestCompareRates_InvalidFrequencyPropagates(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewComparisonService(calc)

	_, err := svc.CompareRates(context.Background(), domain.RateComparisonInput{
		Offers: []domain.RateOffer{
			{Name: "good", NominalRate: 0.10, PeriodsPerYear: 12},
			{Name: "bad", NominalRate: 0.10, PeriodsPerYear: 0},
		},
	})

	var domainErr *finmath.DomainError
	require.Error(t, err)
	assert.True(t, errors.As(err, &domainErr))
}
