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

func TestGrowth_SweepsHorizons(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewProjectionService(calc)

	result, err := svc.Growth(context.Background(), domain.GrowthProjectionInput{
		Principal: 5000,
		Rate:      0.08,
		Horizons:  []float64{5, 10, 30},
	})

	require.NoError(t, err)
	require.Len(t, result.Points, 3)

	assert.Equal(t, 5.0, result.Points[0].Periods)
	assert.InDelta(t, 7346.64, result.Points[0].Rounded, 0.01)
	assert.InDelta(t, 10794.62, result.Points[1].Rounded, 0.01)
	assert.InDelta(t, 50313.28, result.Points[2].Rounded, 0.01)

	// Growth compounds: later horizons dominate earlier ones.
	assert.Greater(t, result.Points[2].Value, result.Points[1].Value)
	assert.Greater(t, result.Points[1].Value, result.Points[0].Value)
}

func TestGrowth_NoHorizons(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewProjectionService(calc)

	_, err := svc.Growth(context.Background(), domain.GrowthProjectionInput{
		Principal: 5000,
		Rate:      0.08,
	})

	var invalidErr *finmath.InvalidArgumentError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidErr))
}

func TestGrowth_NegativeHorizon(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewProjectionService(calc)

	_, err := svc.Growth(context.Background(), domain.GrowthProjectionInput{
		Principal: 5000,
		Rate:      0.08,
		Horizons:  []float64{5, -1},
	})

	var invalidErr *finmath.InvalidArgumentError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidErr))
}

func TestCompoundingSchedule_OrderedByFrequency(t *testing.T) {
	calc, _, _ := newTestService()
	svc := NewProjectionService(calc)

	result, err := svc.CompoundingSchedule(context.Background(), domain.CompoundingScheduleInput{
		NominalRate: 0.10,
	})

	require.NoError(t, err)
	require.Len(t, result.Entries, len(StandardFrequencies)+1)

	assert.Equal(t, "annual", result.Entries[0].Frequency)
	assert.Equal(t, 0.10, result.Entries[0].EffectiveRate, "annual compounding is the identity")

	daily := result.Entries[len(result.Entries)-2]
	assert.Equal(t, "daily", daily.Frequency)
	assert.InDelta(t, 0.10516, daily.EffectiveRate, 0.00001)

	continuous := result.Entries[len(result.Entries)-1]
	assert.Equal(t, "continuous", continuous.Frequency)

	// More frequent compounding never yields less.
	for i := 1; i < len(result.Entries); i++ {
		assert.GreaterOrEqual(t,
			result.Entries[i].EffectiveRate,
			result.Entries[i-1].EffectiveRate)
	}
}
