package service

import (
	"context"
	"fmt"

	"fincalc/domain"
	"fincalc/finmath"
)

type ProjectionService struct {
	calculator *CalculatorService
}

func NewProjectionService(calculator *CalculatorService) *ProjectionService {
	return &ProjectionService{calculator: calculator}
}

// Growth projects the future value of one principal across every
// requested horizon, reusing the calculator for each point.
func (s *ProjectionService) Growth(
	ctx context.Context,
	input domain.GrowthProjectionInput,
) (domain.GrowthProjectionResult, error) {

	if len(input.Horizons) == 0 {
		return domain.GrowthProjectionResult{}, &finmath.InvalidArgumentError{
			Op: "growth projection", Reason: "at least one horizon is required",
		}
	}
	if len(input.Horizons) > MaxHorizons {
		return domain.GrowthProjectionResult{}, &finmath.InvalidArgumentError{
			Op: "growth projection", Reason: fmt.Sprintf("horizon count exceeds the maximum of %d", MaxHorizons),
		}
	}
	for _, h := range input.Horizons {
		if h < 0 {
			return domain.GrowthProjectionResult{}, &finmath.InvalidArgumentError{
				Op: "growth projection", Reason: "horizons must be non-negative",
			}
		}
	}

	points := make([]domain.GrowthPoint, 0, len(input.Horizons))
	for _, h := range input.Horizons {
		fv, err := s.calculator.FutureValue(ctx, domain.FutureValueInput{
			Principal:   input.Principal,
			Rate:        input.Rate,
			Periods:     h,
			Compounding: input.Compounding,
		})
		if err != nil {
			return domain.GrowthProjectionResult{}, err
		}
		points = append(points, domain.GrowthPoint{
			Periods:        h,
			Value:          fv.Value,
			Rounded:        fv.Rounded,
			GrowthMultiple: fv.GrowthMultiple,
		})
	}

	return domain.GrowthProjectionResult{Points: points}, nil
}

// CompoundingSchedule reports the effective annual rate of one nominal
// rate under each standard frequency, ending with the continuous limit.
func (s *ProjectionService) CompoundingSchedule(
	ctx context.Context,
	input domain.CompoundingScheduleInput,
) (domain.CompoundingScheduleResult, error) {

	entries := make([]domain.CompoundingScheduleEntry, 0, len(StandardFrequencies)+1)
	for _, freq := range StandardFrequencies {
		eff, err := s.calculator.EffectiveRate(ctx, domain.EffectiveRateInput{
			NominalRate:    input.NominalRate,
			PeriodsPerYear: freq.PeriodsPerYear,
		})
		if err != nil {
			return domain.CompoundingScheduleResult{}, err
		}
		entries = append(entries, domain.CompoundingScheduleEntry{
			Frequency:      freq.Name,
			PeriodsPerYear: freq.PeriodsPerYear,
			EffectiveRate:  eff.Value,
			Rounded:        eff.Rounded,
		})
	}

	continuous := finmath.ContinuousEffectiveRate(input.NominalRate)
	entries = append(entries, domain.CompoundingScheduleEntry{
		Frequency:     "continuous",
		EffectiveRate: continuous,
		Rounded:       roundTo6Decimals(continuous),
	})

	return domain.CompoundingScheduleResult{
		NominalRate: input.NominalRate,
		Entries:     entries,
	}, nil
}
