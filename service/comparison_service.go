package service

import (
	"context"
	"fmt"
	"sort"

	"fincalc/domain"
	"fincalc/finmath"
)

type ComparisonService struct {
	calculator *CalculatorService
}

func NewComparisonService(calculator *CalculatorService) *ComparisonService {
	return &ComparisonService{calculator: calculator}
}

// CompareRates ranks the quoted offers by effective annual rate, from
// cheapest to most expensive, and reports the spread the best offer
// saves per year.
func (s *ComparisonService) CompareRates(
	ctx context.Context,
	input domain.RateComparisonInput,
) (domain.RateComparisonResult, error) {

	if len(input.Offers) < MinOffers {
		return domain.RateComparisonResult{}, &finmath.InvalidArgumentError{
			Op: "rate comparison", Reason: fmt.Sprintf("at least %d offers are required", MinOffers),
		}
	}
	if len(input.Offers) > MaxOffers {
		return domain.RateComparisonResult{}, &finmath.InvalidArgumentError{
			Op: "rate comparison", Reason: fmt.Sprintf("offer count exceeds the maximum of %d", MaxOffers),
		}
	}

	names := make(map[string]bool, len(input.Offers))
	for _, offer := range input.Offers {
		if offer.Name == "" {
			return domain.RateComparisonResult{}, &finmath.InvalidArgumentError{
				Op: "rate comparison", Reason: "offer name must not be empty",
			}
		}
		if names[offer.Name] {
			return domain.RateComparisonResult{}, &finmath.InvalidArgumentError{
				Op: "rate comparison", Reason: fmt.Sprintf("duplicate offer name: %s", offer.Name),
			}
		}
		names[offer.Name] = true
	}

	rankings := make([]domain.OfferRanking, 0, len(input.Offers))
	for _, offer := range input.Offers {
		eff, err := s.calculator.EffectiveRate(ctx, domain.EffectiveRateInput{
			NominalRate:    offer.NominalRate,
			PeriodsPerYear: offer.PeriodsPerYear,
		})
		if err != nil {
			return domain.RateComparisonResult{}, fmt.Errorf("offer %s: %w", offer.Name, err)
		}
		rankings = append(rankings, domain.OfferRanking{
			Name:           offer.Name,
			NominalRate:    offer.NominalRate,
			PeriodsPerYear: offer.PeriodsPerYear,
			EffectiveRate:  eff.Value,
			Rounded:        eff.Rounded,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].EffectiveRate < rankings[j].EffectiveRate
	})

	best := rankings[0]
	next := rankings[1]
	worst := rankings[len(rankings)-1]

	return domain.RateComparisonResult{
		Rankings:         rankings,
		BestOffer:        best.Name,
		SavingsOverNext:  roundTo6Decimals(next.EffectiveRate - best.EffectiveRate),
		SavingsOverWorst: roundTo6Decimals(worst.EffectiveRate - best.EffectiveRate),
	}, nil
}
