package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"fincalc/domain"
	"fincalc/finmath"
	"fincalc/repository"
)

// roundTo2Decimals rounds a currency amount for display.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundTo6Decimals rounds a rate for display.
func roundTo6Decimals(value float64) float64 {
	return math.Round(value*1_000_000) / 1_000_000
}

type CalculatorService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewCalculatorService creates a new CalculatorService with the given
// repository and cache.
func NewCalculatorService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *CalculatorService {
	return &CalculatorService{repo: repo, cache: cache}
}

// PresentValue discounts the cash-flow series in the input to time zero.
func (s *CalculatorService) PresentValue(
	ctx context.Context,
	input domain.PresentValueInput,
) (domain.PresentValueResult, error) {

	if len(input.CashFlows) > MaxCashFlows {
		return domain.PresentValueResult{}, &finmath.InvalidArgumentError{
			Op: "present value", Reason: fmt.Sprintf("series exceeds the maximum of %d cash flows", MaxCashFlows),
		}
	}
	for _, cf := range input.CashFlows {
		if math.Abs(cf) > MaxAbsCashFlow {
			return domain.PresentValueResult{}, &finmath.InvalidArgumentError{
				Op: "present value", Reason: fmt.Sprintf("cash flow exceeds the maximum magnitude of %.0f", MaxAbsCashFlow),
			}
		}
	}
	if math.Abs(input.Rate) > MaxAbsRate {
		return domain.PresentValueResult{}, &finmath.InvalidArgumentError{
			Op: "present value", Reason: fmt.Sprintf("rate exceeds the maximum magnitude of %.0f", MaxAbsRate),
		}
	}

	var result domain.PresentValueResult
	key := cacheKey("pv", input)
	if s.lookup(ctx, key, &result) {
		return result, nil
	}

	value, err := finmath.PresentValue(input.Rate, input.CashFlows)
	if err != nil {
		return domain.PresentValueResult{}, err
	}

	result = domain.PresentValueResult{
		Value:   value,
		Rounded: roundTo2Decimals(value),
	}

	s.store(ctx, key, result)
	s.record("present_value", value)

	return result, nil
}

// FutureValue compounds the principal in the input forward, under the
// periodic convention unless continuous compounding is requested.
func (s *CalculatorService) FutureValue(
	ctx context.Context,
	input domain.FutureValueInput,
) (domain.FutureValueResult, error) {

	if math.Abs(input.Principal) > MaxAbsPrincipal {
		return domain.FutureValueResult{}, &finmath.InvalidArgumentError{
			Op: "future value", Reason: fmt.Sprintf("principal exceeds the maximum magnitude of %.0f", MaxAbsPrincipal),
		}
	}
	if math.Abs(input.Rate) > MaxAbsRate {
		return domain.FutureValueResult{}, &finmath.InvalidArgumentError{
			Op: "future value", Reason: fmt.Sprintf("rate exceeds the maximum magnitude of %.0f", MaxAbsRate),
		}
	}
	if math.Abs(input.Periods) > MaxAbsPeriods {
		return domain.FutureValueResult{}, &finmath.InvalidArgumentError{
			Op: "future value", Reason: fmt.Sprintf("period count exceeds the maximum magnitude of %.0f", MaxAbsPeriods),
		}
	}

	var result domain.FutureValueResult
	key := cacheKey("fv", input)
	if s.lookup(ctx, key, &result) {
		return result, nil
	}

	var value float64
	var err error
	switch input.Compounding {
	case domain.CompoundingContinuous:
		value, err = finmath.FutureValueContinuous(input.Principal, input.Rate, input.Periods)
	default:
		value, err = finmath.FutureValue(input.Principal, input.Rate, input.Periods)
	}
	if err != nil {
		return domain.FutureValueResult{}, err
	}

	result = domain.FutureValueResult{
		Value:   value,
		Rounded: roundTo2Decimals(value),
		Gain:    roundTo2Decimals(value - input.Principal),
	}
	if input.Principal != 0 {
		result.GrowthMultiple = roundTo2Decimals(value / input.Principal)
	}

	s.store(ctx, key, result)
	s.record("future_value", value)

	return result, nil
}

// EffectiveRate converts the nominal annual rate in the input to the
// effective annual rate under its compounding frequency.
func (s *CalculatorService) EffectiveRate(
	ctx context.Context,
	input domain.EffectiveRateInput,
) (domain.EffectiveRateResult, error) {

	if input.PeriodsPerYear > MaxPeriodsPerYear {
		return domain.EffectiveRateResult{}, &finmath.InvalidArgumentError{
			Op: "effective rate", Reason: fmt.Sprintf("frequency exceeds the maximum of %.0f periods per year", MaxPeriodsPerYear),
		}
	}
	if math.Abs(input.NominalRate) > MaxAbsRate {
		return domain.EffectiveRateResult{}, &finmath.InvalidArgumentError{
			Op: "effective rate", Reason: fmt.Sprintf("rate exceeds the maximum magnitude of %.0f", MaxAbsRate),
		}
	}

	var result domain.EffectiveRateResult
	key := cacheKey("ear", input)
	if s.lookup(ctx, key, &result) {
		return result, nil
	}

	value, err := finmath.EffectiveRate(input.NominalRate, input.PeriodsPerYear)
	if err != nil {
		return domain.EffectiveRateResult{}, err
	}

	result = domain.EffectiveRateResult{
		Value:   value,
		Rounded: roundTo6Decimals(value),
		Spread:  roundTo6Decimals(value - input.NominalRate),
	}

	s.store(ctx, key, result)
	s.record("effective_rate", value)

	return result, nil
}

// cacheKey derives a stable key from the operation and its input.
func cacheKey(op string, input any) string {
	b, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("fincalc:%s:%x", op, sha256.Sum256(b))
}

// lookup returns true and fills out when the key is cached.
func (s *CalculatorService) lookup(ctx context.Context, key string, out any) bool {
	if s.cache == nil || key == "" {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		zap.S().Named("calculator").Warnf("discarding corrupt cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (s *CalculatorService) store(ctx context.Context, key string, result any) {
	if s.cache == nil || key == "" {
		return
	}
	b, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(b)); err != nil {
		zap.S().Named("calculator").Warnf("failed to cache result: %v", err)
	}
}

// record saves the calculation trace; a failing save is logged and
// never fails the request.
func (s *CalculatorService) record(operation string, value float64) {
	if s.repo == nil {
		return
	}
	rec := domain.CalculationRecord{
		Operation: operation,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(rec); err != nil {
		zap.S().Named("calculator").Warnf("failed to save %s record: %v", operation, err)
	}
}
