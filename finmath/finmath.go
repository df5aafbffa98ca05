// Package finmath implements closed-form financial arithmetic: present
// value of a cash-flow series, future value under compound growth, and
// nominal/effective interest rate conversion.
//
// All functions are pure and deterministic. Results are returned
// unrounded; callers round for display. A result beyond the range of
// a float64 is reported as a domain error, never as ±Inf.
package finmath

import "math"

// PresentValue discounts a series of cash flows to time zero:
//
//	PV = Σ_{t=1..n} cashFlows[t-1] / (1+rate)^t
//
// The first element of cashFlows occurs one period from the valuation
// date. An empty series has present value 0. Rates at or below -1 are
// rejected: the discount factor is undefined there.
// Excel equivalent: NPV.
func PresentValue(rate float64, cashFlows []float64) (float64, error) {
	const op = "present value"

	if !isFinite(rate) {
		return 0, invalidArgErr(op, "rate must be a finite number")
	}
	if rate <= -1 {
		return 0, domainErr(op, "rate must be > -1")
	}

	base := 1 + rate
	pv := 0.0
	for i, cf := range cashFlows {
		if !isFinite(cf) {
			return 0, invalidArgErr(op, "cash flows must be finite numbers")
		}
		pv += cf / math.Pow(base, float64(i+1))
	}
	if !isFinite(pv) {
		return 0, domainErr(op, "result exceeds representable range")
	}
	return pv, nil
}

// FutureValue compounds a principal forward over a number of periods:
//
//	FV = principal × (1+rate)^periods
//
// periods may be fractional or negative; a negative count discounts.
// Fractional periods require 1+rate ≥ 0 (a negative base raised to a
// fractional power has no real result), while integer periods accept
// any rate. Excel equivalent: FV with zero payment.
func FutureValue(principal, rate, periods float64) (float64, error) {
	const op = "future value"

	if !isFinite(principal) || !isFinite(rate) || !isFinite(periods) {
		return 0, invalidArgErr(op, "inputs must be finite numbers")
	}

	base := 1 + rate
	if base < 0 && !isInteger(periods) {
		return 0, domainErr(op, "rate below -1 requires an integer period count")
	}
	if base == 0 && periods < 0 {
		return 0, domainErr(op, "rate of -1 cannot be discounted")
	}

	fv := principal * math.Pow(base, periods)
	if !isFinite(fv) {
		return 0, domainErr(op, "result exceeds representable range")
	}
	return fv, nil
}

// FutureValueContinuous compounds a principal under continuous
// compounding: FV = principal × e^(rate × periods).
func FutureValueContinuous(principal, rate, periods float64) (float64, error) {
	const op = "future value"

	if !isFinite(principal) || !isFinite(rate) || !isFinite(periods) {
		return 0, invalidArgErr(op, "inputs must be finite numbers")
	}
	fv := principal * math.Exp(rate*periods)
	if !isFinite(fv) {
		return 0, domainErr(op, "result exceeds representable range")
	}
	return fv, nil
}

// EffectiveRate converts a nominal annual rate under periodsPerYear
// compounding periods to the effective annual rate:
//
//	r_eff = (1 + nominalRate/m)^m − 1
//
// A frequency of 1 returns the nominal rate exactly, avoiding floating
// point drift in the identity case. Excel equivalent: EFFECT.
func EffectiveRate(nominalRate, periodsPerYear float64) (float64, error) {
	const op = "effective rate"

	if !isFinite(nominalRate) || !isFinite(periodsPerYear) {
		return 0, invalidArgErr(op, "inputs must be finite numbers")
	}
	if periodsPerYear <= 0 {
		return 0, domainErr(op, "periods per year must be > 0")
	}
	if periodsPerYear == 1 {
		return nominalRate, nil
	}

	base := 1 + nominalRate/periodsPerYear
	if base < 0 && !isInteger(periodsPerYear) {
		return 0, domainErr(op, "nominal rate below -m requires an integer frequency")
	}
	eff := math.Pow(base, periodsPerYear) - 1
	if !isFinite(eff) {
		return 0, domainErr(op, "result exceeds representable range")
	}
	return eff, nil
}

// NominalRate is the inverse of EffectiveRate:
//
//	r_nom = m × ((1 + effectiveRate)^(1/m) − 1)
//
// Excel equivalent: NOMINAL.
func NominalRate(effectiveRate, periodsPerYear float64) (float64, error) {
	const op = "nominal rate"

	if !isFinite(effectiveRate) || !isFinite(periodsPerYear) {
		return 0, invalidArgErr(op, "inputs must be finite numbers")
	}
	if periodsPerYear <= 0 {
		return 0, domainErr(op, "periods per year must be > 0")
	}
	if effectiveRate < -1 {
		return 0, domainErr(op, "effective rate must be >= -1")
	}
	if periodsPerYear == 1 {
		return effectiveRate, nil
	}

	nom := periodsPerYear * (math.Pow(1+effectiveRate, 1/periodsPerYear) - 1)
	if !isFinite(nom) {
		return 0, domainErr(op, "result exceeds representable range")
	}
	return nom, nil
}

// ContinuousEffectiveRate is the effective annual rate of a nominal
// rate compounded continuously: e^r − 1.
func ContinuousEffectiveRate(nominalRate float64) float64 {
	return math.Exp(nominalRate) - 1
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func isInteger(x float64) bool {
	return x == math.Trunc(x)
}
