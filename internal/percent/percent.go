// Package percent implements basis-point arithmetic on unsigned 64-bit
// fixed-point amounts.
//
// Every function is pure: no state is read or written outside the call, so
// they may be used concurrently without coordination. All division truncates
// toward zero; callers that need rounding must pre-scale their inputs.
// On error the numeric results are zero values and carry no meaning.
package percent

import (
	"fmt"
	"math/bits"

	"bpsgateway/internal/money"
)

const denom = uint64(money.BPSDenominator)

// Steps exposes the intermediate values of a single percentage calculation.
// Quotient and Result are always equal.
type Steps struct {
	Product  uint64       // value * bps, before division
	Quotient uint64       // Product / 10000
	Result   money.Amount // Quotient as an Amount
}

// Of returns floor(value * bps / 10000).
//
//	Of(1000, 500) == 50   // 5% of 1000
//	Of(99, 100)   == 0    // 1% of 99, truncated
func Of(value money.Amount, bps money.BasisPoints) (money.Amount, error) {
	r, err := of(uint64(value), uint64(bps))
	if err != nil {
		return 0, fmt.Errorf("percent.Of: %w", err)
	}
	return money.Amount(r), nil
}

// OfWithSteps is Of, additionally returning the un-divided product.
func OfWithSteps(value money.Amount, bps money.BasisPoints) (Steps, error) {
	product, err := Mul(uint64(value), uint64(bps))
	if err != nil {
		return Steps{}, fmt.Errorf("percent.OfWithSteps: %w", err)
	}
	q := product / denom
	return Steps{Product: product, Quotient: q, Result: money.Amount(q)}, nil
}

// OfWithPrecision returns floor(floor(value * bps * factor / 10000) / factor).
//
// The result is always equal to Of(value, bps): the two floors compound to the
// same truncation point. It exists so a derivation can be reproduced with a
// scaled intermediate; callers who want real sub-unit precision must keep
// value*bps*factor/10000 themselves and track the scale.
func OfWithPrecision(value money.Amount, bps money.BasisPoints, factor uint64) (money.Amount, error) {
	if factor == 0 {
		return 0, fmt.Errorf("percent.OfWithPrecision: precision factor: %w", ErrDivisionByZero)
	}
	p, err := Mul(uint64(value), uint64(bps))
	if err == nil {
		p, err = Mul(p, factor)
	}
	if err != nil {
		return 0, fmt.Errorf("percent.OfWithPrecision: %w", err)
	}
	return money.Amount(p / denom / factor), nil
}

// WhatPercentage returns floor(part * 10000 / whole), i.e. part as basis
// points of whole. part may exceed whole.
func WhatPercentage(part, whole money.Amount) (money.BasisPoints, error) {
	r, err := whatPercentage(uint64(part), uint64(whole))
	if err != nil {
		return 0, fmt.Errorf("percent.WhatPercentage: %w", err)
	}
	return money.BasisPoints(r), nil
}

// Compound applies bps growth to value iterations times, each step computed
// on the previous result: r = r + Of(r, bps). iterations == 0 returns value.
//
// The first step that overflows aborts the whole call; no partially
// compounded value is returned.
func Compound(value money.Amount, bps money.BasisPoints, iterations uint) (money.Amount, error) {
	r := uint64(value)
	for i := uint(0); i < iterations; i++ {
		inc, err := of(r, uint64(bps))
		if err != nil {
			return 0, fmt.Errorf("percent.Compound: iteration %d: %w", i+1, err)
		}
		// fixed point, the remaining iterations cannot move it
		if inc == 0 {
			break
		}
		r, err = Add(r, inc)
		if err != nil {
			return 0, fmt.Errorf("percent.Compound: iteration %d: %w", i+1, err)
		}
	}
	return money.Amount(r), nil
}

// Diff returns the magnitude of the change from value2 to value1 in basis
// points of value2, and whether it is an increase.
//
// Equal inputs report (0, true): ties resolve to "increase".
func Diff(value1, value2 money.Amount) (change money.BasisPoints, isIncrease bool, err error) {
	v1, v2 := uint64(value1), uint64(value2)

	var r uint64
	if v1 >= v2 {
		r, err = whatPercentage(v1-v2, v2)
		isIncrease = true
	} else {
		r, err = whatPercentage(v2-v1, v2)
	}
	if err != nil {
		return 0, false, fmt.Errorf("percent.Diff: %w", err)
	}
	return money.BasisPoints(r), isIncrease, nil
}

func of(value, bps uint64) (uint64, error) {
	p, err := Mul(value, bps)
	if err != nil {
		return 0, err
	}
	return p / denom, nil
}

func whatPercentage(part, whole uint64) (uint64, error) {
	if whole == 0 {
		return 0, ErrDivisionByZero
	}
	p, err := Mul(part, denom)
	if err != nil {
		return 0, err
	}
	return p / whole, nil
}

// Mul returns a*b, or ErrArithmeticOverflow when the product needs more
// than 64 bits.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrArithmeticOverflow
	}
	return lo, nil
}

// Add returns a+b, or ErrArithmeticOverflow on carry.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}
