package domain

import (
	"fmt"

	"bpsgateway/internal/money"
	"bpsgateway/internal/percent"
)

// InterestPolicy prices credit use in basis points.
type InterestPolicy struct {
	// BaseRateBPS: start at 100% => 10,000 bps
	BaseRateBPS money.BasisPoints
	// StepBPSPerAttempt: +1% per attempt => 100 bps
	StepBPSPerAttempt money.BasisPoints
}

func DefaultPolicy() InterestPolicy {
	return InterestPolicy{
		BaseRateBPS:       10000,
		StepBPSPerAttempt: 100, //1%
	}
}

// RateBPS = base + (attempt_count * step)
func (p InterestPolicy) RateBPS(attemptCount uint64) (money.BasisPoints, error) {
	step, err := percent.Mul(attemptCount, uint64(p.StepBPSPerAttempt))
	if err == nil {
		var rate uint64
		rate, err = percent.Add(uint64(p.BaseRateBPS), step)
		if err == nil {
			return money.BasisPoints(rate), nil
		}
	}
	return 0, fmt.Errorf("rate for %d attempts: %w", attemptCount, err)
}

// Quote returns the rate for attemptCount together with the interest it
// produces on spent.
func (p InterestPolicy) Quote(spent money.Amount, attemptCount uint64) (money.BasisPoints, money.Amount, error) {
	rate, err := p.RateBPS(attemptCount)
	if err != nil {
		return 0, 0, err
	}
	due, err := percent.Of(spent, rate)
	if err != nil {
		return 0, 0, err
	}
	return rate, due, nil
}

// InterestDue = floor(spent * rate_bps / 10000)
func (p InterestPolicy) InterestDue(spent money.Amount, attemptCount uint64) (money.Amount, error) {
	_, due, err := p.Quote(spent, attemptCount)
	return due, err
}

// Accrue compounds the base rate on principal once per period.
func (p InterestPolicy) Accrue(principal money.Amount, periods uint) (money.Amount, error) {
	return percent.Compound(principal, p.BaseRateBPS, periods)
}
