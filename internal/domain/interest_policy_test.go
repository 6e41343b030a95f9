package domain

import (
	"errors"
	"math"
	"testing"

	"bpsgateway/internal/money"
	"bpsgateway/internal/percent"
)

func TestInterestPolicy_FloorRules(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name    string
		spent   money.Amount
		attempt uint64
		want    money.Amount
	}{
		{"attempt=0 amount=10 => 100% => interest=10", 10, 0, 10},
		{"attempt=10 amount=10 => 110% => interest=11", 10, 10, 11},
		{"attempt=10 amount=1 => 110% => floor(1.1)=1", 1, 10, 1},
		{"attempt=1 amount=10 => 101% => floor(10.1)=10", 10, 1, 10},
		{"attempt=100 amount=10 => 200% => interest=20", 10, 100, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.InterestDue(tc.spent, tc.attempt)
			if err != nil {
				t.Fatalf("InterestDue: %v", err)
			}
			if got != tc.want {
				t.Fatalf("interest = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestInterestPolicy_Overflow(t *testing.T) {
	p := DefaultPolicy()

	t.Run("rate overflows", func(t *testing.T) {
		_, err := p.RateBPS(math.MaxUint64)
		if !errors.Is(err, percent.ErrArithmeticOverflow) {
			t.Fatalf("err = %v, want ErrArithmeticOverflow", err)
		}
	})

	t.Run("spent times rate overflows", func(t *testing.T) {
		_, err := p.InterestDue(math.MaxUint64, 0)
		if !percent.IsOverflow(err) {
			t.Fatalf("err = %v, want ErrArithmeticOverflow", err)
		}
	})
}

func TestInterestPolicy_Accrue(t *testing.T) {
	p := InterestPolicy{BaseRateBPS: 500}

	got, err := p.Accrue(100, 2)
	if err != nil {
		t.Fatalf("Accrue: %v", err)
	}
	if got != 110 {
		t.Fatalf("accrued = %d, want %d", got, 110)
	}

	got, err = p.Accrue(100, 0)
	if err != nil || got != 100 {
		t.Fatalf("accrued = %d, %v; want 100", got, err)
	}
}

func TestInterestPolicy_Quote(t *testing.T) {
	p := DefaultPolicy()

	rate, due, err := p.Quote(10, 10)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if rate != 11000 || due != 11 {
		t.Fatalf("quote = (%d, %d), want (11000, 11)", rate, due)
	}

	t.Run("step overflow", func(t *testing.T) {
		_, _, err := p.Quote(10, math.MaxUint64)
		if !percent.IsOverflow(err) {
			t.Fatalf("err = %v, want ErrArithmeticOverflow", err)
		}
	})

	t.Run("base plus step overflow", func(t *testing.T) {
		q := InterestPolicy{BaseRateBPS: math.MaxUint64, StepBPSPerAttempt: 1}
		if _, err := q.RateBPS(1); !percent.IsOverflow(err) {
			t.Fatalf("err = %v, want ErrArithmeticOverflow", err)
		}
		if rate, err := q.RateBPS(0); err != nil || rate != math.MaxUint64 {
			t.Fatalf("rate = %d, %v; want MaxUint64", rate, err)
		}
	})
}
