package money

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative fixed-point quantity. The decimal scale
// (cents, 10^6, 10^18...) is owned by the caller.
type Amount uint64

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// BasisPoints counts 1/10000ths. 10,000 bps = 100%.
type BasisPoints uint64

const (
	BPSDenominator BasisPoints = 10000
)

func (b BasisPoints) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

// Percent renders bps as a percentage with two decimals, e.g. 250 => "2.50%".
func (b BasisPoints) Percent() string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(b)), -2)
	return d.StringFixed(2) + "%"
}

// Any exponent above this is at least 1e19 percent, far past uint64 bps.
const maxPercentExponent = 18

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidPercent = errors.New("invalid percentage")
)

// ParseAmount parses a base-10 unsigned integer. Signs and blanks are rejected.
func ParseAmount(s string) (Amount, error) {
	v, err := parseUint(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount(v), nil
}

// ParseBasisPoints accepts either raw basis points ("250") or a percent
// string ("2.5%").
func ParseBasisPoints(s string) (BasisPoints, error) {
	if strings.HasSuffix(strings.TrimSpace(s), "%") {
		return ParsePercent(s)
	}
	v, err := parseUint(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}
	return BasisPoints(v), nil
}

// ParsePercent converts "2.5%" (or "2.5") to 250 bps. Values finer than one
// basis point are rejected rather than rounded.
func ParsePercent(s string) (BasisPoints, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(s), "%")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidPercent, s)
	}
	if d.IsZero() {
		return 0, nil
	}
	// Rescaling materializes 10^|exp|, so bound the exponent first. The
	// coefficient has at most len(raw) digits: below this window the value
	// is finer than a basis point, above it no uint64 can hold it.
	if exp := d.Exponent(); exp > maxPercentExponent {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidPercent, s)
	} else if int(exp) < -2-len(raw) {
		return 0, fmt.Errorf("%w: %q is finer than one basis point", ErrInvalidPercent, s)
	}

	bps := d.Shift(2)
	if !bps.Equal(bps.Truncate(0)) {
		return 0, fmt.Errorf("%w: %q is finer than one basis point", ErrInvalidPercent, s)
	}
	if !bps.BigInt().IsUint64() {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidPercent, s)
	}
	return BasisPoints(bps.BigInt().Uint64()), nil
}

func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 10, 64)
}
