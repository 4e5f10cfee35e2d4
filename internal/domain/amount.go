package domain

import (
	"math"
	"math/bits"
	"strconv"
)

// Amount is a quantity of base asset or receipt-token units.
type Amount uint64

// Bips is a percentage expressed in basis points.
type Bips uint16

// BIPS is the basis point denominator (100% = 10000).
const BIPS Bips = 10000

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// ParseAmount parses a base-10 amount.
func ParseAmount(raw string) (Amount, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return Amount(value), nil
}

// ProRata returns floor(amount * numerator / denominator) using a 128-bit
// intermediate product. Rounding is always down.
func ProRata(amount, numerator, denominator Amount) (Amount, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}

	hi, lo := bits.Mul64(uint64(amount), uint64(numerator))
	// bits.Div64 panics when the quotient does not fit in 64 bits.
	if hi >= uint64(denominator) {
		return 0, ErrArithmeticOverflow
	}

	quo, _ := bits.Div64(hi, lo, uint64(denominator))
	return Amount(quo), nil
}

// AddAmounts sums amounts, failing instead of wrapping.
func AddAmounts(values ...Amount) (Amount, error) {
	var total Amount
	for _, value := range values {
		sum, carry := bits.Add64(uint64(total), uint64(value), 0)
		if carry != 0 {
			return 0, ErrArithmeticOverflow
		}
		total = Amount(sum)
	}
	return total, nil
}

// SubAmount returns a - b, failing instead of wrapping below zero.
func SubAmount(a, b Amount) (Amount, error) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, ErrArithmeticOverflow
	}
	return Amount(diff), nil
}

func mulAmount(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrArithmeticOverflow
	}
	return lo, nil
}

// signedDiff returns a - b. Only the gap has to fit an int64; a and b may
// use the full Amount range.
func signedDiff(a, b Amount) (int64, error) {
	if a >= b {
		if a-b > math.MaxInt64 {
			return 0, ErrArithmeticOverflow
		}
		return int64(a - b), nil
	}
	if b-a > math.MaxInt64 {
		return 0, ErrArithmeticOverflow
	}
	return -int64(b - a), nil
}
