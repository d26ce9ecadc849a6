package models

import (
	"errors"
	"math"
)

var ErrMoneyOverflow = errors.New("money overflow")

// Money is an amount in whole currency units.
type Money int64

// Mul multiplies m by n and reports overflow instead of wrapping.
func (m Money) Mul(n int64) (Money, error) {
	if m == 0 || n == 0 {
		return 0, nil
	}

	r := int64(m) * n
	if r/n != int64(m) || (int64(m) == -1 && n == math.MinInt64) || (n == -1 && int64(m) == math.MinInt64) {
		return 0, ErrMoneyOverflow
	}

	return Money(r), nil
}

// Add sums two amounts and reports overflow instead of wrapping.
func (m Money) Add(o Money) (Money, error) {
	r := m + o
	if (o > 0 && r < m) || (o < 0 && r > m) {
		return 0, ErrMoneyOverflow
	}

	return r, nil
}
