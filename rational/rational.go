package rational

import (
	"math"
	"math/bits"
)

// Precision is the fallback scaling factor used by FromFloat when a decimal
// approximation (rather than an exact numerator/denominator pair) is all
// that is available - e.g. a solver backend that only reports a double.
// Matches the SEQ_RATIONAL_PRECISION constant of the system this engine
// reproduces.
const Precision int64 = 1000

// epsilon below which FromFloat treats a value as exactly zero.
const epsilon = 1e-9

// Rational is an exact fraction with int64 numerator and denominator. The
// zero value is 0/1. Fractions are never reduced to lowest terms and the
// denominator is permitted to be negative.
type Rational struct {
	Num int64
	Den int64
}

// FromInt builds the fraction n/1.
func FromInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// FromFraction builds the fraction n/d verbatim, without reducing or
// validating the sign of d. A zero denominator is accepted silently, as in
// the reference implementation; callers that need to guard against it
// should do so before constructing.
func FromFraction(n, d int64) Rational {
	return Rational{Num: n, Den: d}
}

// FromFloat approximates v as a fraction with denominator Precision,
// rounding to the nearest thousandth. Values within epsilon of zero collapse
// to the canonical 0/1.
func FromFloat(v float64) Rational {
	if math.Abs(v) <= epsilon {
		return Rational{Num: 0, Den: 1}
	}

	return Rational{Num: int64(math.Round(v * float64(Precision))), Den: Precision}
}

// AsFloat projects the fraction onto float64 via ordinary division.
func (r Rational) AsFloat() float64 {
	return float64(r.Num) / float64(r.Den)
}

// AsInt64 truncates the fraction towards zero (integer division).
func (r Rational) AsInt64() int64 {
	return r.Num / r.Den
}

// AddInt returns r + val, expressed over the same denominator as r.
func (r Rational) AddInt(val int64) Rational {
	return Rational{Num: r.Num + val*r.Den, Den: r.Den}
}

// MulInt returns r * val, expressed over the same denominator as r.
func (r Rational) MulInt(val int64) Rational {
	return Rational{Num: r.Num * val, Den: r.Den}
}

// Less reports whether r < other by comparing their float64 projections.
// This is a deliberate fidelity choice: see the package doc comment.
func (r Rational) Less(other Rational) bool {
	return r.AsFloat() < other.AsFloat()
}

// Greater reports whether r > other by comparing their float64 projections.
func (r Rational) Greater(other Rational) bool {
	return r.AsFloat() > other.AsFloat()
}

// IsPositive reports whether the fraction's value is strictly positive,
// tolerating a negative denominator by checking the sign of Num*Den rather
// than Num alone.
func (r Rational) IsPositive() bool {
	return (r.Num > 0 && r.Den > 0) || (r.Num < 0 && r.Den < 0)
}

// IsNegative reports whether the fraction's value is strictly negative.
func (r Rational) IsNegative() bool {
	return (r.Num > 0 && r.Den < 0) || (r.Num < 0 && r.Den > 0)
}

// AddIntChecked behaves like AddInt but returns ErrArithmeticOverflow
// instead of wrapping when the int64 multiplication or addition overflows.
// Use where a caller has opted into overflow checking; the unchecked
// arithmetic operators remain the default throughout the engine.
func (r Rational) AddIntChecked(val int64) (Rational, error) {
	prod, carry := bits.Mul64(uint64(abs64(val)), uint64(abs64(r.Den)))
	if carry != 0 || prod > math.MaxInt64 {
		return Rational{}, ErrArithmeticOverflow
	}
	delta := val * r.Den
	sum := r.Num + delta
	if (delta > 0 && sum < r.Num) || (delta < 0 && sum > r.Num) {
		return Rational{}, ErrArithmeticOverflow
	}

	return Rational{Num: sum, Den: r.Den}, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
