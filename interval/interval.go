// Package interval provides the closed, non-degenerate bound [t0,t1] used
// for every dimension of a grid: clamping (legalization), inclusive
// membership and normalization into [0,1].
//
// Interval is an immutable value backed by github.com/golang/geo/r1.
package interval

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r1"
)

var (
	// ErrInvalidRange indicates t1 <= t0 (or a NaN bound) at construction.
	ErrInvalidRange = errors.New("interval: t1 must be strictly greater than t0")

	// ErrOutOfRange indicates that a value outside [t0,t1] was normalized.
	ErrOutOfRange = errors.New("interval: value outside interval")
)

// Interval is an ordered bound [t0,t1] with t0 < t1.
// The zero value is not a valid interval; use New or Unit.
type Interval struct {
	r r1.Interval
}

// New returns the interval [t0,t1].
// Returns ErrInvalidRange unless t1 > t0; NaN bounds fail the same test.
func New(t0, t1 float64) (Interval, error) {
	if !(t1 > t0) {
		return Interval{}, fmt.Errorf("New(%g, %g): %w", t0, t1, ErrInvalidRange)
	}

	return Interval{r: r1.Interval{Lo: t0, Hi: t1}}, nil
}

// Unit returns [0,1].
func Unit() Interval {
	return Interval{r: r1.Interval{Lo: 0, Hi: 1}}
}

// T0 returns the lower bound.
func (iv Interval) T0() float64 { return iv.r.Lo }

// T1 returns the upper bound.
func (iv Interval) T1() float64 { return iv.r.Hi }

// Length returns t1 - t0, always > 0 for a constructed interval.
func (iv Interval) Length() float64 { return iv.r.Length() }

// Legalize clamps t into [t0,t1].
func (iv Interval) Legalize(t float64) float64 {
	return iv.r.ClampPoint(t)
}

// IsLegal reports whether t lies in [t0,t1], bounds included.
func (iv Interval) IsLegal(t float64) bool {
	return iv.r.Contains(t)
}

// Normalize maps t from [t0,t1] onto [0,1] as (t-t0)/length.
//
// Unlike Legalize it does not clamp: a value outside the interval is
// reported with ErrOutOfRange.
func (iv Interval) Normalize(t float64) (float64, error) {
	if !iv.IsLegal(t) {
		return 0, fmt.Errorf("Normalize(%g) on %s: %w", t, iv, ErrOutOfRange)
	}

	return (t - iv.r.Lo) / iv.Length(), nil
}

// Equal reports whether both bounds are identical.
func (iv Interval) Equal(other Interval) bool {
	return iv.r.Lo == other.r.Lo && iv.r.Hi == other.r.Hi
}

// String renders the interval as "[t0,t1]" with three decimals.
func (iv Interval) String() string {
	return fmt.Sprintf("[%.3f,%.3f]", iv.r.Lo, iv.r.Hi)
}
