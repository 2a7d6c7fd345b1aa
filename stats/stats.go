// Package stats computes summary statistics over FUNCTION series: the sample
// Pearson correlation of two series, and the mean of a series over the
// positions covered by an interval.PositionSet.
package stats

import (
	"math"

	"github.com/grailbio/bio-regionstat/interval"
	"github.com/pkg/errors"
)

var (
	// ErrLengthMismatch is returned when two series that must be paired have
	// different lengths.
	ErrLengthMismatch = errors.New("series length mismatch")
	// ErrZeroVariance is returned when a correlation is requested on a
	// constant series.
	ErrZeroVariance = errors.New("zero variance")
	// ErrEmptyCoverage is returned when no covered position is a valid index
	// into the series.
	ErrEmptyCoverage = errors.New("no covered position within series")
)

// Series is an ordered sequence of values.  The value in row i of a FUNCTION
// file is at position i.
type Series []float64

// Len returns the number of positions in the series.
func (s Series) Len() interval.PosType {
	return interval.PosType(len(s))
}

// Mean returns the arithmetic mean of s, or ErrEmptyCoverage if s is empty.
func Mean(s Series) (float64, error) {
	if len(s) == 0 {
		return 0, errors.Wrap(ErrEmptyCoverage, "mean of empty series")
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s)), nil
}

// Pearson returns the sample Pearson correlation coefficient of x and y:
//
//   Σ(xi-mx)(yi-my) / sqrt(Σ(xi-mx)² Σ(yi-my)²)
//
// x and y must have the same length, else ErrLengthMismatch is returned.  If
// either series has zero variance (this includes empty and single-value
// series) the coefficient is undefined and ErrZeroVariance is returned.
func Pearson(x, y Series) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.Wrapf(ErrLengthMismatch, "pearson: %d vs %d values", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, errors.Wrap(ErrZeroVariance, "pearson: empty series")
	}
	mx, _ := Mean(x)
	my, _ := Mean(y)
	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 {
		return 0, errors.Wrap(ErrZeroVariance, "pearson: first series is constant")
	}
	if varY == 0 {
		return 0, errors.Wrap(ErrZeroVariance, "pearson: second series is constant")
	}
	return cov / math.Sqrt(varX*varY), nil
}
