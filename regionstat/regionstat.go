// Package regionstat selects and runs one of three statistics on a pair of
// track inputs, depending on their formats:
//
//   FUNCTION + FUNCTION  sample Pearson correlation of the two series
//   SEGMENT  + SEGMENT   number of positions covered by both segment tracks
//   SEGMENT  + FUNCTION  mean of the series over the positions covered by the
//                        segment track (either order)
package regionstat

import (
	"fmt"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-regionstat/encoding/track"
	"github.com/grailbio/bio-regionstat/interval"
	"github.com/grailbio/bio-regionstat/stats"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned when an input's format is neither SEGMENT
// nor FUNCTION.
var ErrUnsupportedFormat = errors.New("unsupported track format")

// Mode identifies the computation run for a pair of inputs.
type Mode int

const (
	// Correlation is selected by FUNCTION + FUNCTION.
	Correlation Mode = iota
	// Overlap is selected by SEGMENT + SEGMENT.
	Overlap
	// CoverageMean is selected by SEGMENT + FUNCTION, in either order.
	CoverageMean
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Correlation:
		return "correlation"
	case Overlap:
		return "overlap"
	case CoverageMean:
		return "coverage-mean"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SelectMode maps a pair of formats to a Mode.  segmentFirst is only
// meaningful for CoverageMean; it reports whether the first input is the
// SEGMENT one.
func SelectMode(f1, f2 track.Format) (mode Mode, segmentFirst bool, err error) {
	switch {
	case f1 == track.Function && f2 == track.Function:
		return Correlation, false, nil
	case f1 == track.Segment && f2 == track.Segment:
		return Overlap, false, nil
	case f1 == track.Segment && f2 == track.Function:
		return CoverageMean, true, nil
	case f1 == track.Function && f2 == track.Segment:
		return CoverageMean, false, nil
	}
	return 0, false, errors.Wrapf(ErrUnsupportedFormat, "format pair (%v, %v)", f1, f2)
}

// Input is one loaded track.  Intervals is set iff Format is track.Segment;
// Series is set iff Format is track.Function.
type Input struct {
	Format    track.Format
	Intervals []interval.Interval
	Series    stats.Series
}

// SegmentInput returns an Input for a SEGMENT track.
func SegmentInput(intervals []interval.Interval) Input {
	return Input{Format: track.Segment, Intervals: intervals}
}

// FunctionInput returns an Input for a FUNCTION track.
func FunctionInput(series stats.Series) Input {
	return Input{Format: track.Function, Series: series}
}

// Result is the outcome of Dispatch.  Value holds the coefficient or mean;
// Count holds the overlap size.
type Result struct {
	Mode  Mode
	Value float64
	Count int64
	// Coverage is filled in for CoverageMean.
	Coverage stats.Coverage
}

// String renders the single value printed by bio-regionstat.
func (r Result) String() string {
	if r.Mode == Overlap {
		return strconv.FormatInt(r.Count, 10)
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// Dispatch runs the computation selected by the formats of in1 and in2.  It
// is a pure function of its arguments.
func Dispatch(in1, in2 Input) (Result, error) {
	mode, segmentFirst, err := SelectMode(in1.Format, in2.Format)
	if err != nil {
		return Result{}, err
	}
	result := Result{Mode: mode}
	switch mode {
	case Correlation:
		result.Value, err = stats.Pearson(in1.Series, in2.Series)
	case Overlap:
		result.Count, err = overlap(in1.Intervals, in2.Intervals)
	case CoverageMean:
		segment, function := in1, in2
		if !segmentFirst {
			segment, function = in2, in1
		}
		result.Coverage, err = coverage(segment.Intervals, function.Series)
		if err == nil {
			result.Value, err = result.Coverage.Mean()
		}
	default:
		panic(fmt.Sprintf("regionstat: unhandled mode %v", mode))
	}
	if err != nil {
		return Result{}, errors.Wrap(err, mode.String())
	}
	return result, nil
}

func overlap(a, b []interval.Interval) (int64, error) {
	setA, err := interval.Build(a)
	if err != nil {
		return 0, errors.Wrap(err, "first segment track")
	}
	setB, err := interval.Build(b)
	if err != nil {
		return 0, errors.Wrap(err, "second segment track")
	}
	both := interval.Intersect(setA, setB)
	log.Debug.Printf("overlap: %d and %d covered position(s), %d in common",
		setA.Cardinality(), setB.Cardinality(), both.Cardinality())
	return both.Cardinality(), nil
}

func coverage(intervals []interval.Interval, series stats.Series) (stats.Coverage, error) {
	positions, err := interval.Build(intervals)
	if err != nil {
		return stats.Coverage{}, errors.Wrap(err, "segment track")
	}
	c := stats.SummarizeCoverage(positions, series)
	if c.NExcluded > 0 {
		log.Printf("coverage: %d covered position(s) outside the %d-value series were ignored",
			c.NExcluded, len(series))
	}
	return c, nil
}
