package stats

import (
	"github.com/grailbio/bio-regionstat/interval"
	"github.com/pkg/errors"
)

// Coverage summarizes a series over the positions of a PositionSet.
type Coverage struct {
	// NCovered is the number of covered positions that are valid series
	// indices, i.e. the number of values averaged.
	NCovered int64
	// NExcluded is the number of covered positions outside [0, len(series)).
	// They are dropped without error.
	NExcluded int64
	// Sum is the sum of the series values at the NCovered positions.
	Sum float64
}

// Mean returns Sum / NCovered, or ErrEmptyCoverage if nothing was covered.
func (c Coverage) Mean() (float64, error) {
	if c.NCovered == 0 {
		return 0, errors.Wrapf(ErrEmptyCoverage, "%d covered position(s), all outside the series", c.NExcluded)
	}
	return c.Sum / float64(c.NCovered), nil
}

// SummarizeCoverage accumulates series[p] for every p in positions with
// 0 <= p < len(series).  Positions outside that range are counted in
// NExcluded and otherwise ignored.
func SummarizeCoverage(positions interval.PositionSet, series Series) Coverage {
	var c Coverage
	us := interval.NewUnionScanner(positions.Endpoints())
	us.Skip(0)
	var start, end interval.PosType
	for us.Scan(&start, &end, series.Len()) {
		for _, v := range series[start:end] {
			c.Sum += v
		}
		c.NCovered += int64(end - start)
	}
	c.NExcluded = positions.Cardinality() - c.NCovered
	return c
}

// MeanCovered returns the arithmetic mean of series[p] over every p in
// positions that is a valid index into series.  Out-of-range positions are
// silently excluded.  ErrEmptyCoverage is returned if no position remains.
func MeanCovered(positions interval.PositionSet, series Series) (float64, error) {
	return SummarizeCoverage(positions, series).Mean()
}
