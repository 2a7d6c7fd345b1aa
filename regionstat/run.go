package regionstat

import (
	"context"
	"io"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bio-regionstat/encoding/track"
	"github.com/pkg/errors"
)

// Load reads the track at path, using the path suffix to pick the format.
func Load(ctx context.Context, path string) (Input, error) {
	switch format := track.DetermineFormat(path); format {
	case track.Segment:
		intervals, err := track.LoadSegment(ctx, path)
		if err != nil {
			return Input{}, err
		}
		return SegmentInput(intervals), nil
	case track.Function:
		series, err := track.LoadFunction(ctx, path)
		if err != nil {
			return Input{}, err
		}
		return FunctionInput(series), nil
	default:
		return Input{}, errors.Wrapf(ErrUnsupportedFormat,
			"%s: want a %s (SEGMENT) or %s (FUNCTION) suffix", path, track.SegmentSuffix, track.FunctionSuffix)
	}
}

// Run loads both tracks and dispatches on their formats.  Both inputs are
// loaded fully before anything is computed.
func Run(ctx context.Context, path1, path2 string) (Result, error) {
	// Reject unusable pairs before reading anything.
	if _, _, err := SelectMode(track.DetermineFormat(path1), track.DetermineFormat(path2)); err != nil {
		return Result{}, err
	}
	in1, err := Load(ctx, path1)
	if err != nil {
		return Result{}, err
	}
	in2, err := Load(ctx, path2)
	if err != nil {
		return Result{}, err
	}
	return Dispatch(in1, in2)
}

// WriteReport writes a one-row TSV describing result, with a header line.
func WriteReport(w io.Writer, path1, path2 string, result Result) error {
	tw := tsv.NewWriter(w)
	for _, col := range []string{"FILE1", "FILE2", "MODE", "VALUE", "N_COVERED", "N_EXCLUDED"} {
		tw.WriteString(col)
	}
	if err := tw.EndLine(); err != nil {
		return err
	}
	tw.WriteString(path1)
	tw.WriteString(path2)
	tw.WriteString(result.Mode.String())
	tw.WriteString(result.String())
	tw.WriteInt64(result.Coverage.NCovered)
	tw.WriteInt64(result.Coverage.NExcluded)
	if err := tw.EndLine(); err != nil {
		return err
	}
	return tw.Flush()
}
