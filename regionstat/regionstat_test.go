package regionstat_test

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/bio-regionstat/encoding/track"
	"github.com/grailbio/bio-regionstat/interval"
	"github.com/grailbio/bio-regionstat/regionstat"
	"github.com/grailbio/bio-regionstat/stats"
	"github.com/grailbio/testutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		f1, f2       track.Format
		mode         regionstat.Mode
		segmentFirst bool
		err          error
	}{
		{track.Function, track.Function, regionstat.Correlation, false, nil},
		{track.Segment, track.Segment, regionstat.Overlap, false, nil},
		{track.Segment, track.Function, regionstat.CoverageMean, true, nil},
		{track.Function, track.Segment, regionstat.CoverageMean, false, nil},
		{track.Unknown, track.Segment, 0, false, regionstat.ErrUnsupportedFormat},
		{track.Function, track.Unknown, 0, false, regionstat.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%v", tt.f1, tt.f2), func(t *testing.T) {
			mode, segmentFirst, err := regionstat.SelectMode(tt.f1, tt.f2)
			if tt.err != nil {
				assert.Equal(t, tt.err, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.segmentFirst, segmentFirst)
		})
	}
}

func TestDispatch(t *testing.T) {
	seg1 := regionstat.SegmentInput([]interval.Interval{{Start: 0, End: 3}, {Start: 2, End: 5}})
	seg2 := regionstat.SegmentInput([]interval.Interval{{Start: 4, End: 6}})
	fn := regionstat.FunctionInput(stats.Series{10, 20, 30, 40, 50})

	r, err := regionstat.Dispatch(seg1, seg2)
	require.NoError(t, err)
	assert.Equal(t, regionstat.Overlap, r.Mode)
	assert.Equal(t, int64(1), r.Count)
	assert.Equal(t, "1", r.String())

	r, err = regionstat.Dispatch(seg2, seg1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Count)

	r, err = regionstat.Dispatch(
		regionstat.FunctionInput(stats.Series{1, 2, 3}),
		regionstat.FunctionInput(stats.Series{3, 2, 1}))
	require.NoError(t, err)
	assert.Equal(t, regionstat.Correlation, r.Mode)
	assert.InDelta(t, -1.0, r.Value, 1e-12)

	// Both operand orders must give the same mean.
	segCov := regionstat.SegmentInput([]interval.Interval{{Start: 2, End: 4}, {Start: 10, End: 11}})
	r1, err := regionstat.Dispatch(segCov, fn)
	require.NoError(t, err)
	r2, err := regionstat.Dispatch(fn, segCov)
	require.NoError(t, err)
	assert.Equal(t, regionstat.CoverageMean, r1.Mode)
	assert.Equal(t, 35.0, r1.Value)
	assert.Equal(t, r1, r2)
	assert.Equal(t, int64(2), r1.Coverage.NCovered)
	assert.Equal(t, int64(1), r1.Coverage.NExcluded)
	assert.Equal(t, "35", r1.String())
}

func TestDispatchErrors(t *testing.T) {
	tests := []struct {
		in1, in2 regionstat.Input
		err      error
	}{
		{
			regionstat.SegmentInput([]interval.Interval{{Start: 5, End: 4}}),
			regionstat.SegmentInput(nil),
			interval.ErrInvalidRange,
		},
		{
			regionstat.FunctionInput(stats.Series{1}),
			regionstat.SegmentInput([]interval.Interval{{Start: 3, End: 2}}),
			interval.ErrInvalidRange,
		},
		{
			regionstat.FunctionInput(stats.Series{1, 2}),
			regionstat.FunctionInput(stats.Series{1, 2, 3}),
			stats.ErrLengthMismatch,
		},
		{
			regionstat.FunctionInput(stats.Series{1, 1, 1}),
			regionstat.FunctionInput(stats.Series{1, 2, 3}),
			stats.ErrZeroVariance,
		},
		{
			regionstat.SegmentInput([]interval.Interval{{Start: 5, End: 9}}),
			regionstat.FunctionInput(stats.Series{1, 2, 3}),
			stats.ErrEmptyCoverage,
		},
		{
			regionstat.FunctionInput(stats.Series{1, 2, 3}),
			regionstat.SegmentInput(nil),
			stats.ErrEmptyCoverage,
		},
		{
			regionstat.Input{},
			regionstat.FunctionInput(stats.Series{1}),
			regionstat.ErrUnsupportedFormat,
		},
	}
	for idx, tt := range tests {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			_, err := regionstat.Dispatch(tt.in1, tt.in2)
			require.Error(t, err)
			assert.Equal(t, tt.err, errors.Cause(err), "%v", err)
		})
	}
}

func writeTrack(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0600))
	return path
}

func TestRun(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	var (
		a = writeTrack(t, tempDir, "a.s", "0 3\n2 5\n")
		b = writeTrack(t, tempDir, "b.s", "4\t6\n")
		x = writeTrack(t, tempDir, "x.f", "1\n2\n3\n")
		y = writeTrack(t, tempDir, "y.f", "1\n2\n3\n")
		z = writeTrack(t, tempDir, "z.f", "10\n20\n30\n40\n50\n")
		c = writeTrack(t, tempDir, "c.txt", "1\n")
	)
	ctx := context.Background()
	tests := []struct {
		path1, path2 string
		want         string
	}{
		{x, y, "1"},
		{a, b, "1"},
		{a, z, "30"},
		{z, a, "30"},
	}
	for _, tt := range tests {
		r, err := regionstat.Run(ctx, tt.path1, tt.path2)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.String())
	}

	_, err := regionstat.Run(ctx, a, c)
	assert.Equal(t, regionstat.ErrUnsupportedFormat, errors.Cause(err))
	_, err = regionstat.Run(ctx, a, filepath.Join(tempDir, "missing.f"))
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	r := regionstat.Result{
		Mode:     regionstat.CoverageMean,
		Value:    2.5,
		Coverage: stats.Coverage{NCovered: 2, NExcluded: 3, Sum: 5},
	}
	require.NoError(t, regionstat.WriteReport(&buf, "a.s", "b.f", r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, 2, len(lines))
	assert.Equal(t, "FILE1\tFILE2\tMODE\tVALUE\tN_COVERED\tN_EXCLUDED", lines[0])
	assert.Equal(t, "a.s\tb.f\tcoverage-mean\t2.5\t2\t3", lines[1])
}
