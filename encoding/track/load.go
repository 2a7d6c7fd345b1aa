package track

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-regionstat/interval"
	"github.com/grailbio/bio-regionstat/stats"
	"github.com/klauspost/compress/gzip"
)

// withReader opens path, transparently decompressing gzip input, and passes
// the contents to fn.
func withReader(ctx context.Context, path string, fn func(io.Reader) error) (err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return errors.E(err, "track: open", path)
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return errors.E(err, "track: gunzip", path)
		}
		defer gz.Close()
		reader = gz
	}
	return fn(reader)
}

// LoadSegment reads the SEGMENT track at path.
func LoadSegment(ctx context.Context, path string) (intervals []interval.Interval, err error) {
	err = withReader(ctx, path, func(r io.Reader) (rerr error) {
		intervals, rerr = ReadSegment(r)
		return
	})
	if err != nil {
		return nil, errors.E(err, path)
	}
	log.Printf("%s: %d interval(s) loaded", path, len(intervals))
	return intervals, nil
}

// LoadFunction reads the FUNCTION track at path.
func LoadFunction(ctx context.Context, path string) (series stats.Series, err error) {
	err = withReader(ctx, path, func(r io.Reader) (rerr error) {
		series, rerr = ReadFunction(r)
		return
	})
	if err != nil {
		return nil, errors.E(err, path)
	}
	log.Printf("%s: %d value(s) loaded", path, len(series))
	return series, nil
}
