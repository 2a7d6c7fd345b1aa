// Package track reads the two text formats consumed by bio-regionstat.
//
// A SEGMENT file has one interval per line: two whitespace-separated
// integers, start and end, describing the half-open range [start, end).
//
// A FUNCTION file has one number per line.  Row i (counting from zero,
// ignoring blank lines) holds the value at position i.  A trailing comma is
// tolerated, so single-column CSV exports load unchanged.
//
// In both formats blank lines and lines starting with '#' are skipped.
package track

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bio-regionstat/interval"
	"github.com/grailbio/bio-regionstat/stats"
)

// maxLineLen bounds the length of a single line.  bufio.Scanner does not
// auto-resize past its buffer size.
const maxLineLen = 1 << 20

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved, or len(tokens)+1 if curLine has more
// tokens than that.  Any (group of) characters <= ' ' is treated as a
// delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := 0; ; tokenIdx++ {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		if tokenIdx == len(tokens) {
			return tokenIdx + 1
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	return scanner
}

func isComment(line []byte) bool {
	trimmed := bytes.TrimLeft(line, " \t")
	return len(trimmed) > 0 && trimmed[0] == '#'
}

// ReadSegment reads a SEGMENT track.  Intervals are returned in file order;
// no sorting, merging or range validation is performed here.
func ReadSegment(r io.Reader) ([]interval.Interval, error) {
	scanner := newScanner(r)
	var (
		intervals []interval.Interval
		tokens    [2][]byte
		lineIdx   int
	)
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if isComment(curLine) {
			continue
		}
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 {
			continue
		}
		if nToken != 2 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("track.ReadSegment: line %d has %d token(s), want start and end", lineIdx, nToken))
		}
		start, err := strconv.ParseInt(gunsafe.BytesToString(tokens[0]), 10, 64)
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("track.ReadSegment: bad start coordinate on line %d", lineIdx))
		}
		end, err := strconv.ParseInt(gunsafe.BytesToString(tokens[1]), 10, 64)
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("track.ReadSegment: bad end coordinate on line %d", lineIdx))
		}
		intervals = append(intervals, interval.Interval{Start: interval.PosType(start), End: interval.PosType(end)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "track.ReadSegment")
	}
	return intervals, nil
}

// ReadFunction reads a FUNCTION track.
func ReadFunction(r io.Reader) (stats.Series, error) {
	scanner := newScanner(r)
	var (
		series  stats.Series
		lineIdx int
	)
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if isComment(curLine) {
			continue
		}
		field := bytes.TrimSpace(curLine)
		if len(field) == 0 {
			continue
		}
		if comma := bytes.IndexByte(field, ','); comma >= 0 {
			if len(bytes.TrimSpace(field[comma+1:])) != 0 {
				return nil, errors.E(errors.Invalid, fmt.Sprintf("track.ReadFunction: line %d has more than one value", lineIdx))
			}
			field = bytes.TrimSpace(field[:comma])
		}
		v, err := strconv.ParseFloat(gunsafe.BytesToString(field), 64)
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("track.ReadFunction: bad value on line %d", lineIdx))
		}
		series = append(series, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "track.ReadFunction")
	}
	return series, nil
}
