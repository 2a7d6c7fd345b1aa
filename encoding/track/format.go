package track

import (
	"strings"
)

// Format is the declared type of a track file.
type Format int

const (
	// Unknown is returned for paths without a recognized suffix.
	Unknown Format = iota
	// Segment files list one half-open [start, end) interval per line.
	Segment
	// Function files list one value per line; the line number is the
	// position.
	Function
)

const (
	// SegmentSuffix marks SEGMENT files.
	SegmentSuffix = ".s"
	// FunctionSuffix marks FUNCTION files.
	FunctionSuffix = ".f"
	gzipSuffix     = ".gz"
)

// String returns "SEGMENT", "FUNCTION" or "UNKNOWN".
func (f Format) String() string {
	switch f {
	case Segment:
		return "SEGMENT"
	case Function:
		return "FUNCTION"
	default:
		return "UNKNOWN"
	}
}

// ParseFormat converts a format name, case-insensitively, to a Format.  Both
// the full name and the file suffix letter are accepted.
func ParseFormat(name string) Format {
	switch strings.ToLower(name) {
	case "segment", "s":
		return Segment
	case "function", "f":
		return Function
	default:
		return Unknown
	}
}

// DetermineFormat guesses the format of a track from its path.  A trailing
// ".gz" is ignored, so "x.s.gz" is a gzip-compressed SEGMENT file.
func DetermineFormat(path string) Format {
	path = strings.TrimSuffix(path, gzipSuffix)
	switch {
	case strings.HasSuffix(path, SegmentSuffix):
		return Segment
	case strings.HasSuffix(path, FunctionSuffix):
		return Function
	default:
		return Unknown
	}
}
