package game

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLine  = errors.New("malformed game record")
	ErrMalformedID    = errors.New("malformed game id")
	ErrMalformedCount = errors.New("malformed cube count")
	ErrUnknownColor   = errors.New("unknown cube color")
)

// Segment names the part of a record a ParseError was raised for.
type Segment int

const (
	SegmentLine Segment = iota
	SegmentID
	SegmentCount
	SegmentColor
)

func (s Segment) String() string {
	switch s {
	case SegmentLine:
		return "line"
	case SegmentID:
		return "id"
	case SegmentCount:
		return "count"
	case SegmentColor:
		return "color"
	default:
		return fmt.Sprintf("Segment(%d)", int(s))
	}
}

// ParseError describes why a record could not be parsed. Line is 1-based
// and zero when the record was parsed on its own.
type ParseError struct {
	Line    int
	Segment Segment
	Text    string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s segment %q: %v", e.Line, e.Segment, e.Text, e.Err)
	}
	return fmt.Sprintf("%s segment %q: %v", e.Segment, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
