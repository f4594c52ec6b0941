package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one registered file.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// Unknown returns the sentinel span used when no source location exists,
// e.g. when merging an empty span list.
func Unknown() Span {
	return Span{File: UnknownFile, Start: 0, End: 0}
}

// IsUnknown reports whether the span is the sentinel returned by Unknown.
func (s Span) IsUnknown() bool {
	return s.File == UnknownFile
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	if s.IsUnknown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files
// cannot be combined; the receiver wins.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Merge collapses an ordered span list into the extent of the whole run.
// An empty list has no location, so the unknown sentinel comes back. A run
// whose first and last spans live in different files cannot be merged and
// yields the first span unchanged.
func Merge(spans []Span) Span {
	switch {
	case len(spans) == 0:
		return Unknown()
	case len(spans) == 1 || spans[0].File != spans[len(spans)-1].File:
		return spans[0]
	default:
		return Span{
			File:  spans[0].File,
			Start: spans[0].Start,
			End:   spans[len(spans)-1].End,
		}
	}
}
