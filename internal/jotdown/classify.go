package jotdown

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineParagraph
	lineHeading
	lineUnordered
	lineOrdered
	lineChecklist
)

func (k lineKind) String() string {
	switch k {
	case lineBlank:
		return "blank"
	case lineParagraph:
		return "paragraph"
	case lineHeading:
		return "heading"
	case lineUnordered:
		return "unordered"
	case lineOrdered:
		return "ordered"
	case lineChecklist:
		return "checklist"
	default:
		return "unknown"
	}
}

// line is the context-free classification of one physical line. Segments
// index into the parse source.
type line struct {
	kind lineKind
	// span covers the line without trailing whitespace.
	span text.Segment
	// payload is the trimmed text after any marker.
	payload text.Segment
	level   int
	marker  uint64
	checked bool
}

var (
	uncheckedPrefix = []byte("- [ ] ")
	checkedPrefix   = []byte("- [x] ")
	bulletPrefix    = []byte("- ")
)

// classifyLine decides which block the line could start or continue. seg must
// not include the terminating newline.
func classifyLine(source []byte, seg text.Segment) line {
	span := seg.TrimRightSpace(source)
	value := span.Value(source)
	if util.IsBlank(value) {
		return line{kind: lineBlank, span: span}
	}

	if level, offset, ok := headingMarker(value); ok {
		if payload, ok := markerPayload(source, span, offset); ok {
			return line{kind: lineHeading, span: span, payload: payload, level: level}
		}
	}

	switch {
	case bytes.HasPrefix(value, uncheckedPrefix), bytes.HasPrefix(value, checkedPrefix):
		if payload, ok := markerPayload(source, span, len(uncheckedPrefix)); ok {
			return line{
				kind:    lineChecklist,
				span:    span,
				payload: payload,
				checked: bytes.HasPrefix(value, checkedPrefix),
			}
		}
	case bytes.HasPrefix(value, bulletPrefix):
		if payload, ok := markerPayload(source, span, len(bulletPrefix)); ok {
			return line{kind: lineUnordered, span: span, payload: payload}
		}
	}

	if marker, offset, ok := orderedMarker(value); ok {
		if payload, ok := markerPayload(source, span, offset); ok {
			return line{kind: lineOrdered, span: span, payload: payload, marker: marker}
		}
	}

	return line{kind: lineParagraph, span: span, payload: trimSegment(source, span.Start, span.Stop)}
}

// headingMarker reports the run of '#' characters and the offset just past
// the single space that must follow it.
func headingMarker(value []byte) (level, offset int, ok bool) {
	for level < len(value) && value[level] == '#' {
		level++
	}
	if level == 0 || level >= len(value) || value[level] != ' ' {
		return 0, 0, false
	}
	return level, level + 1, true
}

// orderedMarker parses "<digits>. " and returns the marker value and the
// offset of the item text.
func orderedMarker(value []byte) (uint64, int, bool) {
	digits := 0
	for digits < len(value) && util.IsNumeric(value[digits]) {
		digits++
	}
	if digits == 0 || digits+1 >= len(value) || value[digits] != '.' || value[digits+1] != ' ' {
		return 0, 0, false
	}
	marker, err := strconv.ParseUint(string(value[:digits]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return marker, digits + 2, true
}

// markerPayload trims the text following a marker. Markers without text are
// not list items.
func markerPayload(source []byte, span text.Segment, offset int) (text.Segment, bool) {
	payload := trimSegment(source, span.Start+offset, span.Stop)
	if payload.Len() == 0 {
		return payload, false
	}
	return payload, true
}

func trimSegment(source []byte, start, stop int) text.Segment {
	seg := text.NewSegment(start, stop)
	seg = seg.TrimLeftSpace(source)
	return seg.TrimRightSpace(source)
}
