// Package jotdown recognises the Jotdown block dialect: paragraphs, headings,
// unordered lists, ordered lists and checklists.
//
// Parsing is total. Any input, including empty or whitespace-only text,
// yields an ordered (possibly empty) list of blocks. The parser keeps no
// state between calls, so independent parses may run concurrently.
package jotdown

import (
	"bytes"

	"github.com/yuin/goldmark/text"
)

// Parse splits source on line feeds, classifies every line and groups the
// lines into blocks in source order.
func Parse(source []byte) Result {
	asm := newAssembler(source)
	for _, seg := range splitLines(source) {
		asm.feed(classifyLine(source, seg))
	}
	asm.close()

	return Result{
		Blocks:    asm.blocks,
		Remainder: source[len(source):],
	}
}

// ParseString is Parse for string input.
func ParseString(source string) Result {
	return Parse([]byte(source))
}

// splitLines returns one segment per physical line, excluding the line feed.
// A trailing line feed does not produce an extra empty line.
func splitLines(source []byte) []text.Segment {
	lines := make([]text.Segment, 0, bytes.Count(source, []byte{'\n'})+1)
	start := 0
	for start < len(source) {
		end := bytes.IndexByte(source[start:], '\n')
		if end < 0 {
			lines = append(lines, text.NewSegment(start, len(source)))
			break
		}
		lines = append(lines, text.NewSegment(start, start+end))
		start += end + 1
	}
	return lines
}
