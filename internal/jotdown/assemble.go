package jotdown

import (
	"math"

	"github.com/yuin/goldmark/text"
)

type state int

const (
	stateIdle state = iota
	stateParagraph
	stateUnordered
	stateOrdered
	stateChecklist
)

// assembler groups classified lines into blocks. Headings never stay open:
// they are emitted as soon as their line is seen.
type assembler struct {
	source []byte
	state  state
	blocks []Block

	// paragraph spans from the first line start to the last line stop.
	paragraph text.Segment
	items     []text.Segment
	checks    []bool
	expected  uint64
	// final is set once the list reaches math.MaxUint64; nothing can follow.
	final bool
}

func newAssembler(source []byte) *assembler {
	return &assembler{source: source}
}

func (a *assembler) feed(l line) {
	if a.continues(l) {
		a.extend(l)
		return
	}
	a.close()
	a.open(l)
}

// continues reports whether l extends the open block.
func (a *assembler) continues(l line) bool {
	switch a.state {
	case stateParagraph:
		return l.kind == lineParagraph
	case stateUnordered:
		return l.kind == lineUnordered
	case stateChecklist:
		return l.kind == lineChecklist
	case stateOrdered:
		return l.kind == lineOrdered && !a.final && l.marker == a.expected
	default:
		return false
	}
}

func (a *assembler) extend(l line) {
	switch a.state {
	case stateParagraph:
		a.paragraph = text.NewSegment(a.paragraph.Start, l.span.Stop)
	case stateOrdered:
		a.items = append(a.items, l.payload)
		a.advance(l.marker)
	case stateChecklist:
		a.items = append(a.items, l.payload)
		a.checks = append(a.checks, l.checked)
	default:
		a.items = append(a.items, l.payload)
	}
}

func (a *assembler) open(l line) {
	switch l.kind {
	case lineBlank:
		a.state = stateIdle
	case lineHeading:
		a.emit(Heading{Text: a.value(l.payload), Level: l.level})
		a.state = stateIdle
	case lineParagraph:
		a.paragraph = l.payload
		a.state = stateParagraph
	case lineUnordered:
		a.items = append(a.items[:0], l.payload)
		a.state = stateUnordered
	case lineOrdered:
		a.items = append(a.items[:0], l.payload)
		a.advance(l.marker)
		a.state = stateOrdered
	case lineChecklist:
		a.items = append(a.items[:0], l.payload)
		a.checks = append(a.checks[:0], l.checked)
		a.state = stateChecklist
	}
}

func (a *assembler) advance(marker uint64) {
	a.final = marker == math.MaxUint64
	a.expected = marker + 1
}

// close emits the open block, if any, and returns to idle.
func (a *assembler) close() {
	switch a.state {
	case stateParagraph:
		seg := trimSegment(a.source, a.paragraph.Start, a.paragraph.Stop)
		a.emit(Paragraph{Text: a.value(seg)})
	case stateUnordered:
		a.emit(UnorderedList{Items: a.values()})
	case stateOrdered:
		a.emit(OrderedList{Items: a.values()})
	case stateChecklist:
		items := make([]CheckItem, len(a.items))
		for i, seg := range a.items {
			items[i] = CheckItem{Text: a.value(seg), Checked: a.checks[i]}
		}
		a.emit(Checklist{Items: items})
	}
	a.state = stateIdle
}

func (a *assembler) emit(b Block) {
	a.blocks = append(a.blocks, b)
}

func (a *assembler) value(seg text.Segment) string {
	return string(seg.Value(a.source))
}

func (a *assembler) values() []string {
	out := make([]string, len(a.items))
	for i, seg := range a.items {
		out[i] = a.value(seg)
	}
	return out
}
