package jotdown

import "encoding/json"

// Kind identifies the concrete type behind a Block.
type Kind int

const (
	KindParagraph Kind = iota + 1
	KindHeading
	KindUnorderedList
	KindOrderedList
	KindChecklist
)

func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindUnorderedList:
		return "unordered_list"
	case KindOrderedList:
		return "ordered_list"
	case KindChecklist:
		return "checklist"
	default:
		return "unknown"
	}
}

// Block is a single structural unit of a Jotdown document. The set of
// implementations is closed: Paragraph, Heading, UnorderedList, OrderedList
// and Checklist.
type Block interface {
	Kind() Kind
	block()
}

// Paragraph is one contiguous run of prose lines.
type Paragraph struct {
	Text string
}

// Heading is a title (level 1) or heading (level > 1).
type Heading struct {
	Text  string
	Level int
}

// UnorderedList groups consecutive "- " items.
type UnorderedList struct {
	Items []string
}

// OrderedList groups consecutive "N. " items whose markers increase by one.
// Marker values are not retained.
type OrderedList struct {
	Items []string
}

// Checklist groups consecutive "- [ ] " and "- [x] " items.
type Checklist struct {
	Items []CheckItem
}

// CheckItem is a single checklist entry.
type CheckItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

var (
	_ Block = Paragraph{}
	_ Block = Heading{}
	_ Block = UnorderedList{}
	_ Block = OrderedList{}
	_ Block = Checklist{}
)

func (Paragraph) Kind() Kind     { return KindParagraph }
func (Heading) Kind() Kind       { return KindHeading }
func (UnorderedList) Kind() Kind { return KindUnorderedList }
func (OrderedList) Kind() Kind   { return KindOrderedList }
func (Checklist) Kind() Kind     { return KindChecklist }

func (Paragraph) block()     {}
func (Heading) block()       {}
func (UnorderedList) block() {}
func (OrderedList) block()   {}
func (Checklist) block()     {}

// MarshalJSON tags the paragraph with its block type.
func (p Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{KindParagraph.String(), p.Text})
}

// MarshalJSON tags the heading with its block type.
func (h Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Text  string `json:"text"`
		Level int    `json:"level"`
	}{KindHeading.String(), h.Text, h.Level})
}

// MarshalJSON tags the list with its block type.
func (l UnorderedList) MarshalJSON() ([]byte, error) {
	return marshalItems(KindUnorderedList, l.Items)
}

// MarshalJSON tags the list with its block type.
func (l OrderedList) MarshalJSON() ([]byte, error) {
	return marshalItems(KindOrderedList, l.Items)
}

// MarshalJSON tags the checklist with its block type.
func (c Checklist) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []CheckItem{}
	}
	return json.Marshal(struct {
		Type  string      `json:"type"`
		Items []CheckItem `json:"items"`
	}{KindChecklist.String(), items})
}

func marshalItems(kind Kind, items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(struct {
		Type  string   `json:"type"`
		Items []string `json:"items"`
	}{kind.String(), items})
}

// Result is the outcome of a parse. Remainder holds input the grammar did not
// consume; the Jotdown driver always consumes everything so it is empty.
type Result struct {
	Blocks    []Block
	Remainder []byte
}

// Count returns the number of blocks of the given kind.
func (r Result) Count(kind Kind) int {
	n := 0
	for _, b := range r.Blocks {
		if b.Kind() == kind {
			n++
		}
	}
	return n
}

// Title returns the text of the first level-1 heading, if any.
func (r Result) Title() (string, bool) {
	for _, b := range r.Blocks {
		if h, ok := b.(Heading); ok && h.Level == 1 {
			return h.Text, true
		}
	}
	return "", false
}

// Clone returns a deep copy of r. Item slices are copied so the clone shares
// no backing arrays with r; strings are immutable and are shared.
func (r Result) Clone() Result {
	out := Result{Remainder: append([]byte(nil), r.Remainder...)}
	if r.Blocks == nil {
		return out
	}
	out.Blocks = make([]Block, len(r.Blocks))
	for i, b := range r.Blocks {
		switch v := b.(type) {
		case UnorderedList:
			out.Blocks[i] = UnorderedList{Items: append([]string(nil), v.Items...)}
		case OrderedList:
			out.Blocks[i] = OrderedList{Items: append([]string(nil), v.Items...)}
		case Checklist:
			out.Blocks[i] = Checklist{Items: append([]CheckItem(nil), v.Items...)}
		default:
			out.Blocks[i] = b
		}
	}
	return out
}
