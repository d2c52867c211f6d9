package jotdown

import (
	"reflect"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "paragraphs separated by blank lines",
			input: "This is a paragraph.\n\nThis is another paragraph.\n\nAnother paragraph!\n\n",
			want: []Block{
				Paragraph{Text: "This is a paragraph."},
				Paragraph{Text: "This is another paragraph."},
				Paragraph{Text: "Another paragraph!"},
			},
		},
		{
			name:  "paragraphs single trailing newline",
			input: "This is a paragraph.\n\nThis is another paragraph.\n",
			want: []Block{
				Paragraph{Text: "This is a paragraph."},
				Paragraph{Text: "This is another paragraph."},
			},
		},
		{
			name:  "paragraph without trailing newline",
			input: "This is a paragraph.\n\nThis is another paragraph.",
			want: []Block{
				Paragraph{Text: "This is a paragraph."},
				Paragraph{Text: "This is another paragraph."},
			},
		},
		{
			name:  "leading blank lines",
			input: "\n\nThis is a paragraph.\n\nThis is another paragraph.",
			want: []Block{
				Paragraph{Text: "This is a paragraph."},
				Paragraph{Text: "This is another paragraph."},
			},
		},
		{
			name:  "heading followed directly by paragraph",
			input: "## This is a header\nThis is a paragraph.",
			want: []Block{
				Heading{Text: "This is a header", Level: 2},
				Paragraph{Text: "This is a paragraph."},
			},
		},
		{
			name:  "titles",
			input: "# This is a title\n\n\nThis is a paragraph.\n\n# This is another title\n",
			want: []Block{
				Heading{Text: "This is a title", Level: 1},
				Paragraph{Text: "This is a paragraph."},
				Heading{Text: "This is another title", Level: 1},
			},
		},
		{
			name:  "hash without space is a paragraph",
			input: "#This is not a header",
			want:  []Block{Paragraph{Text: "#This is not a header"}},
		},
		{
			name:  "unordered list",
			input: "- This is a list item\n- This is another list item\n",
			want: []Block{
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "paragraph then unordered list",
			input: "This is a paragraph.\n\n- This is a list item\n- This is another list item\n",
			want: []Block{
				Paragraph{Text: "This is a paragraph."},
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "unordered list closed by paragraph line",
			input: "- This is a list item\n- This is another list item\nThis is a paragraph.",
			want: []Block{
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
				Paragraph{Text: "This is a paragraph."},
			},
		},
		{
			name:  "dash without space is a paragraph",
			input: "-This is not a list item",
			want:  []Block{Paragraph{Text: "-This is not a list item"}},
		},
		{
			name:  "bullet inside heading text",
			input: "# This is a header with a bullet - in it\nThis is a paragraph.",
			want: []Block{
				Heading{Text: "This is a header with a bullet - in it", Level: 1},
				Paragraph{Text: "This is a paragraph."},
			},
		},
		{
			name:  "unordered list between paragraphs",
			input: "This is a paragraph.\n\n- This is a list item\n- This is another list item\n\nThis is another paragraph.\n\n",
			want: []Block{
				Paragraph{Text: "This is a paragraph."},
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
				Paragraph{Text: "This is another paragraph."},
			},
		},
		{
			name:  "ordered list",
			input: "1. This is a list item\n2. This is another list item\n",
			want: []Block{
				OrderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "two ordered lists split by marker restart",
			input: "1. This is a list item\n2. This is another list item\n1. This is a list item\n2. This is another list item\n",
			want: []Block{
				OrderedList{Items: []string{"This is a list item", "This is another list item"}},
				OrderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "ordered list then paragraph",
			input: "1. This is a list item\n2. This is another list item\n\nThis is a paragraph.\n",
			want: []Block{
				OrderedList{Items: []string{"This is a list item", "This is another list item"}},
				Paragraph{Text: "This is a paragraph."},
			},
		},
		{
			name:  "ordered then unordered list",
			input: "1. This is a list item\n2. This is another list item\n\n- This is a list item\n- This is another list item\n",
			want: []Block{
				OrderedList{Items: []string{"This is a list item", "This is another list item"}},
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "very long gaps",
			input: "\n\n\n\n\n# This is a very long gap\n\n\n\n\n\n\n\n\n\nI sure hope it doesn't break my parser\n\n\n\n\n\n",
			want: []Block{
				Heading{Text: "This is a very long gap", Level: 1},
				Paragraph{Text: "I sure hope it doesn't break my parser"},
			},
		},
		{
			name:  "whitespace only",
			input: "\n \n  \n\n\t\n\t\t\n\t\t\t",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "checklist",
			input: "- [ ] This is a list item\n- [x] This is another list item\n",
			want: []Block{
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
			},
		},
		{
			name:  "checklist does not absorb unordered items",
			input: "- [ ] This is a list item\n- [x] This is another list item\n- This is a list item\n- This is another list item\n",
			want: []Block{
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "unordered list does not absorb checklist items",
			input: "- This is a list item\n- This is another list item\n- [ ] This is a list item\n- [x] This is another list item\n",
			want: []Block{
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
			},
		},
		{
			name:  "checklist then paragraph",
			input: "- [ ] This is a list item\n- [x] This is another list item\n\nThis is a paragraph.\n",
			want: []Block{
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
				Paragraph{Text: "This is a paragraph."},
			},
		},
		{
			name:  "checklist then ordered list",
			input: "- [ ] This is a list item\n- [x] This is another list item\n\n1. This is a list item\n2. This is another list item\n",
			want: []Block{
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
				OrderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "checklist then unordered list",
			input: "- [ ] This is a list item\n- [x] This is another list item\n\n- This is a list item\n- This is another list item\n",
			want: []Block{
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
				UnorderedList{Items: []string{"This is a list item", "This is another list item"}},
			},
		},
		{
			name:  "two checklists separated by blank line",
			input: "- [ ] This is a list item\n- [x] This is another list item\n\n- [ ] This is a list item\n- [x] This is another list item\n",
			want: []Block{
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
				Checklist{Items: []CheckItem{
					{Text: "This is a list item", Checked: false},
					{Text: "This is another list item", Checked: true},
				}},
			},
		},
		{
			name:  "short checklist then unordered",
			input: "- [ ] a\n- [x] b\n- c\n- d\n",
			want: []Block{
				Checklist{Items: []CheckItem{{Text: "a"}, {Text: "b", Checked: true}}},
				UnorderedList{Items: []string{"c", "d"}},
			},
		},
		{
			name:  "short ordered restart",
			input: "1. a\n2. b\n1. c\n2. d\n",
			want: []Block{
				OrderedList{Items: []string{"a", "b"}},
				OrderedList{Items: []string{"c", "d"}},
			},
		},
		{
			name:  "heading then paragraph without blank",
			input: "## H\nP.\n",
			want: []Block{
				Heading{Text: "H", Level: 2},
				Paragraph{Text: "P."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseString(tt.input)
			if !reflect.DeepEqual(got.Blocks, tt.want) {
				t.Fatalf("blocks mismatch\n got: %#v\nwant: %#v", got.Blocks, tt.want)
			}
			if len(got.Remainder) != 0 {
				t.Fatalf("expected empty remainder, got %q", got.Remainder)
			}
		})
	}
}

func TestParseOrderedLists(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "list need not start at one",
			input: "3. c\n4. d\n5. e\n",
			want:  []Block{OrderedList{Items: []string{"c", "d", "e"}}},
		},
		{
			name:  "skipped marker splits list",
			input: "1. a\n2. b\n4. d\n5. e\n",
			want: []Block{
				OrderedList{Items: []string{"a", "b"}},
				OrderedList{Items: []string{"d", "e"}},
			},
		},
		{
			name:  "repeated marker splits list",
			input: "1. a\n1. b\n1. c\n",
			want: []Block{
				OrderedList{Items: []string{"a"}},
				OrderedList{Items: []string{"b"}},
				OrderedList{Items: []string{"c"}},
			},
		},
		{
			name:  "multi digit markers",
			input: "9. nine\n10. ten\n11. eleven\n",
			want:  []Block{OrderedList{Items: []string{"nine", "ten", "eleven"}}},
		},
		{
			name:  "leading zeros parse as integers",
			input: "01. a\n2. b\n",
			want:  []Block{OrderedList{Items: []string{"a", "b"}}},
		},
		{
			name:  "ordered list closed by unordered item",
			input: "1. a\n- b\n2. c\n",
			want: []Block{
				OrderedList{Items: []string{"a"}},
				UnorderedList{Items: []string{"b"}},
				OrderedList{Items: []string{"c"}},
			},
		},
		{
			name:  "blank line restarts expectation",
			input: "1. a\n\n2. b\n",
			want: []Block{
				OrderedList{Items: []string{"a"}},
				OrderedList{Items: []string{"b"}},
			},
		},
		{
			name:  "marker without dot space is prose",
			input: "1.a\n",
			want:  []Block{Paragraph{Text: "1.a"}},
		},
		{
			name:  "marker overflowing uint64 is prose",
			input: "99999999999999999999. big\n",
			want:  []Block{Paragraph{Text: "99999999999999999999. big"}},
		},
		{
			name:  "largest marker ends the list",
			input: "18446744073709551614. a\n18446744073709551615. b\n0. c\n1. d\n",
			want: []Block{
				OrderedList{Items: []string{"a", "b"}},
				OrderedList{Items: []string{"c", "d"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseString(tt.input)
			if !reflect.DeepEqual(got.Blocks, tt.want) {
				t.Fatalf("blocks mismatch\n got: %#v\nwant: %#v", got.Blocks, tt.want)
			}
		})
	}
}

func TestParseParagraphLinesMerge(t *testing.T) {
	got := ParseString("  first line\nsecond line  \n\tthird line\n\nnext")
	want := []Block{
		Paragraph{Text: "first line\nsecond line  \n\tthird line"},
		Paragraph{Text: "next"},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Fatalf("blocks mismatch\n got: %#v\nwant: %#v", got.Blocks, want)
	}
}

func TestParseParagraphClosedByListsAndHeadings(t *testing.T) {
	got := ParseString("intro\n- a\nmiddle\n1. b\nthen\n- [x] c\nlast\n# Title\n")
	want := []Block{
		Paragraph{Text: "intro"},
		UnorderedList{Items: []string{"a"}},
		Paragraph{Text: "middle"},
		OrderedList{Items: []string{"b"}},
		Paragraph{Text: "then"},
		Checklist{Items: []CheckItem{{Text: "c", Checked: true}}},
		Paragraph{Text: "last"},
		Heading{Text: "Title", Level: 1},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Fatalf("blocks mismatch\n got: %#v\nwant: %#v", got.Blocks, want)
	}
}

func TestParseEmptyMarkersAreProse(t *testing.T) {
	tests := []struct {
		input string
		want  []Block
	}{
		{input: "- \n", want: []Block{Paragraph{Text: "-"}}},
		{input: "1. \n", want: []Block{Paragraph{Text: "1."}}},
		{input: "# \n", want: []Block{Paragraph{Text: "#"}}},
		{input: "#\n", want: []Block{Paragraph{Text: "#"}}},
		{input: "- [ ] \n", want: []Block{UnorderedList{Items: []string{"[ ]"}}}},
		{input: "- [X] upper\n", want: []Block{UnorderedList{Items: []string{"[X] upper"}}}},
	}

	for _, tt := range tests {
		got := ParseString(tt.input)
		if !reflect.DeepEqual(got.Blocks, tt.want) {
			t.Fatalf("input %q\n got: %#v\nwant: %#v", tt.input, got.Blocks, tt.want)
		}
	}
}

func TestParseHeadingLevels(t *testing.T) {
	got := ParseString("# one\n## two\n###### six\n#######  seven  \n")
	want := []Block{
		Heading{Text: "one", Level: 1},
		Heading{Text: "two", Level: 2},
		Heading{Text: "six", Level: 6},
		Heading{Text: "seven", Level: 7},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Fatalf("blocks mismatch\n got: %#v\nwant: %#v", got.Blocks, want)
	}
}

func TestParseCarriageReturns(t *testing.T) {
	got := ParseString("# Title\r\n\r\n- a\r\n- b\r\n")
	want := []Block{
		Heading{Text: "Title", Level: 1},
		UnorderedList{Items: []string{"a", "b"}},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Fatalf("blocks mismatch\n got: %#v\nwant: %#v", got.Blocks, want)
	}
}

func TestParseNeverEmitsEmptyBlocks(t *testing.T) {
	inputs := []string{
		"", "\n", " \t \n\n", "- \n-\n", "# \n\n#", "1. \n2.\n", "\n\n- [ ] x\n\n\n",
		"a\n\n\n\nb\n \n\t\n- c\n\n", "- [x] \n- [ ]\n",
	}
	for _, input := range inputs {
		for _, b := range ParseString(input).Blocks {
			switch v := b.(type) {
			case Paragraph:
				if v.Text == "" {
					t.Fatalf("input %q: empty paragraph", input)
				}
			case Heading:
				if v.Text == "" || v.Level < 1 {
					t.Fatalf("input %q: invalid heading %#v", input, v)
				}
			case UnorderedList:
				assertItems(t, input, v.Items)
			case OrderedList:
				assertItems(t, input, v.Items)
			case Checklist:
				if len(v.Items) == 0 {
					t.Fatalf("input %q: empty checklist", input)
				}
				for _, item := range v.Items {
					if item.Text == "" {
						t.Fatalf("input %q: empty checklist item", input)
					}
				}
			default:
				t.Fatalf("unexpected block type %T", b)
			}
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	input := "# T\n\n- [ ] a\n- b\n1. c\n3. d\npara\nline\n"
	first := ParseString(input)
	second := ParseString(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parses differ\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestParseConcurrent(t *testing.T) {
	input := []byte("# T\n\n- a\n- b\n\n1. c\n2. d\n")
	want := Parse(input)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Parse(input); !reflect.DeepEqual(got, want) {
				errs <- "concurrent parse diverged"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}

func TestParseDoesNotAliasSource(t *testing.T) {
	source := []byte("- alpha\n")
	got := Parse(source)
	source[2] = 'X'
	list := got.Blocks[0].(UnorderedList)
	if list.Items[0] != "alpha" {
		t.Fatalf("expected owned item text, got %q", list.Items[0])
	}
}

func assertItems(t *testing.T, input string, items []string) {
	t.Helper()
	if len(items) == 0 {
		t.Fatalf("input %q: empty list", input)
	}
	for _, item := range items {
		if item == "" {
			t.Fatalf("input %q: empty list item", input)
		}
	}
}
