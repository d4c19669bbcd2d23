package md2tex

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// mdParser is the shared goldmark parser. Tables and strikethrough are the
// two dialect extensions the book format uses; footnotes are enabled so that
// references tokenize as leaf events instead of plain text. Read-only after
// initialization.
var mdParser parser.Parser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Footnote,
	),
).Parser()

// Tokenize parses Markdown source and flattens the resulting AST into a
// well-nested event stream. Link and image title metadata is not surfaced.
func Tokenize(source []byte) *Stream {
	doc := mdParser.Parse(text.NewReader(source))
	tk := &tokenizer{source: source}
	tk.emitChildren(doc)
	return NewStream(tk.events)
}

// tokenizer accumulates events during a depth-first AST walk.
type tokenizer struct {
	source []byte
	events []Event
}

func (t *tokenizer) push(ev Event) {
	t.events = append(t.events, ev)
}

func (t *tokenizer) emitChildren(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t.emit(c)
	}
}

// construct emits a start event, the node's children, and the closing end.
func (t *tokenizer) construct(n ast.Node, start Event) {
	start.Kind = EventStart
	t.push(start)
	t.emitChildren(n)
	t.push(Event{Kind: EventEnd})
}

func (t *tokenizer) emit(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		t.construct(node, Event{Construct: ConstructHeading, Level: node.Level})
	case *ast.Paragraph:
		t.construct(node, Event{Construct: ConstructParagraph})
	case *ast.TextBlock:
		// Tight list items wrap their inline content in a TextBlock;
		// the stream keeps them unwrapped, like a loose paragraph's inlines.
		t.emitChildren(node)
	case *ast.List:
		t.construct(node, Event{Construct: ConstructList})
	case *ast.ListItem:
		t.construct(node, Event{Construct: ConstructListItem})
	case *ast.Blockquote:
		t.construct(node, Event{Construct: ConstructBlockQuote})
	case *ast.CodeBlock:
		t.emitCodeBlock(node)
	case *ast.FencedCodeBlock:
		t.emitCodeBlock(node)
	case *ast.Link:
		t.construct(node, Event{Construct: ConstructLink, Destination: string(node.Destination)})
	case *ast.AutoLink:
		url := string(node.URL(t.source))
		t.push(Event{Kind: EventStart, Construct: ConstructLink, Destination: url})
		t.push(Event{Kind: EventText, Text: string(node.Label(t.source))})
		t.push(Event{Kind: EventEnd})
	case *ast.Image:
		t.construct(node, Event{Construct: ConstructImage, Destination: string(node.Destination)})
	case *ast.Emphasis:
		construct := ConstructEmphasis
		if node.Level >= 2 {
			construct = ConstructStrong
		}
		t.construct(node, Event{Construct: construct})
	case *extast.Strikethrough:
		t.construct(node, Event{Construct: ConstructStrikethrough})
	case *ast.CodeSpan:
		t.push(Event{Kind: EventInlineCode, Text: t.inlineText(node)})
	case *ast.Text:
		t.push(Event{Kind: EventText, Text: string(node.Segment.Value(t.source))})
		if node.SoftLineBreak() || node.HardLineBreak() {
			t.push(Event{Kind: EventSoftBreak})
		}
	case *ast.String:
		t.push(Event{Kind: EventText, Text: string(node.Value)})
	case *ast.HTMLBlock:
		raw := t.blockLines(node)
		if node.HasClosure() {
			raw += string(node.ClosureLine.Value(t.source))
		}
		t.push(Event{Kind: EventRawHTML, Text: raw})
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			sb.Write(seg.Value(t.source))
		}
		t.push(Event{Kind: EventRawHTML, Text: sb.String()})
	case *extast.Table:
		aligns := make([]Alignment, len(node.Alignments))
		for i, a := range node.Alignments {
			aligns[i] = cellAlignment(a)
		}
		t.construct(node, Event{Construct: ConstructTable, Alignments: aligns})
	case *extast.TableHeader:
		t.construct(node, Event{Construct: ConstructTableHead})
	case *extast.TableRow:
		t.construct(node, Event{Construct: ConstructTableRow})
	case *extast.TableCell:
		t.construct(node, Event{Construct: ConstructTableCell})
	case *extast.FootnoteLink:
		t.push(Event{Kind: EventFootnoteRef, Text: strconv.Itoa(node.Index)})
	case *extast.FootnoteList, *extast.Footnote, *extast.FootnoteBacklink:
		// Footnote bodies are not carried into the document tree.
	default:
		// Nodes outside the stream's vocabulary (e.g. thematic breaks)
		// contribute only their children.
		t.emitChildren(n)
	}
}

// emitCodeBlock frames the block's raw lines as a single text event.
func (t *tokenizer) emitCodeBlock(n ast.Node) {
	t.push(Event{Kind: EventStart, Construct: ConstructCodeBlock})
	if content := t.blockLines(n); content != "" {
		t.push(Event{Kind: EventText, Text: content})
	}
	t.push(Event{Kind: EventEnd})
}

// blockLines joins a block node's raw source lines.
func (t *tokenizer) blockLines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(t.source))
	}
	return sb.String()
}

// inlineText collects the literal text beneath an inline node.
func (t *tokenizer) inlineText(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(t.source))
		case *ast.String:
			sb.Write(node.Value)
		default:
			sb.WriteString(t.inlineText(c))
		}
	}
	return sb.String()
}

// cellAlignment maps goldmark's table alignment to the stream's enumeration.
func cellAlignment(a extast.Alignment) Alignment {
	switch a {
	case extast.AlignLeft:
		return AlignLeft
	case extast.AlignCenter:
		return AlignCenter
	case extast.AlignRight:
		return AlignRight
	}
	return AlignNone
}
