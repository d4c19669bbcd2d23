package md2tex

import "fmt"

// Fragment is an ordered sequence of document elements representing one
// nesting level of parsed content. Order is document reading order.
type Fragment []Element

// ElementKind discriminates the document element variants.
type ElementKind int

// Element kinds.
const (
	ElementText ElementKind = iota
	ElementHeading
	ElementParagraph
	ElementList
	ElementLink
	ElementImage
	ElementCode
	ElementBlockQuote
	ElementCodeBlock
	ElementFormatting
	ElementTable
	ElementHTML
	ElementFootnoteRef
)

// String returns the element kind name for diagnostics.
func (k ElementKind) String() string {
	switch k {
	case ElementText:
		return "text"
	case ElementHeading:
		return "heading"
	case ElementParagraph:
		return "paragraph"
	case ElementList:
		return "list"
	case ElementLink:
		return "link"
	case ElementImage:
		return "image"
	case ElementCode:
		return "code"
	case ElementBlockQuote:
		return "block quote"
	case ElementCodeBlock:
		return "code block"
	case ElementFormatting:
		return "formatting"
	case ElementTable:
		return "table"
	case ElementHTML:
		return "html"
	case ElementFootnoteRef:
		return "footnote ref"
	}
	return fmt.Sprintf("element(%d)", int(k))
}

// FormatKind identifies an inline formatting span.
type FormatKind int

// Formatting kinds.
const (
	FormatEmphasis FormatKind = iota
	FormatStrong
	FormatStrikethrough
)

// Element is one node of the document tree. It is a tagged variant: Kind
// selects which payload fields are meaningful, and no behavior is attached
// beyond the data — building, extraction and rendering all live elsewhere.
//
// Payload usage by kind:
//
//	Text         Text
//	Heading      Level, Content
//	Paragraph    Content
//	List         Items
//	Link         Destination, Content (label)
//	Image        Destination, Content (alt text)
//	Code         Text
//	BlockQuote   Content
//	CodeBlock    Content (text-only children)
//	Formatting   Format, Content
//	Table        Table
//	HTML         Text (raw markup, not re-parsed)
//	FootnoteRef  Text (reference name)
//
// Nested fragments are owned exclusively by their parent: the structure is
// a strict tree with no sharing and no cycles.
type Element struct {
	Kind        ElementKind
	Text        string
	Level       int
	Destination string
	Format      FormatKind
	Content     Fragment
	Items       []Fragment
	Table       *Table
}

// Table holds a parsed table. Alignments carries one single-character code
// per column: ' ' (none), 'l', 'c' or 'r'. The builder does not enforce
// that every row has len(Alignments) cells; rows render with however many
// cells they carry.
type Table struct {
	Alignments []rune
	HeaderRows [][]Fragment
	BodyRows   [][]Fragment
}
