package md2tex

import "fmt"

// EventKind discriminates the events of the token stream.
type EventKind int

// Event kinds.
const (
	EventStart EventKind = iota // opens a nestable construct
	EventEnd                    // closes whatever construct is open
	EventText
	EventInlineCode
	EventSoftBreak
	EventRawHTML
	EventFootnoteRef
)

// String returns the event kind name for diagnostics.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventText:
		return "text"
	case EventInlineCode:
		return "inline code"
	case EventSoftBreak:
		return "soft break"
	case EventRawHTML:
		return "raw html"
	case EventFootnoteRef:
		return "footnote ref"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// ConstructKind identifies which construct a start event opens.
type ConstructKind int

// Construct kinds.
const (
	ConstructParagraph ConstructKind = iota
	ConstructHeading
	ConstructList
	ConstructListItem
	ConstructBlockQuote
	ConstructCodeBlock
	ConstructEmphasis
	ConstructStrong
	ConstructStrikethrough
	ConstructLink
	ConstructImage
	ConstructTable
	ConstructTableHead
	ConstructTableRow
	ConstructTableCell
)

// String returns the construct name for diagnostics.
func (k ConstructKind) String() string {
	switch k {
	case ConstructParagraph:
		return "paragraph"
	case ConstructHeading:
		return "heading"
	case ConstructList:
		return "list"
	case ConstructListItem:
		return "list item"
	case ConstructBlockQuote:
		return "block quote"
	case ConstructCodeBlock:
		return "code block"
	case ConstructEmphasis:
		return "emphasis"
	case ConstructStrong:
		return "strong"
	case ConstructStrikethrough:
		return "strikethrough"
	case ConstructLink:
		return "link"
	case ConstructImage:
		return "image"
	case ConstructTable:
		return "table"
	case ConstructTableHead:
		return "table head"
	case ConstructTableRow:
		return "table row"
	case ConstructTableCell:
		return "table cell"
	}
	return fmt.Sprintf("construct(%d)", int(k))
}

// Alignment is the per-column alignment carried by a table start event.
type Alignment int

// Column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Event is one token of the flat stream produced by the tokenizer.
// End events carry no payload: well-nestedness is the tokenizer's
// contract, so an end closes whatever construct is currently open.
type Event struct {
	Kind        EventKind
	Construct   ConstructKind // start events only
	Level       int           // heading start events
	Destination string        // link and image start events
	Alignments  []Alignment   // table start events
	Text        string        // text, inline code, raw html and footnote ref events
}

// Stream is a cursor over a tokenized document.
type Stream struct {
	events []Event
	pos    int
}

// NewStream wraps a pre-built event sequence, mainly for tests.
func NewStream(events []Event) *Stream {
	return &Stream{events: events}
}

// Next returns the next event, or ok=false once the stream is exhausted.
func (s *Stream) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}
