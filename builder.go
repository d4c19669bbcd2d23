package md2tex

import "fmt"

// BuildFragment consumes a token stream and produces the document tree.
//
// The whole document has no wrapping start/end pair, so the recursive
// builder is invoked repeatedly at the outermost nesting; an invocation
// that yields an empty fragment signals stream exhaustion. Any event the
// builder has no case for fails the whole parse; there is no partial-tree
// recovery.
func BuildFragment(s *Stream) (Fragment, error) {
	var elements Fragment
	for {
		sub, err := buildUntilEnd(s)
		if err != nil {
			return nil, err
		}
		if len(sub) == 0 {
			break
		}
		elements = append(elements, sub...)
	}
	return elements, nil
}

// buildUntilEnd builds one nesting level, consuming events until the end
// event that closes it. End events carry no construct kind: the stream is
// trusted to be well-nested, so whatever is open is what gets closed.
func buildUntilEnd(s *Stream) (Fragment, error) {
	var elements Fragment
	for {
		ev, ok := s.Next()
		if !ok {
			break
		}
		switch ev.Kind {
		case EventEnd:
			return elements, nil
		case EventText:
			elements = append(elements, Element{Kind: ElementText, Text: ev.Text})
		case EventInlineCode:
			elements = append(elements, Element{Kind: ElementCode, Text: ev.Text})
		case EventSoftBreak:
			// Lossy normalization: soft breaks become literal newlines.
			elements = append(elements, Element{Kind: ElementText, Text: "\n"})
		case EventRawHTML:
			elements = append(elements, Element{Kind: ElementHTML, Text: ev.Text})
		case EventFootnoteRef:
			elements = append(elements, Element{Kind: ElementFootnoteRef, Text: ev.Text})
		case EventStart:
			elem, err := buildConstruct(s, ev)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnhandledEvent, ev.Kind)
		}
	}
	return elements, nil
}

// buildConstruct handles one start event, recursing for the construct's
// content.
func buildConstruct(s *Stream, ev Event) (Element, error) {
	switch ev.Construct {
	case ConstructParagraph:
		return buildWrapped(s, Element{Kind: ElementParagraph})
	case ConstructHeading:
		return buildWrapped(s, Element{Kind: ElementHeading, Level: ev.Level})
	case ConstructBlockQuote:
		return buildWrapped(s, Element{Kind: ElementBlockQuote})
	case ConstructCodeBlock:
		return buildWrapped(s, Element{Kind: ElementCodeBlock})
	case ConstructEmphasis:
		return buildWrapped(s, Element{Kind: ElementFormatting, Format: FormatEmphasis})
	case ConstructStrong:
		return buildWrapped(s, Element{Kind: ElementFormatting, Format: FormatStrong})
	case ConstructStrikethrough:
		return buildWrapped(s, Element{Kind: ElementFormatting, Format: FormatStrikethrough})
	case ConstructLink:
		return buildWrapped(s, Element{Kind: ElementLink, Destination: ev.Destination})
	case ConstructImage:
		return buildWrapped(s, Element{Kind: ElementImage, Destination: ev.Destination})
	case ConstructList:
		items, err := buildListItems(s)
		if err != nil {
			return Element{}, err
		}
		return Element{Kind: ElementList, Items: items}, nil
	case ConstructTable:
		table, err := buildTable(s, ev.Alignments)
		if err != nil {
			return Element{}, err
		}
		return Element{Kind: ElementTable, Table: table}, nil
	}
	return Element{}, fmt.Errorf("%w: start of %s", ErrUnhandledEvent, ev.Construct)
}

// buildWrapped builds the construct's sub-fragment and attaches it.
func buildWrapped(s *Stream, elem Element) (Element, error) {
	content, err := buildUntilEnd(s)
	if err != nil {
		return Element{}, err
	}
	elem.Content = content
	return elem, nil
}

// buildListItems reads item-start events until the list's end, building one
// sub-fragment per item. Anything else inside a list is an error.
func buildListItems(s *Stream) ([]Fragment, error) {
	var items []Fragment
	for {
		ev, ok := s.Next()
		if !ok {
			break
		}
		if ev.Kind == EventEnd {
			break
		}
		if ev.Kind != EventStart || ev.Construct != ConstructListItem {
			return nil, fmt.Errorf("%w: %s", ErrListItemEvent, describeEvent(ev))
		}
		item, err := buildUntilEnd(s)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// buildTable reads header-row and body-row starts until the table's end.
// Alignment metadata arrives on the table's start event and is stored as
// single-character codes.
func buildTable(s *Stream, alignments []Alignment) (*Table, error) {
	table := &Table{Alignments: alignmentRunes(alignments)}
	for {
		ev, ok := s.Next()
		if !ok {
			break
		}
		if ev.Kind == EventEnd {
			break
		}
		if ev.Kind != EventStart {
			return nil, fmt.Errorf("%w: %s", ErrTableEvent, describeEvent(ev))
		}
		switch ev.Construct {
		case ConstructTableHead:
			row, err := buildTableRow(s)
			if err != nil {
				return nil, err
			}
			table.HeaderRows = append(table.HeaderRows, row)
		case ConstructTableRow:
			row, err := buildTableRow(s)
			if err != nil {
				return nil, err
			}
			table.BodyRows = append(table.BodyRows, row)
		default:
			return nil, fmt.Errorf("%w: %s", ErrTableEvent, describeEvent(ev))
		}
	}
	return table, nil
}

// buildTableRow reads cell-start events until the row's end, building one
// sub-fragment per cell. The kindless end event also absorbs the difference
// between a row's own terminator and a header group's.
func buildTableRow(s *Stream) ([]Fragment, error) {
	var cells []Fragment
	for {
		ev, ok := s.Next()
		if !ok {
			break
		}
		if ev.Kind == EventEnd {
			break
		}
		if ev.Kind != EventStart || ev.Construct != ConstructTableCell {
			return nil, fmt.Errorf("%w: %s", ErrTableRowEvent, describeEvent(ev))
		}
		cell, err := buildUntilEnd(s)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// alignmentRunes translates the stream's alignment enumeration into the
// stored single-character codes.
func alignmentRunes(alignments []Alignment) []rune {
	runes := make([]rune, len(alignments))
	for i, a := range alignments {
		switch a {
		case AlignLeft:
			runes[i] = 'l'
		case AlignCenter:
			runes[i] = 'c'
		case AlignRight:
			runes[i] = 'r'
		default:
			runes[i] = ' '
		}
	}
	return runes
}

// describeEvent names an offending event for error messages.
func describeEvent(ev Event) string {
	if ev.Kind == EventStart {
		return fmt.Sprintf("start of %s", ev.Construct)
	}
	return ev.Kind.String()
}
