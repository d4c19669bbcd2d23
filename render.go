package md2tex

import (
	"fmt"
	"strings"
)

// RenderFragment walks a document fragment and produces ConTeXt markup.
// Rendering is pure: the same fragment always yields byte-identical output.
func RenderFragment(frag Fragment) (string, error) {
	var sb strings.Builder
	for _, elem := range frag {
		if err := renderElement(&sb, elem); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func renderElement(sb *strings.Builder, elem Element) error {
	switch elem.Kind {
	case ElementText:
		sb.WriteString(SmartQuotes(EscapeTeX(elem.Text)))
	case ElementCode:
		sb.WriteString(ToVerbatim(elem.Text))
	case ElementCodeBlock:
		content, err := collectText(elem.Content)
		if err != nil {
			return err
		}
		sb.WriteString("\n\\starttyping\n")
		sb.WriteString(content)
		sb.WriteString("\n\\stoptyping\n")
	case ElementHeading:
		return renderHeading(sb, elem)
	case ElementParagraph:
		sub, err := RenderFragment(elem.Content)
		if err != nil {
			return err
		}
		sb.WriteString(sub)
		sb.WriteString("\n\n")
	case ElementList:
		return renderList(sb, elem.Items)
	case ElementLink:
		sub, err := RenderFragment(elem.Content)
		if err != nil {
			return err
		}
		sb.WriteString("\\goto{")
		sb.WriteString(sub)
		sb.WriteString("}[url(")
		sb.WriteString(elem.Destination)
		sb.WriteString(")]")
	case ElementImage:
		// Alt text is dropped; only the destination is referenced.
		sb.WriteString("\\externalfigure[")
		sb.WriteString(elem.Destination)
		sb.WriteString("]")
	case ElementBlockQuote:
		sub, err := RenderFragment(elem.Content)
		if err != nil {
			return err
		}
		sb.WriteString("\n\\startblockquote\n")
		sb.WriteString(sub)
		sb.WriteString("\n\\stopblockquote\n")
	case ElementFormatting:
		return renderFormatting(sb, elem)
	case ElementTable:
		return renderTable(sb, elem.Table)
	case ElementHTML:
		// Raw markup cannot be translated safely; keep it visible but inert.
		sb.WriteString(commentOut(elem.Text))
	case ElementFootnoteRef:
		sb.WriteString("\\note[")
		sb.WriteString(elem.Text)
		sb.WriteString("]")
	default:
		return fmt.Errorf("%w: %s", ErrUnknownElement, elem.Kind)
	}
	return nil
}

// renderHeading emits a sectioning command. Depth-1 headings are suppressed:
// the navigation descent already emitted the entry's own heading, and
// repeating it here would duplicate the title.
func renderHeading(sb *strings.Builder, elem Element) error {
	if elem.Level == 1 {
		return nil
	}
	sub, err := RenderFragment(elem.Content)
	if err != nil {
		return err
	}
	sb.WriteString("\\")
	for i := 1; i < elem.Level; i++ {
		sb.WriteString("sub")
	}
	sb.WriteString("section{")
	sb.WriteString(sub)
	sb.WriteString("}\n")
	return nil
}

func renderList(sb *strings.Builder, items []Fragment) error {
	sb.WriteString("\n\\startitemize\n")
	for _, item := range items {
		sub, err := RenderFragment(item)
		if err != nil {
			return err
		}
		sb.WriteString("\\item ")
		sb.WriteString(sub)
		sb.WriteString("\n")
	}
	sb.WriteString("\n\\stopitemize\n")
	return nil
}

func renderFormatting(sb *strings.Builder, elem Element) error {
	sub, err := RenderFragment(elem.Content)
	if err != nil {
		return err
	}
	switch elem.Format {
	case FormatStrikethrough:
		sb.WriteString("\\overstrike{")
		sb.WriteString(sub)
		sb.WriteString("}")
	case FormatEmphasis:
		sb.WriteString("{\\it ")
		sb.WriteString(sub)
		sb.WriteString("}")
	case FormatStrong:
		sb.WriteString("{\\bf ")
		sb.WriteString(sub)
		sb.WriteString("}")
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormatting, int(elem.Format))
	}
	return nil
}

// renderTable emits per-column alignment directives for every column whose
// alignment is not "none", then the table region: header rows first, body
// rows after, each cell wrapped in the matching cell markers.
func renderTable(sb *strings.Builder, table *Table) error {
	for i, alignment := range table.Alignments {
		var keyword string
		switch alignment {
		case 'l':
			keyword = "flushleft"
		case 'r':
			keyword = "flushright"
		case 'c':
			keyword = "middle"
		default:
			continue
		}
		fmt.Fprintf(sb, "\\setupTABLE[c][%d][align=%s]\n", i+1, keyword)
	}
	sb.WriteString("\\bTABLE\n")
	groups := []struct {
		marker string
		rows   [][]Fragment
	}{
		{"TH", table.HeaderRows},
		{"TD", table.BodyRows},
	}
	for _, group := range groups {
		for _, row := range group.rows {
			sb.WriteString("\\bTR\n")
			for _, cell := range row {
				sub, err := RenderFragment(cell)
				if err != nil {
					return err
				}
				fmt.Fprintf(sb, "\\b%s %s \\e%s\n", group.marker, sub, group.marker)
			}
			sb.WriteString("\\eTR\n")
		}
	}
	sb.WriteString("\\eTABLE\n\n")
	return nil
}
