package md2tex

import (
	"fmt"
	"strings"
)

// EntryLevel ranks a navigation entry: Part < Chapter < Section(0) <
// Section(1) < … The rank selects the output heading depth only; sibling
// order within the navigation tree is insertion order from the manifest.
type EntryLevel int

// Named entry levels. Deeper section levels come from SectionLevel.
const (
	LevelPart    EntryLevel = 0
	LevelChapter EntryLevel = 1
)

// SectionLevel returns the level of a section nested depth levels below a
// chapter; SectionLevel(0) is a top-level section.
func SectionLevel(depth int) EntryLevel {
	return EntryLevel(2 + depth)
}

// TexString returns the ConTeXt sectioning command name for the level.
func (l EntryLevel) TexString() string {
	switch l {
	case LevelPart:
		return "part"
	case LevelChapter:
		return "chapter"
	}
	return strings.Repeat("sub", int(l)-2) + "section"
}

// Entry is one node of the navigation tree. An empty SourcePath marks a
// structural heading with no attached document, e.g. a part divider.
type Entry struct {
	Level      EntryLevel
	Title      string
	SourcePath string
	Children   []Entry
}

// Navigation is the book's table-of-contents structure: a rendered title
// and four ordered matter groups. The appendix group is reachable in the
// data model but never populated by the manifest grammar; it exists as an
// extension point and stays empty by construction.
type Navigation struct {
	Title       string
	FrontMatter []Entry
	BodyMatter  []Entry
	Appendices  []Entry
	BackMatter  []Entry
}

// ExtractNavigation interprets the manifest document's fragment as a
// navigation tree. Top-level elements are read positionally: a level-1
// heading sets the title, paragraphs contribute front-matter entries until
// the first top-level list is seen and back-matter entries after it, and
// that first list's items become the body matter. Any element outside the
// recognized shapes fails extraction.
func ExtractNavigation(manifest Fragment) (*Navigation, error) {
	nav := &Navigation{}
	frontMatterDone := false
	for _, elem := range manifest {
		switch elem.Kind {
		case ElementHeading:
			if elem.Level != 1 {
				return nil, fmt.Errorf("%w: heading of level %d", ErrManifestElement, elem.Level)
			}
			title, err := RenderFragment(elem.Content)
			if err != nil {
				return nil, fmt.Errorf("rendering title: %w", err)
			}
			nav.Title = title
		case ElementParagraph:
			entries, err := paragraphEntries(elem.Content)
			if err != nil {
				return nil, err
			}
			if frontMatterDone {
				nav.BackMatter = append(nav.BackMatter, entries...)
			} else {
				nav.FrontMatter = append(nav.FrontMatter, entries...)
			}
		case ElementList:
			// Front matter is whatever paragraphs precede the first list.
			frontMatterDone = true
			for _, item := range elem.Items {
				entries, err := linksToEntries(item, 0)
				if err != nil {
					return nil, err
				}
				nav.BodyMatter = append(nav.BodyMatter, entries...)
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrManifestElement, elem.Kind)
		}
	}
	return nav, nil
}

// paragraphEntries interprets the inline elements of a front- or
// back-matter paragraph: a link is one depth-0 entry, a list a run of
// depth-0 entries, anything else an error.
func paragraphEntries(content Fragment) ([]Entry, error) {
	var entries []Entry
	for _, elem := range content {
		var sub []Entry
		var err error
		switch elem.Kind {
		case ElementLink:
			sub, err = linksToEntries(Fragment{elem}, 0)
		case ElementList:
			var flat Fragment
			for _, item := range elem.Items {
				flat = append(flat, item...)
			}
			sub, err = linksToEntries(flat, 0)
		default:
			return nil, fmt.Errorf("%w: %s", ErrManifestParagraph, elem.Kind)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, sub...)
	}
	return entries, nil
}

// linksToEntries converts the elements of one list item at the given depth.
// A link becomes an entry; a list is a sub-list of the immediately
// preceding entry and its items become that entry's children one level
// deeper.
func linksToEntries(elems Fragment, depth int) ([]Entry, error) {
	var entries []Entry
	for _, elem := range elems {
		switch elem.Kind {
		case ElementLink:
			title, err := RenderFragment(elem.Content)
			if err != nil {
				return nil, fmt.Errorf("rendering entry title: %w", err)
			}
			entries = append(entries, Entry{
				Level:      SectionLevel(depth),
				Title:      title,
				SourcePath: elem.Destination,
			})
		case ElementList:
			if len(entries) == 0 {
				return nil, ErrSublistWithoutEntry
			}
			last := &entries[len(entries)-1]
			for _, item := range elem.Items {
				children, err := linksToEntries(item, depth+1)
				if err != nil {
					return nil, err
				}
				last.Children = append(last.Children, children...)
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrNavigationListItem, elem.Kind)
		}
	}
	return entries, nil
}
