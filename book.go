package md2tex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultManifestName is the conventional name of the book's manifest
// document.
const DefaultManifestName = "SUMMARY.md"

// Service assembles a book directory into one ConTeXt document.
type Service struct {
	cfg serviceConfig
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	manifestName string
}

// Option configures a Service.
type Option func(*Service)

// WithManifestName overrides the manifest document name.
// Panics if name is empty (programmer error).
func WithManifestName(name string) Option {
	if name == "" {
		panic("md2tex: WithManifestName requires a name")
	}
	return func(s *Service) {
		s.cfg.manifestName = name
	}
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{manifestName: DefaultManifestName},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadFragment reads and parses one Markdown document into its fragment.
func LoadFragment(path string) (Fragment, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDocument, path, err)
	}
	frag, err := BuildFragment(Tokenize(source))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return frag, nil
}

// LoadNavigation loads the book's manifest document and extracts its
// navigation tree.
func (s *Service) LoadNavigation(bookDir string) (*Navigation, error) {
	path := filepath.Join(bookDir, s.cfg.manifestName)
	manifest, err := LoadFragment(path)
	if err != nil {
		return nil, err
	}
	nav, err := ExtractNavigation(manifest)
	if err != nil {
		return nil, fmt.Errorf("extracting navigation from %s: %w", path, err)
	}
	return nav, nil
}

// Convert runs the full pipeline: loads the navigation tree and writes the
// assembled ConTeXt document to w. Documents are processed one at a time in
// navigation order; the first failure aborts the run, leaving whatever was
// already written on w (known limitation: the output is then incomplete).
func (s *Service) Convert(w io.Writer, bookDir string) error {
	nav, err := s.LoadNavigation(bookDir)
	if err != nil {
		return err
	}
	return s.WriteBook(w, nav, bookDir)
}

// matterGroups pairs each navigation group with its ConTeXt environment
// name, in output order.
func matterGroups(nav *Navigation) []struct {
	name    string
	entries []Entry
} {
	return []struct {
		name    string
		entries []Entry
	}{
		{"frontmatter", nav.FrontMatter},
		{"bodymatter", nav.BodyMatter},
		{"appendices", nav.Appendices},
		{"backmatter", nav.BackMatter},
	}
}

// WriteBook emits the preamble, one demarcated region per non-empty matter
// group with every entry's heading and rendered document, and the trailing
// end-of-text marker.
func (s *Service) WriteBook(w io.Writer, nav *Navigation, bookDir string) error {
	err := writef(w, "\\setupinteraction[title={%s}]\n\n\\starttext\n\n\\placecontent\n\n", nav.Title)
	if err != nil {
		return err
	}

	for _, group := range matterGroups(nav) {
		if len(group.entries) == 0 {
			continue
		}
		if err := writef(w, "\n\\start%s\n", group.name); err != nil {
			return err
		}
		for _, entry := range group.entries {
			if err := s.writeEntry(w, entry, bookDir); err != nil {
				return err
			}
		}
		if err := writef(w, "\n\\stop%s\n", group.name); err != nil {
			return err
		}
	}

	return writef(w, "\\stoptext\n")
}

// writeEntry emits one navigation entry: its heading command, the rendered
// source document if the entry references one, and its children in order.
func (s *Service) writeEntry(w io.Writer, entry Entry, bookDir string) error {
	err := writef(w, "\n\\%s{%s}\n", entry.Level.TexString(), entry.Title)
	if err != nil {
		return err
	}

	if entry.SourcePath != "" {
		path := filepath.Join(bookDir, entry.SourcePath)
		frag, err := LoadFragment(path)
		if err != nil {
			return err
		}
		tex, err := RenderFragment(frag)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
		if err := writef(w, "%s", tex); err != nil {
			return err
		}
	}

	for _, child := range entry.Children {
		if err := s.writeEntry(w, child, bookDir); err != nil {
			return err
		}
	}
	return nil
}

// writef writes formatted output, wrapping failures in the output sentinel.
func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
