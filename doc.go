// Package md2tex converts an mdBook-style directory of Markdown documents
// into a single ConTeXt document.
//
// # Quick Start
//
// Create a service and convert a book directory:
//
//	svc := md2tex.New()
//
//	out, err := os.Create("book.tex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Close()
//
//	if err := svc.Convert(out, "src"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Tokenization of each Markdown document into a flat event stream
//     (goldmark with the table, strikethrough and footnote extensions)
//  2. Tree building: the event stream becomes a Fragment, an ordered tree
//     of document elements
//  3. Navigation extraction: the SUMMARY.md fragment becomes the book's
//     navigation tree (title plus front, body, appendix and back matter)
//  4. Rendering: each referenced document's fragment is emitted as ConTeXt
//     markup under its navigation heading
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2tex.New(
//	    md2tex.WithManifestName("TOC.md"),
//	)
//
// The pipeline stages are also usable on their own: Tokenize and
// BuildFragment produce a Fragment from Markdown source, ExtractNavigation
// reads a manifest fragment, and RenderFragment emits ConTeXt markup.
package md2tex
