package md2tex

import "errors"

// Sentinel errors for library operations.
var (
	// Tree builder errors.
	ErrUnhandledEvent = errors.New("unhandled event in token stream")
	ErrListItemEvent  = errors.New("unexpected event while reading list items")
	ErrTableEvent     = errors.New("unexpected event while reading table rows")
	ErrTableRowEvent  = errors.New("unexpected event while reading table cells")

	// Navigation extraction errors.
	ErrManifestElement     = errors.New("unexpected manifest element")
	ErrManifestParagraph   = errors.New("unexpected element in manifest paragraph")
	ErrNavigationListItem  = errors.New("unexpected navigation list item")
	ErrSublistWithoutEntry = errors.New("sublist without an entry")

	// Renderer errors.
	ErrUnknownElement    = errors.New("unknown element kind")
	ErrUnknownFormatting = errors.New("unexpected formatting kind")
	ErrCodeBlockContent  = errors.New("code block content must be text-only")

	// Book assembly errors.
	ErrReadDocument = errors.New("failed to read document")
	ErrWriteOutput  = errors.New("failed to write output")
)
