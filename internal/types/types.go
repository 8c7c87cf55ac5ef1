// Package types defines every cross-package data structure used by the treegen CLI.
package types

const (
	// FormatText identifies the plain text renderer.
	FormatText = "text"
	// FormatImage identifies the PNG renderer.
	FormatImage = "image"
	// FormatDocument identifies the PDF renderer.
	FormatDocument = "document"

	// PageSizeA4 is the A4 page preset for the document renderer.
	PageSizeA4 = "A4"
	// PageSizeLetter is the Letter page preset for the document renderer.
	PageSizeLetter = "Letter"
)

// TreeConfiguration holds the immutable per-run traversal settings.
type TreeConfiguration struct {
	StyleName         string
	IconSetName       string
	MaxDepth          int
	MaxFilesPerFolder int
	ShowSize          bool
	ShowHidden        bool
	SortDirsFirst     bool
	IncludeCategories []string
	ExcludePatterns   []string
}

// TreeStatistics accumulates aggregate counts for one generation run.
// Folders starts at one to count the root directory.
type TreeStatistics struct {
	Folders          int
	Files            int
	TotalSize        int64
	TruncatedFolders int
}
