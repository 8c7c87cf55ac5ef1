package render

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/hanshendrickx/treegen/internal/types"
	"github.com/hanshendrickx/treegen/internal/utils"
)

const (
	documentBackendName = "document"

	documentOrientation = "P"
	documentUnit        = "pt"
	documentFontFamily  = "Helvetica"

	documentMargin     = 50.0
	documentTitleSize  = 14.0
	documentMetaSize   = 10.0
	documentBodySize   = 8.0
	documentLineHeight = 12.0
	documentSectionGap = 30.0

	documentTitle            = "Folder Tree Report"
	documentGeneratedFormat  = "Generated: %s"
	documentStatisticsFormat = "Folders: %d | Files: %d | Total Size: %s"
)

// DocumentRenderer paginates the tree onto A4 or Letter pages. The title and
// statistics header appear on the first page only; continuation pages carry
// tree lines alone.
type DocumentRenderer struct {
	PageSize string
	Clock    func() time.Time
}

// Render writes the tree as a PDF document to the given writer.
// It returns a MissingDependencyError when the PDF backend cannot be initialized.
func (renderer *DocumentRenderer) Render(writer io.Writer, lines []string, statistics types.TreeStatistics) error {
	pageSize := renderer.PageSize
	if pageSize != types.PageSizeLetter {
		pageSize = types.PageSizeA4
	}

	pdfDocument := fpdf.New(documentOrientation, documentUnit, pageSize, "")
	if pdfDocument.Err() {
		return &types.MissingDependencyError{Backend: documentBackendName, Reason: pdfDocument.Error().Error()}
	}
	translate := pdfDocument.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := pdfDocument.GetPageSize()
	bottomLimit := pageHeight - documentMargin

	pdfDocument.AddPage()
	pdfDocument.SetFont(documentFontFamily, "", documentTitleSize)
	verticalPosition := documentMargin
	pdfDocument.Text(documentMargin, verticalPosition, documentTitle)

	verticalPosition += documentSectionGap
	pdfDocument.SetFont(documentFontFamily, "", documentMetaSize)
	pdfDocument.Text(documentMargin, verticalPosition, fmt.Sprintf(documentGeneratedFormat, utils.FormatTimestamp(renderer.now())))
	verticalPosition += documentLineHeight
	pdfDocument.Text(documentMargin, verticalPosition, fmt.Sprintf(documentStatisticsFormat, statistics.Folders, statistics.Files, utils.FormatSize(statistics.TotalSize)))

	verticalPosition += documentSectionGap
	pdfDocument.SetFont(documentFontFamily, "", documentBodySize)
	for _, line := range lines {
		if verticalPosition > bottomLimit {
			pdfDocument.AddPage()
			verticalPosition = documentMargin
			pdfDocument.SetFont(documentFontFamily, "", documentBodySize)
		}
		pdfDocument.Text(documentMargin, verticalPosition, translate(line))
		verticalPosition += documentLineHeight
	}

	if pdfDocument.Err() {
		return &types.MissingDependencyError{Backend: documentBackendName, Reason: pdfDocument.Error().Error()}
	}
	return pdfDocument.Output(writer)
}

func (renderer *DocumentRenderer) now() time.Time {
	if renderer.Clock != nil {
		return renderer.Clock()
	}
	return time.Now()
}
