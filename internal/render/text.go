// Package render serializes a finished line sequence plus statistics to one
// output medium. Each renderer consumes the same inputs and owns its backend.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hanshendrickx/treegen/internal/types"
	"github.com/hanshendrickx/treegen/internal/utils"
)

const (
	headerTitleFormat     = "%s Project Tree Generated on %s\n"
	headerRootFormat      = "Root: %s\n"
	headerAttributionLine = "(c) 2024 Hans Hendrickx - MIT License\n"
	headerToolLine        = "Professional Folder Tree Generator\n\n"

	summaryFoldersFormat = "Total Folders: %d\n"
	summaryFilesFormat   = "Total Files: %d\n"
	summarySizeFormat    = "Total Size: %s\n"

	separatorLength = 80
)

// headerLegend maps a handful of decorative icons to their meanings.
// The block is emitted verbatim between the title lines and the separator.
var headerLegend = []string{
	"Project Structure Legend:",
	"📂 - Key Project Directory",
	"📁 - Regular Directory",
	"🐍 - Python Source File",
	"📓 - Jupyter Notebook",
	"📝 - Markdown File",
	"📊 - Excel or CSV File",
	"📄 - PDF File",
	"📃 - Word Document",
	"⚙️ - Batch/Script File",
	"🔧 - JSON or Config File",
	"🖼️ - Image File",
	"🎵 - Audio File",
	"🎬 - Video File",
}

// TextRenderer writes lines verbatim as UTF-8 text, optionally framed by a
// header and summary block. Output is byte-identical across invocations with
// the same inputs except for the embedded timestamp.
type TextRenderer struct {
	IncludeHeader bool
	RootPath      string
	Clock         func() time.Time
}

// Render writes the tree to the given writer.
func (renderer *TextRenderer) Render(writer io.Writer, lines []string, statistics types.TreeStatistics) error {
	var output strings.Builder

	if renderer.IncludeHeader {
		projectName := filepath.Base(renderer.RootPath)
		if renderer.RootPath == "" {
			projectName = "Project"
		}
		output.WriteString(fmt.Sprintf(headerTitleFormat, strings.ToUpper(projectName), utils.FormatTimestamp(renderer.now())))
		output.WriteString(fmt.Sprintf(headerRootFormat, renderer.RootPath))
		output.WriteString(headerAttributionLine)
		output.WriteString(headerToolLine)
		for _, legendLine := range headerLegend {
			output.WriteString(legendLine + "\n")
		}
		output.WriteString(separator() + "\n\n")
	}

	for _, line := range lines {
		output.WriteString(line + "\n")
	}

	if renderer.IncludeHeader {
		output.WriteString("\n" + separator() + "\n")
		output.WriteString(fmt.Sprintf(summaryFoldersFormat, statistics.Folders))
		output.WriteString(fmt.Sprintf(summaryFilesFormat, statistics.Files))
		output.WriteString(fmt.Sprintf(summarySizeFormat, utils.FormatSize(statistics.TotalSize)))
	}

	_, writeError := io.WriteString(writer, output.String())
	return writeError
}

func (renderer *TextRenderer) now() time.Time {
	if renderer.Clock != nil {
		return renderer.Clock()
	}
	return time.Now()
}

func separator() string {
	return strings.Repeat("-", separatorLength)
}
