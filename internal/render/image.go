package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hanshendrickx/treegen/internal/types"
	"github.com/hanshendrickx/treegen/internal/utils"
)

const (
	imageBackendName = "image"

	// DefaultFontSize is used when no font size is configured.
	DefaultFontSize = 12

	minimumImageWidth  = 800
	minimumImageHeight = 600
	imageMarginLeft    = 20
	imageMarginTop     = 20
	headerBodyGap      = 10

	imageHeaderTitleFormat = "Folder Tree - Generated %s"
	imageHeaderStatsFormat = "Folders: %d | Files: %d | Size: %s"
)

// defaultFontCandidates are the system TrueType files probed before falling
// back to the embedded monospace face.
var defaultFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/System/Library/Fonts/Menlo.ttc",
	"C:\\Windows\\Fonts\\consola.ttf",
}

// ImageRenderer paints the tree onto a light RGB canvas sized from the
// content: width from the longest line, height from the line count, both with
// fixed minimums.
type ImageRenderer struct {
	FontSize       int
	FontCandidates []string
	Clock          func() time.Time
}

// Render encodes the tree as a PNG written to the given writer.
// It returns a MissingDependencyError when no usable font face can be built.
func (renderer *ImageRenderer) Render(writer io.Writer, lines []string, statistics types.TreeStatistics) error {
	fontSize := renderer.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	fontFace, faceError := renderer.loadFace(fontSize)
	if faceError != nil {
		return &types.MissingDependencyError{Backend: imageBackendName, Reason: faceError.Error()}
	}
	defer fontFace.Close()

	// An empty tree still gets a nominal line length so the canvas has shape.
	longestLineLength := 0
	for _, line := range lines {
		if lineLength := utf8.RuneCountInString(line); lineLength > longestLineLength {
			longestLineLength = lineLength
		}
	}
	if len(lines) == 0 {
		longestLineLength = 50
	}
	lineHeight := fontSize + 4
	imageWidth := longestLineLength * (fontSize / 2)
	if imageWidth < minimumImageWidth {
		imageWidth = minimumImageWidth
	}
	imageHeight := len(lines)*lineHeight + 100
	if imageHeight < minimumImageHeight {
		imageHeight = minimumImageHeight
	}

	canvas := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	textDrawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: fontFace,
	}
	baselineOffset := fontFace.Metrics().Ascent.Ceil()

	headerLines := []string{
		fmt.Sprintf(imageHeaderTitleFormat, utils.FormatTimestamp(renderer.now())),
		fmt.Sprintf(imageHeaderStatsFormat, statistics.Folders, statistics.Files, utils.FormatSize(statistics.TotalSize)),
	}

	verticalOffset := imageMarginTop
	for _, headerLine := range headerLines {
		textDrawer.Dot = fixed.P(imageMarginLeft, verticalOffset+baselineOffset)
		textDrawer.DrawString(headerLine)
		verticalOffset += lineHeight
	}
	verticalOffset += headerBodyGap

	for _, line := range lines {
		textDrawer.Dot = fixed.P(imageMarginLeft, verticalOffset+baselineOffset)
		textDrawer.DrawString(line)
		verticalOffset += lineHeight
	}

	return png.Encode(writer, canvas)
}

// loadFace probes the configured font candidates and falls back to the
// embedded Go monospace font.
func (renderer *ImageRenderer) loadFace(fontSize int) (font.Face, error) {
	faceOptions := &opentype.FaceOptions{
		Size:    float64(fontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	}

	candidates := renderer.FontCandidates
	if candidates == nil {
		candidates = defaultFontCandidates
	}
	for _, candidatePath := range candidates {
		fontBytes, readError := os.ReadFile(candidatePath)
		if readError != nil {
			continue
		}
		parsedFont, parseError := opentype.Parse(fontBytes)
		if parseError != nil {
			continue
		}
		if fontFace, faceError := opentype.NewFace(parsedFont, faceOptions); faceError == nil {
			return fontFace, nil
		}
	}

	embeddedFont, parseError := opentype.Parse(gomono.TTF)
	if parseError != nil {
		return nil, fmt.Errorf("parsing embedded font: %w", parseError)
	}
	return opentype.NewFace(embeddedFont, faceOptions)
}

func (renderer *ImageRenderer) now() time.Time {
	if renderer.Clock != nil {
		return renderer.Clock()
	}
	return time.Now()
}
