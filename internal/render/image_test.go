package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/hanshendrickx/treegen/internal/render"
	"github.com/hanshendrickx/treegen/internal/types"
)

func TestImageRendererMinimumDimensions(t *testing.T) {
	renderer := &render.ImageRenderer{FontSize: 12, Clock: fixedClock}
	lines := []string{"📂 project/", "└─ - file"}

	var output bytes.Buffer
	if renderError := renderer.Render(&output, lines, types.TreeStatistics{Folders: 1, Files: 1}); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}

	decoded, decodeError := png.Decode(&output)
	if decodeError != nil {
		t.Fatalf("decoding rendered image: %v", decodeError)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 800 {
		t.Fatalf("expected minimum width 800, got %d", bounds.Dx())
	}
	if bounds.Dy() != 600 {
		t.Fatalf("expected minimum height 600, got %d", bounds.Dy())
	}
}

func TestImageRendererGrowsWithContent(t *testing.T) {
	fontSize := 12
	lineCount := 60
	lines := make([]string, 0, lineCount)
	for lineIndex := 0; lineIndex < lineCount; lineIndex++ {
		lines = append(lines, strings.Repeat("x", 200))
	}

	renderer := &render.ImageRenderer{FontSize: fontSize, Clock: fixedClock}
	var output bytes.Buffer
	if renderError := renderer.Render(&output, lines, types.TreeStatistics{}); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}

	decoded, decodeError := png.Decode(&output)
	if decodeError != nil {
		t.Fatalf("decoding rendered image: %v", decodeError)
	}
	bounds := decoded.Bounds()
	expectedWidth := 200 * (fontSize / 2)
	expectedHeight := lineCount*(fontSize+4) + 100
	if bounds.Dx() != expectedWidth {
		t.Fatalf("expected width %d, got %d", expectedWidth, bounds.Dx())
	}
	if bounds.Dy() != expectedHeight {
		t.Fatalf("expected height %d, got %d", expectedHeight, bounds.Dy())
	}
}

func TestImageRendererShortLinesLargeFont(t *testing.T) {
	// Width derives from the actual longest line, not a nominal minimum, so
	// short trees at large font sizes keep the 800 pixel floor.
	renderer := &render.ImageRenderer{FontSize: 40, Clock: fixedClock}
	var output bytes.Buffer
	if renderError := renderer.Render(&output, []string{"short"}, types.TreeStatistics{}); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}

	decoded, decodeError := png.Decode(&output)
	if decodeError != nil {
		t.Fatalf("decoding rendered image: %v", decodeError)
	}
	if width := decoded.Bounds().Dx(); width != 800 {
		t.Fatalf("expected minimum width 800, got %d", width)
	}
}

func TestImageRendererEmptyLineList(t *testing.T) {
	renderer := &render.ImageRenderer{FontSize: 40, Clock: fixedClock}
	var output bytes.Buffer
	if renderError := renderer.Render(&output, nil, types.TreeStatistics{}); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}

	decoded, decodeError := png.Decode(&output)
	if decodeError != nil {
		t.Fatalf("decoding rendered image: %v", decodeError)
	}
	// A nominal 50-rune line sizes the empty canvas.
	if width := decoded.Bounds().Dx(); width != 50*(40/2) {
		t.Fatalf("expected width 1000, got %d", width)
	}
	if height := decoded.Bounds().Dy(); height != 600 {
		t.Fatalf("expected minimum height 600, got %d", height)
	}
}

func TestImageRendererEmbeddedFontFallback(t *testing.T) {
	// Pointing the candidate list at a missing file forces the embedded face.
	renderer := &render.ImageRenderer{
		FontSize:       10,
		FontCandidates: []string{"/nonexistent/font.ttf"},
		Clock:          fixedClock,
	}
	var output bytes.Buffer
	if renderError := renderer.Render(&output, []string{"line"}, types.TreeStatistics{}); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}
	if output.Len() == 0 {
		t.Fatalf("expected non-empty PNG output")
	}
}
