package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hanshendrickx/treegen/internal/render"
	"github.com/hanshendrickx/treegen/internal/types"
)

var fixedClock = func() time.Time {
	return time.Date(2024, time.June, 1, 12, 30, 0, 0, time.UTC)
}

func TestTextRendererWithHeader(t *testing.T) {
	renderer := &render.TextRenderer{
		IncludeHeader: true,
		RootPath:      "/home/user/myproject",
		Clock:         fixedClock,
	}
	lines := []string{"📂 myproject/", "└─ M README.md"}
	statistics := types.TreeStatistics{Folders: 1, Files: 1, TotalSize: 1536}

	var output bytes.Buffer
	if renderError := renderer.Render(&output, lines, statistics); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}
	rendered := output.String()

	expectedFragments := []string{
		"MYPROJECT Project Tree Generated on 2024-06-01 12:30:00\n",
		"Root: /home/user/myproject\n",
		"(c) 2024 Hans Hendrickx - MIT License\n",
		"Professional Folder Tree Generator\n",
		"Project Structure Legend:\n",
		strings.Repeat("-", 80) + "\n",
		"📂 myproject/\n",
		"└─ M README.md\n",
		"Total Folders: 1\n",
		"Total Files: 1\n",
		"Total Size: 1.5 KB\n",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected output to contain %q, got:\n%s", fragment, rendered)
		}
	}
}

func TestTextRendererWithoutHeader(t *testing.T) {
	renderer := &render.TextRenderer{Clock: fixedClock}
	lines := []string{"first", "second"}

	var output bytes.Buffer
	if renderError := renderer.Render(&output, lines, types.TreeStatistics{}); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}
	expected := "first\nsecond\n"
	if output.String() != expected {
		t.Fatalf("expected %q, got %q", expected, output.String())
	}
}

func TestTextRendererIdempotence(t *testing.T) {
	renderer := &render.TextRenderer{
		IncludeHeader: true,
		RootPath:      "/tmp/project",
		Clock:         fixedClock,
	}
	lines := []string{"📂 project/"}
	statistics := types.TreeStatistics{Folders: 1}

	var firstOutput bytes.Buffer
	var secondOutput bytes.Buffer
	if renderError := renderer.Render(&firstOutput, lines, statistics); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}
	if renderError := renderer.Render(&secondOutput, lines, statistics); renderError != nil {
		t.Fatalf("unexpected error: %v", renderError)
	}
	if firstOutput.String() != secondOutput.String() {
		t.Fatalf("expected byte-identical output across renders")
	}
}
