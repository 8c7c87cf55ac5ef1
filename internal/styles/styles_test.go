package styles_test

import (
	"testing"

	"github.com/hanshendrickx/treegen/internal/styles"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name             string
		styleName        string
		expectedJunction string
		expectedCorner   string
	}{
		{name: "simple", styleName: "simple", expectedJunction: "├─ ", expectedCorner: "└─ "},
		{name: "professional shares unicode glyphs", styleName: "professional", expectedJunction: "├─ ", expectedCorner: "└─ "},
		{name: "ascii", styleName: "ascii", expectedJunction: "+- ", expectedCorner: "+- "},
		{name: "unknown falls back to simple", styleName: "baroque", expectedJunction: "├─ ", expectedCorner: "└─ "},
		{name: "case insensitive", styleName: "ASCII", expectedJunction: "+- ", expectedCorner: "+- "},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			style := styles.Lookup(testCase.styleName)
			if style.Junction != testCase.expectedJunction {
				t.Fatalf("expected junction %q, got %q", testCase.expectedJunction, style.Junction)
			}
			if style.Corner != testCase.expectedCorner {
				t.Fatalf("expected corner %q, got %q", testCase.expectedCorner, style.Corner)
			}
		})
	}
}
