// Package styles holds the line-drawing glyph tables used at each tree depth.
package styles

import "strings"

const (
	// StyleNameSimple is the default Unicode drawing style.
	StyleNameSimple = "simple"
	// StyleNameProfessional shares the Unicode glyphs of the simple style.
	StyleNameProfessional = "professional"
	// StyleNameArtisanal shares the Unicode glyphs of the simple style.
	StyleNameArtisanal = "artisanal"
	// StyleNameASCII draws the tree with ASCII-only glyphs.
	StyleNameASCII = "ascii"
)

// Style holds the four glyphs a traversal needs: the vertical continuation
// under a non-last ancestor, the junction before a non-last sibling, the
// corner before the last sibling, and the alignment space under a last ancestor.
type Style struct {
	Vertical string
	Junction string
	Corner   string
	Space    string
}

var unicodeStyle = Style{
	Vertical: "│ ",
	Junction: "├─ ",
	Corner:   "└─ ",
	Space:    "  ",
}

var asciiStyle = Style{
	Vertical: "| ",
	Junction: "+- ",
	Corner:   "+- ",
	Space:    "  ",
}

var stylesByName = map[string]Style{
	StyleNameSimple:       unicodeStyle,
	StyleNameProfessional: unicodeStyle,
	StyleNameArtisanal:    unicodeStyle,
	StyleNameASCII:        asciiStyle,
}

// Lookup returns the style registered under the given name.
// An unrecognized name falls back to the simple style.
func Lookup(styleName string) Style {
	if style, known := stylesByName[strings.ToLower(styleName)]; known {
		return style
	}
	return unicodeStyle
}
