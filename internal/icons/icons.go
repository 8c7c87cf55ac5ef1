// Package icons maps file extensions and directory kinds to display glyphs.
package icons

import "strings"

const (
	// SetNameMinimal selects the ASCII-safe icon set.
	SetNameMinimal = "simple"
	// SetNameBracketed selects the bracketed-label icon set.
	SetNameBracketed = "professional"
	// SetNameDecorative selects the decorative emoji icon set.
	SetNameDecorative = "artisanal"

	folderKey    = "folder"
	keyFolderKey = "key_folder"
	fileKey      = "file"

	fallbackFolderGlyph    = "📁"
	fallbackKeyFolderGlyph = "📂"
	fallbackFileGlyph      = "📄"
)

// Set maps lowercase extensions (with leading dot) and the special keys
// "folder", "key_folder", "file", and "unknown" to glyph strings.
type Set map[string]string

var decorativeSet = Set{
	".txt": "📄", ".md": "📝", ".pdf": "📄", ".doc": "📃", ".docx": "📃",
	".rtf": "📄", ".odt": "📄", ".pages": "📄",

	".xls": "📊", ".xlsx": "📊", ".csv": "📊", ".ods": "📊",

	".ppt": "📊", ".pptx": "📊", ".odp": "📊", ".key": "📊",

	".jpg": "🖼️", ".jpeg": "🖼️", ".png": "🖼️", ".gif": "🖼️", ".bmp": "🖼️",
	".svg": "🎨", ".ico": "🖼️", ".tiff": "🖼️", ".webp": "🖼️",

	".mp3": "🎵", ".wav": "🎵", ".flac": "🎵", ".aac": "🎵", ".ogg": "🎵",
	".m4a": "🎵", ".wma": "🎵",

	".mp4": "🎬", ".avi": "🎬", ".mkv": "🎬", ".mov": "🎬", ".wmv": "🎬",
	".flv": "🎬", ".webm": "🎬", ".m4v": "🎬",

	".py": "🐍", ".js": "📜", ".html": "🌐", ".css": "🎨", ".php": "🐘",
	".java": "☕", ".cpp": "⚙️", ".c": "⚙️", ".cs": "🔷", ".rb": "💎",
	".go": "🐹", ".rs": "🦀", ".swift": "🐦", ".kt": "🅺", ".scala": "⚖️",
	".r": "📈", ".sql": "🗄️", ".sh": "💻", ".bat": "⚙️", ".ps1": "💻",

	".ipynb": "📓", ".json": "🔧", ".yml": "🔧", ".yaml": "🔧",
	".xml": "🔧", ".ini": "🔧", ".conf": "🔧", ".config": "🔧", ".toml": "🔧",

	".zip": "🗜️", ".rar": "🗜️", ".7z": "🗜️", ".tar": "🗜️", ".gz": "🗜️",
	".bz2": "🗜️", ".xz": "🗜️",

	".exe": "⚙️", ".msi": "📦", ".deb": "📦", ".rpm": "📦", ".dmg": "📦",
	".app": "📱", ".apk": "📱",

	folderKey: "📁", keyFolderKey: "📂", fileKey: "📄", "unknown": "❓",
}

var minimalSet = Set{
	".txt": "T", ".md": "M", ".pdf": "P", ".doc": "D", ".docx": "D",
	".jpg": "I", ".jpeg": "I", ".png": "I", ".gif": "G", ".svg": "S",
	".mp3": "A", ".wav": "A", ".mp4": "V", ".avi": "V",
	".py": "P", ".js": "J", ".html": "H", ".css": "C",
	".zip": "Z", ".rar": "R",
	folderKey: "+", fileKey: "-", "unknown": "?",
}

var bracketedSet = Set{
	".txt": "[TXT]", ".md": "[MD]", ".pdf": "[PDF]", ".doc": "[DOC]", ".docx": "[DOC]",
	".xls": "[XLS]", ".xlsx": "[XLS]", ".csv": "[CSV]",
	".jpg": "[IMG]", ".jpeg": "[IMG]", ".png": "[IMG]", ".gif": "[GIF]",
	".mp3": "[MP3]", ".wav": "[WAV]", ".mp4": "[MP4]", ".avi": "[AVI]",
	".py": "[PY]", ".js": "[JS]", ".html": "[HTM]", ".css": "[CSS]",
	".zip": "[ZIP]", ".rar": "[RAR]",
	folderKey: "[DIR]", fileKey: "[   ]", "unknown": "[?]",
}

var iconSetsByName = map[string]Set{
	SetNameMinimal:    minimalSet,
	SetNameBracketed:  bracketedSet,
	SetNameDecorative: decorativeSet,
}

// keyDirectoryNames is the closed vocabulary of conventional project-structure
// directory names rendered with the key-folder glyph. It is intentionally not
// configurable; renaming entries would change output compatibility.
var keyDirectoryNames = map[string]struct{}{
	"src": {}, "source": {}, "lib": {}, "libs": {}, "app": {}, "apps": {},
	"components": {}, "pages": {}, "views": {}, "models": {}, "controllers": {},
	"services": {}, "utils": {}, "helpers": {}, "config": {}, "configs": {},
	"settings": {}, "static": {}, "assets": {}, "resources": {}, "public": {},
	"private": {}, "data": {}, "database": {}, "db": {}, "migrations": {},
	"schemas": {}, "api": {}, "apis": {}, "routes": {}, "middleware": {},
	"templates": {}, "layouts": {}, "partials": {}, "includes": {},
	"tests": {}, "test": {}, "spec": {}, "specs": {}, "docs": {},
	"documentation": {}, "examples": {}, "samples": {}, "demos": {},
	"tutorials": {}, "guides": {}, "scripts": {}, "tools": {}, "bin": {},
	"build": {}, "dist": {}, "output": {}, "notebooks": {}, "helpfiles": {},
}

// Resolver looks up display glyphs in a named icon set.
type Resolver struct {
	activeSet Set
}

// NewResolver returns a resolver for the named icon set.
// An unrecognized set name falls back to the minimal set.
func NewResolver(setName string) *Resolver {
	selectedSet, setKnown := iconSetsByName[strings.ToLower(setName)]
	if !setKnown {
		selectedSet = minimalSet
	}
	return &Resolver{activeSet: selectedSet}
}

// Resolve returns the glyph for an entry. Directories resolve through the
// folder or key-folder key; files resolve by lowercased extension with the
// set's file glyph as the first fallback and a resolver-level glyph as the last.
func (resolver *Resolver) Resolve(entryIsDirectory bool, extension string, isKeyDirectory bool) string {
	if entryIsDirectory {
		if isKeyDirectory {
			return resolver.lookup(keyFolderKey, fallbackKeyFolderGlyph)
		}
		return resolver.lookup(folderKey, fallbackFolderGlyph)
	}
	if glyph, known := resolver.activeSet[strings.ToLower(extension)]; known {
		return glyph
	}
	return resolver.lookup(fileKey, fallbackFileGlyph)
}

func (resolver *Resolver) lookup(specialKey string, fallbackGlyph string) string {
	if glyph, known := resolver.activeSet[specialKey]; known {
		return glyph
	}
	return fallbackGlyph
}

// IsKeyDirectory reports whether the directory name belongs to the fixed,
// case-insensitive key-directory vocabulary.
func IsKeyDirectory(directoryName string) bool {
	_, isKey := keyDirectoryNames[strings.ToLower(directoryName)]
	return isKey
}
