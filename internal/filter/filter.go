// Package filter decides which filesystem entries survive hidden-file,
// exclude-pattern, and category-inclusion rules.
package filter

import (
	"path/filepath"
	"strings"
)

// hiddenNamePrefix marks hidden entries on every supported platform.
const hiddenNamePrefix = "."

// fileCategories maps a category name to the set of extensions it covers.
// Unknown category names match nothing.
var fileCategories = map[string]map[string]struct{}{
	"documents": {".txt": {}, ".md": {}, ".pdf": {}, ".doc": {}, ".docx": {}, ".rtf": {}, ".odt": {}},
	"images":    {".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".svg": {}, ".ico": {}, ".tiff": {}, ".webp": {}},
	"audio":     {".mp3": {}, ".wav": {}, ".flac": {}, ".aac": {}, ".ogg": {}, ".m4a": {}, ".wma": {}},
	"video":     {".mp4": {}, ".avi": {}, ".mkv": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".webm": {}, ".m4v": {}},
	"code":      {".py": {}, ".js": {}, ".html": {}, ".css": {}, ".php": {}, ".java": {}, ".cpp": {}, ".c": {}, ".cs": {}, ".rb": {}},
	"archives":  {".zip": {}, ".rar": {}, ".7z": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}},
}

// CategoryNames returns the fixed vocabulary of inclusion category names.
func CategoryNames() []string {
	return []string{"archives", "audio", "code", "documents", "images", "video"}
}

// EntryFilter evaluates inclusion rules against directory entry names.
// Exclusion patterns are literal substrings of the entry name and win over
// every inclusion rule. Category rules apply to files only, so directory
// structure stays visible above filtered-out leaves.
type EntryFilter struct {
	ShowHidden        bool
	IncludeCategories []string
	ExcludePatterns   []string
}

// Include reports whether the named entry should appear in the tree.
func (entryFilter *EntryFilter) Include(entryName string, entryIsDirectory bool) bool {
	if !entryFilter.ShowHidden && strings.HasPrefix(entryName, hiddenNamePrefix) {
		return false
	}
	for _, excludePattern := range entryFilter.ExcludePatterns {
		if excludePattern != "" && strings.Contains(entryName, excludePattern) {
			return false
		}
	}
	if len(entryFilter.IncludeCategories) > 0 && !entryIsDirectory {
		extension := strings.ToLower(filepath.Ext(entryName))
		for _, categoryName := range entryFilter.IncludeCategories {
			if _, matches := fileCategories[strings.ToLower(categoryName)][extension]; matches {
				return true
			}
		}
		return false
	}
	return true
}
