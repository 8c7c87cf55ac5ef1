// Package tree contains the recursive traversal that turns a directory
// hierarchy into an ordered sequence of display lines plus statistics.
package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hanshendrickx/treegen/internal/filter"
	"github.com/hanshendrickx/treegen/internal/icons"
	"github.com/hanshendrickx/treegen/internal/styles"
	"github.com/hanshendrickx/treegen/internal/types"
	"github.com/hanshendrickx/treegen/internal/utils"
)

const (
	// warningReadDirectoryFormat is used when a directory listing fails and the subtree degrades to empty.
	warningReadDirectoryFormat = "skipping unreadable directory %s: %v"
	// warningStatEntryFormat is used when file information cannot be retrieved.
	warningStatEntryFormat = "unable to stat %s: %v"

	// errorAbsolutePathFormat is used when the absolute root path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// truncationLineFormat is the synthetic line appended after a truncated file list.
	truncationLineFormat = "%s... (%d more files)"

	directorySuffix = "/"
)

// Builder performs one traversal per Generate call. The line slice and the
// statistics accumulator are owned exclusively by the running call.
type Builder struct {
	configuration types.TreeConfiguration
	logger        *zap.Logger

	style        styles.Style
	iconResolver *icons.Resolver
	entryFilter  *filter.EntryFilter

	lines      []string
	statistics types.TreeStatistics
}

// NewBuilder constructs a Builder for the given configuration.
// Unknown style or icon-set names silently fall back to the minimal defaults.
func NewBuilder(configuration types.TreeConfiguration, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		configuration: configuration,
		logger:        logger,
		style:         styles.Lookup(configuration.StyleName),
		iconResolver:  icons.NewResolver(configuration.IconSetName),
		entryFilter: &filter.EntryFilter{
			ShowHidden:        configuration.ShowHidden,
			IncludeCategories: configuration.IncludeCategories,
			ExcludePatterns:   configuration.ExcludePatterns,
		},
	}
}

// Generate traverses rootPath and returns the ordered display lines together
// with the final statistics. A missing root yields a PathNotFoundError and no
// partial output.
func (builder *Builder) Generate(rootPath string) ([]string, types.TreeStatistics, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, types.TreeStatistics{}, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	if _, statError := os.Stat(absoluteRootPath); statError != nil {
		return nil, types.TreeStatistics{}, &types.PathNotFoundError{Path: rootPath}
	}

	builder.lines = nil
	builder.statistics = types.TreeStatistics{}

	rootLine := builder.iconResolver.Resolve(true, "", true) + " " + filepath.Base(absoluteRootPath) + directorySuffix
	if builder.configuration.ShowSize {
		rootLine += fmt.Sprintf(" (%s)", utils.FormatSize(builder.recursiveSize(absoluteRootPath)))
	}
	builder.lines = append(builder.lines, rootLine)
	builder.statistics.Folders++

	builder.visit(absoluteRootPath, "", 0)

	return builder.lines, builder.statistics, nil
}

// visit renders one directory level and recurses into its visible subdirectories.
func (builder *Builder) visit(directoryPath string, prefix string, depth int) {
	if depth >= builder.configuration.MaxDepth {
		return
	}

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		// Access failures degrade the subtree to an empty listing.
		builder.logger.Warn(fmt.Sprintf(warningReadDirectoryFormat, directoryPath, readDirectoryError))
		return
	}

	var visibleEntries []os.DirEntry
	for _, directoryEntry := range directoryEntries {
		if builder.entryFilter.Include(directoryEntry.Name(), directoryEntry.IsDir()) {
			visibleEntries = append(visibleEntries, directoryEntry)
		}
	}

	builder.sortEntries(visibleEntries)

	var directories []os.DirEntry
	var files []os.DirEntry
	for _, directoryEntry := range visibleEntries {
		if directoryEntry.IsDir() {
			directories = append(directories, directoryEntry)
		} else {
			files = append(files, directoryEntry)
		}
	}

	filesTruncated := false
	hiddenFileCount := 0
	maximumFiles := builder.configuration.MaxFilesPerFolder
	if maximumFiles > 0 && len(files) > maximumFiles {
		hiddenFileCount = len(files) - maximumFiles
		files = files[:maximumFiles]
		filesTruncated = true
		builder.statistics.TruncatedFolders++
	}

	// Directories always precede files at a given level, even when the
	// sort-dirs-first flag is off. Kept for output compatibility.
	entriesToShow := append(directories, files...)

	for entryIndex, directoryEntry := range entriesToShow {
		isLastEntry := entryIndex == len(entriesToShow)-1 && !filesTruncated

		currentPrefix := prefix + builder.style.Junction
		childPrefix := prefix + builder.style.Vertical
		if isLastEntry {
			currentPrefix = prefix + builder.style.Corner
			childPrefix = prefix + builder.style.Space
		}

		entryName := directoryEntry.Name()
		isKey := directoryEntry.IsDir() && icons.IsKeyDirectory(entryName)
		entryIcon := builder.iconResolver.Resolve(directoryEntry.IsDir(), filepath.Ext(entryName), isKey)
		line := currentPrefix + entryIcon + " " + entryName

		if directoryEntry.IsDir() {
			line += directorySuffix
			builder.statistics.Folders++
		} else {
			builder.statistics.Files++
			entrySize := builder.entrySize(directoryPath, directoryEntry)
			builder.statistics.TotalSize += entrySize
			if builder.configuration.ShowSize {
				line += fmt.Sprintf(" (%s)", utils.FormatSize(entrySize))
			}
		}

		builder.lines = append(builder.lines, line)

		if directoryEntry.IsDir() {
			builder.visit(filepath.Join(directoryPath, entryName), childPrefix, depth+1)
		}
	}

	if filesTruncated {
		truncationPrefix := prefix + builder.style.Junction
		if len(entriesToShow) > 0 {
			truncationPrefix = prefix + builder.style.Corner
		}
		builder.lines = append(builder.lines, fmt.Sprintf(truncationLineFormat, truncationPrefix, hiddenFileCount))
	}
}

// sortEntries orders entries case-insensitively by name, with directories
// before files when the configuration asks for it.
func (builder *Builder) sortEntries(entries []os.DirEntry) {
	if builder.configuration.SortDirsFirst {
		sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
			firstEntry, secondEntry := entries[firstIndex], entries[secondIndex]
			if firstEntry.IsDir() != secondEntry.IsDir() {
				return firstEntry.IsDir()
			}
			return strings.ToLower(firstEntry.Name()) < strings.ToLower(secondEntry.Name())
		})
		return
	}
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		return strings.ToLower(entries[firstIndex].Name()) < strings.ToLower(entries[secondIndex].Name())
	})
}

// entrySize returns the file size, treating stat failures as zero.
func (builder *Builder) entrySize(directoryPath string, directoryEntry os.DirEntry) int64 {
	entryInfo, infoError := directoryEntry.Info()
	if infoError != nil {
		builder.logger.Warn(fmt.Sprintf(warningStatEntryFormat, filepath.Join(directoryPath, directoryEntry.Name()), infoError))
		return 0
	}
	return entryInfo.Size()
}

// recursiveSize sums the sizes of every file under rootPath. The total is not
// bounded by the configured depth; unreadable entries contribute nothing.
func (builder *Builder) recursiveSize(rootPath string) int64 {
	var totalSize int64
	_ = filepath.WalkDir(rootPath, func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}
		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			return nil
		}
		totalSize += entryInfo.Size()
		return nil
	})
	return totalSize
}
