// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanshendrickx/treegen/internal/config"
	"github.com/hanshendrickx/treegen/internal/filter"
	"github.com/hanshendrickx/treegen/internal/render"
	"github.com/hanshendrickx/treegen/internal/services/clipboard"
	"github.com/hanshendrickx/treegen/internal/tree"
	"github.com/hanshendrickx/treegen/internal/types"
	"github.com/hanshendrickx/treegen/internal/utils"
)

const (
	outputFlagName            = "output"
	outputFlagShorthand       = "o"
	styleFlagName             = "style"
	iconsFlagName             = "icons"
	depthFlagName             = "depth"
	showSizeFlagName          = "show-size"
	showHiddenFlagName        = "show-hidden"
	noSortDirsFlagName        = "no-sort-dirs"
	includeCategoriesFlagName = "include-categories"
	excludePatternsFlagName   = "exclude-patterns"
	maxFilesFlagName          = "max-files"
	fontSizeFlagName          = "font-size"
	pageSizeFlagName          = "page-size"
	copyFlagName              = "copy"
	configFlagName            = "config"
	versionFlagName           = "version"

	outputFlagDescription            = "output file (extension selects the format: .png, .pdf, anything else text)"
	styleFlagDescription             = "tree drawing style (simple, professional, artisanal, ascii)"
	iconsFlagDescription             = "icon set (simple, professional, artisanal)"
	depthFlagDescription             = "maximum depth to traverse (1-10)"
	showSizeFlagDescription          = "show file sizes"
	showHiddenFlagDescription        = "include hidden files and folders"
	noSortDirsFlagDescription        = "do not sort directories first"
	includeCategoriesFlagDescription = "only include specific file categories"
	excludePatternsFlagDescription   = "exclude entries containing these patterns"
	maxFilesFlagDescription          = "maximum files to show per folder (0 = unlimited)"
	fontSizeFlagDescription          = "font size for PNG output"
	pageSizeFlagDescription          = "page size for PDF output (A4, letter)"
	copyFlagDescription              = "copy the rendered text tree to the clipboard"
	configFlagDescription            = "path to a configuration file"
	versionFlagDescription           = "display application version"

	versionTemplate      = utils.ApplicationName + " version: %s\n"
	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "generate annotated folder tree visualizations"
	rootLongDescription  = `treegen renders a directory's structure as a visually annotated tree.
The tree is written to stdout, or to a file whose extension selects the
output medium: .png for a raster image, .pdf for a paginated document,
anything else for plain text with a header and summary block.`
	rootUsageExample = `  # Print the tree of the current directory
  treegen

  # Five levels deep with sizes, saved as PNG
  treegen /path/to/project --depth 5 --show-size -o tree.png

  # Only code and image files, excluding generated folders
  treegen . --include-categories code,images --exclude-patterns node_modules`

	defaultPath     = "."
	defaultStyle    = "simple"
	defaultIconSet  = "simple"
	defaultDepth    = 3
	minimumDepth    = 1
	maximumDepth    = 10
	defaultPageSize = "A4"

	pngExtension = ".png"
	pdfExtension = ".pdf"

	invalidDepthMessageFormat    = "invalid depth %d: must be between %d and %d"
	invalidPageSizeMessageFormat = "invalid page size '%s': must be A4 or letter"
	unknownCategoryWarningFormat = "unknown category '%s' matches no files (known: %s)"
	renderFailureFormat          = "rendering %s output to %s: %w"
	createOutputFailureFormat    = "creating output file %s: %w"
	clipboardFailureFormat       = "copying tree to clipboard: %w"

	savedMessageFormat = "Tree saved as %s: %s\n"

	statisticsHeading         = "Statistics:"
	statisticsFoldersFormat   = "  Folders: %d"
	statisticsFilesFormat     = "  Files: %d"
	statisticsSizeFormat      = "  Total Size: %s"
	statisticsTruncatedFormat = "  Folders with truncated file lists: %d"

	formatLabelText     = "text"
	formatLabelImage    = "PNG"
	formatLabelDocument = "PDF"
)

// commandOptions stores the raw flag values for one invocation.
type commandOptions struct {
	outputPath        string
	styleName         string
	iconSetName       string
	maximumDepth      int
	showSize          bool
	showHidden        bool
	noSortDirs        bool
	includeCategories []string
	excludePatterns   []string
	maximumFiles      int
	fontSize          int
	pageSize          string
	copyToClipboard   bool
	configPath        string
}

// Execute runs the treegen application.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(logger, clipboard.NewSystemClipboard())
	return rootCommand.Execute()
}

// NewRootCommand builds the root cobra command.
func NewRootCommand(logger *zap.Logger, copier clipboard.Copier) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	var showVersion bool
	var options commandOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := defaultPath
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			return runGeneration(command, rootPath, options, logger, copier)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	flagSet := rootCommand.Flags()
	flagSet.StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	flagSet.StringVar(&options.styleName, styleFlagName, defaultStyle, styleFlagDescription)
	flagSet.StringVar(&options.iconSetName, iconsFlagName, defaultIconSet, iconsFlagDescription)
	flagSet.IntVar(&options.maximumDepth, depthFlagName, defaultDepth, depthFlagDescription)
	flagSet.BoolVar(&options.showSize, showSizeFlagName, false, showSizeFlagDescription)
	flagSet.BoolVar(&options.showHidden, showHiddenFlagName, false, showHiddenFlagDescription)
	flagSet.BoolVar(&options.noSortDirs, noSortDirsFlagName, false, noSortDirsFlagDescription)
	flagSet.StringSliceVar(&options.includeCategories, includeCategoriesFlagName, nil, includeCategoriesFlagDescription)
	flagSet.StringArrayVar(&options.excludePatterns, excludePatternsFlagName, nil, excludePatternsFlagDescription)
	flagSet.IntVar(&options.maximumFiles, maxFilesFlagName, 0, maxFilesFlagDescription)
	flagSet.IntVar(&options.fontSize, fontSizeFlagName, render.DefaultFontSize, fontSizeFlagDescription)
	flagSet.StringVar(&options.pageSize, pageSizeFlagName, defaultPageSize, pageSizeFlagDescription)
	flagSet.BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)

	return rootCommand
}

// runGeneration resolves configuration, builds the tree, and dispatches to the
// renderer selected by the output path extension.
func runGeneration(command *cobra.Command, rootPath string, options commandOptions, logger *zap.Logger, copier clipboard.Copier) error {
	options = applyFileConfiguration(command, options, logger)

	if options.maximumDepth < minimumDepth || options.maximumDepth > maximumDepth {
		return fmt.Errorf(invalidDepthMessageFormat, options.maximumDepth, minimumDepth, maximumDepth)
	}
	if _, pageSizeError := normalizePageSize(options.pageSize); pageSizeError != nil {
		return pageSizeError
	}
	warnUnknownCategories(options.includeCategories, logger)

	treeConfiguration := types.TreeConfiguration{
		StyleName:         options.styleName,
		IconSetName:       options.iconSetName,
		MaxDepth:          options.maximumDepth,
		MaxFilesPerFolder: options.maximumFiles,
		ShowSize:          options.showSize,
		ShowHidden:        options.showHidden,
		SortDirsFirst:     !options.noSortDirs,
		IncludeCategories: options.includeCategories,
		ExcludePatterns:   options.excludePatterns,
	}

	treeBuilder := tree.NewBuilder(treeConfiguration, logger)
	lines, statistics, generateError := treeBuilder.Generate(rootPath)
	if generateError != nil {
		return generateError
	}

	if options.copyToClipboard && copier != nil {
		if copyError := copier.Copy(strings.Join(lines, "\n")); copyError != nil {
			return fmt.Errorf(clipboardFailureFormat, copyError)
		}
	}

	if options.outputPath == "" {
		for _, line := range lines {
			fmt.Fprintln(command.OutOrStdout(), line)
		}
	} else {
		absoluteRootPath, absoluteError := filepath.Abs(rootPath)
		if absoluteError != nil {
			absoluteRootPath = rootPath
		}
		if saveError := saveOutput(command.OutOrStdout(), options, absoluteRootPath, lines, statistics); saveError != nil {
			return saveError
		}
	}

	printStatistics(command, statistics)
	return nil
}

// applyFileConfiguration overlays configuration-file defaults onto flags the
// user did not set explicitly. A broken configuration file is reported as a
// warning and otherwise ignored.
func applyFileConfiguration(command *cobra.Command, options commandOptions, logger *zap.Logger) commandOptions {
	fileConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
	if loadError != nil {
		logger.Warn(loadError.Error())
		return options
	}

	flagSet := command.Flags()
	if !flagSet.Changed(styleFlagName) && fileConfiguration.Style != "" {
		options.styleName = fileConfiguration.Style
	}
	if !flagSet.Changed(iconsFlagName) && fileConfiguration.Icons != "" {
		options.iconSetName = fileConfiguration.Icons
	}
	if !flagSet.Changed(depthFlagName) && fileConfiguration.Depth != nil {
		options.maximumDepth = *fileConfiguration.Depth
	}
	if !flagSet.Changed(showSizeFlagName) && fileConfiguration.ShowSize != nil {
		options.showSize = *fileConfiguration.ShowSize
	}
	if !flagSet.Changed(showHiddenFlagName) && fileConfiguration.ShowHidden != nil {
		options.showHidden = *fileConfiguration.ShowHidden
	}
	if !flagSet.Changed(noSortDirsFlagName) && fileConfiguration.SortDirsFirst != nil {
		options.noSortDirs = !*fileConfiguration.SortDirsFirst
	}
	if !flagSet.Changed(includeCategoriesFlagName) && len(fileConfiguration.IncludeCategories) > 0 {
		options.includeCategories = fileConfiguration.IncludeCategories
	}
	if !flagSet.Changed(excludePatternsFlagName) && len(fileConfiguration.ExcludePatterns) > 0 {
		options.excludePatterns = fileConfiguration.ExcludePatterns
	}
	if !flagSet.Changed(maxFilesFlagName) && fileConfiguration.MaxFiles != nil {
		options.maximumFiles = *fileConfiguration.MaxFiles
	}
	if !flagSet.Changed(fontSizeFlagName) && fileConfiguration.FontSize != nil {
		options.fontSize = *fileConfiguration.FontSize
	}
	if !flagSet.Changed(pageSizeFlagName) && fileConfiguration.PageSize != "" {
		options.pageSize = fileConfiguration.PageSize
	}
	if !flagSet.Changed(copyFlagName) && fileConfiguration.Copy != nil {
		options.copyToClipboard = *fileConfiguration.Copy
	}
	return options
}

// DetectRenderFormat maps an output path to the renderer format its extension selects.
func DetectRenderFormat(outputPath string) string {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case pngExtension:
		return types.FormatImage
	case pdfExtension:
		return types.FormatDocument
	default:
		return types.FormatText
	}
}

// saveOutput writes lines and statistics to the output path using the
// renderer its extension selects, confirming the save on messageWriter.
func saveOutput(messageWriter io.Writer, options commandOptions, absoluteRootPath string, lines []string, statistics types.TreeStatistics) error {
	renderFormat := DetectRenderFormat(options.outputPath)

	outputFile, createError := os.Create(options.outputPath)
	if createError != nil {
		return fmt.Errorf(createOutputFailureFormat, options.outputPath, createError)
	}
	defer outputFile.Close()

	var renderError error
	var formatLabel string
	switch renderFormat {
	case types.FormatImage:
		formatLabel = formatLabelImage
		imageRenderer := &render.ImageRenderer{FontSize: options.fontSize}
		renderError = imageRenderer.Render(outputFile, lines, statistics)
	case types.FormatDocument:
		formatLabel = formatLabelDocument
		normalizedPageSize, _ := normalizePageSize(options.pageSize)
		documentRenderer := &render.DocumentRenderer{PageSize: normalizedPageSize}
		renderError = documentRenderer.Render(outputFile, lines, statistics)
	default:
		formatLabel = formatLabelText
		textRenderer := &render.TextRenderer{IncludeHeader: true, RootPath: absoluteRootPath}
		renderError = textRenderer.Render(outputFile, lines, statistics)
	}
	if renderError != nil {
		return fmt.Errorf(renderFailureFormat, formatLabel, options.outputPath, renderError)
	}

	fmt.Fprintf(messageWriter, savedMessageFormat, formatLabel, options.outputPath)
	return nil
}

// normalizePageSize validates the page size flag and maps it to a preset name.
func normalizePageSize(pageSize string) (string, error) {
	switch strings.ToLower(pageSize) {
	case "a4":
		return types.PageSizeA4, nil
	case "letter":
		return types.PageSizeLetter, nil
	default:
		return "", fmt.Errorf(invalidPageSizeMessageFormat, pageSize)
	}
}

// warnUnknownCategories logs categories outside the fixed vocabulary; they
// match nothing rather than failing the run.
func warnUnknownCategories(categories []string, logger *zap.Logger) {
	knownCategories := filter.CategoryNames()
	for _, categoryName := range categories {
		known := false
		for _, knownName := range knownCategories {
			if strings.EqualFold(categoryName, knownName) {
				known = true
				break
			}
		}
		if !known {
			logger.Warn(fmt.Sprintf(unknownCategoryWarningFormat, categoryName, strings.Join(knownCategories, ", ")))
		}
	}
}

// printStatistics writes the post-run statistics block to the command output.
func printStatistics(command *cobra.Command, statistics types.TreeStatistics) {
	writer := command.OutOrStdout()
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, statisticsHeading)
	fmt.Fprintf(writer, statisticsFoldersFormat+"\n", statistics.Folders)
	fmt.Fprintf(writer, statisticsFilesFormat+"\n", statistics.Files)
	fmt.Fprintf(writer, statisticsSizeFormat+"\n", utils.FormatSize(statistics.TotalSize))
	if statistics.TruncatedFolders > 0 {
		fmt.Fprintf(writer, statisticsTruncatedFormat+"\n", statistics.TruncatedFolders)
	}
}
