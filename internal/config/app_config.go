// Package config discovers and merges treegen configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hanshendrickx/treegen/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds file-provided defaults for the command line.
// Pointer fields distinguish "unset" from explicit zero values so a local file
// can override a global one field by field.
type ApplicationConfiguration struct {
	Style             string   `mapstructure:"style"`
	Icons             string   `mapstructure:"icons"`
	Depth             *int     `mapstructure:"depth"`
	ShowSize          *bool    `mapstructure:"show_size"`
	ShowHidden        *bool    `mapstructure:"show_hidden"`
	SortDirsFirst     *bool    `mapstructure:"sort_dirs_first"`
	IncludeCategories []string `mapstructure:"include_categories"`
	ExcludePatterns   []string `mapstructure:"exclude_patterns"`
	MaxFiles          *int     `mapstructure:"max_files"`
	FontSize          *int     `mapstructure:"font_size"`
	PageSize          string   `mapstructure:"page_size"`
	Copy              *bool    `mapstructure:"copy"`
}

// LoadApplicationConfiguration loads configuration from the global and local files.
// The local file overrides the global one; both are optional.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInfo, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if override.Depth != nil {
		result.Depth = cloneInt(override.Depth)
	}
	if override.ShowSize != nil {
		result.ShowSize = cloneBool(override.ShowSize)
	}
	if override.ShowHidden != nil {
		result.ShowHidden = cloneBool(override.ShowHidden)
	}
	if override.SortDirsFirst != nil {
		result.SortDirsFirst = cloneBool(override.SortDirsFirst)
	}
	if len(override.IncludeCategories) > 0 {
		result.IncludeCategories = append([]string{}, override.IncludeCategories...)
	}
	if len(override.ExcludePatterns) > 0 {
		result.ExcludePatterns = append([]string{}, override.ExcludePatterns...)
	}
	if override.MaxFiles != nil {
		result.MaxFiles = cloneInt(override.MaxFiles)
	}
	if override.FontSize != nil {
		result.FontSize = cloneInt(override.FontSize)
	}
	if override.PageSize != "" {
		result.PageSize = override.PageSize
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
