package common

import (
	"os"

	"github.com/repodocs/repodoc/logger"
	"gopkg.in/yaml.v3"
)

// Default providers understood by the documenter
const (
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Gather struct {
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

type Settings struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Language    string `yaml:"language"`
	AnalyticsDB string `yaml:"analytics_db"`
	Gather      Gather `yaml:"gather"`
}

// WithDefaultSettings returns the settings used when no config file is present
func WithDefaultSettings() Settings {
	return Settings{
		Provider:    ProviderClaude,
		Language:    "en-US",
		AnalyticsDB: "analytics.db",
		Gather: Gather{
			Extensions:  []string{".js", ".jsx", ".ts", ".tsx", ".json", ".yaml", ".yml", ".md", ".py"},
			ExcludeDirs: []string{".git", "node_modules", "dist", "build", "vendor"},
		},
	}
}

// WithYamlFile loads settings from .repodoc.yml (or .repodoc.yaml) in the
// working directory, falling back to defaults for anything unset
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	for _, name := range []string{".repodoc.yml", ".repodoc.yaml"} {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		logger.Debug("No settings file found, using defaults")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Could not read settings file %s: %v", filePath, err)
		return settings
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		logger.Warnf("Could not parse settings file %s: %v", filePath, err)
		return WithDefaultSettings()
	}

	logger.Debugf("Loaded settings from %s", filePath)
	return settings
}

// HasExtension reports whether the file name carries one of the gathered
// extensions
func (g Gather) HasExtension(name string) bool {
	for _, ext := range g.Extensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsExcludedDir reports whether the directory name is skipped during walks
func (g Gather) IsExcludedDir(name string) bool {
	for _, dir := range g.ExcludeDirs {
		if name == dir {
			return true
		}
	}
	return false
}
