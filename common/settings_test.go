package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWithDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	if settings.Provider != ProviderClaude {
		t.Errorf("Expected default provider to be %s, got %s", ProviderClaude, settings.Provider)
	}
	if settings.Language != "en-US" {
		t.Errorf("Expected default language to be en-US, got %s", settings.Language)
	}
	if settings.AnalyticsDB != "analytics.db" {
		t.Errorf("Expected default analytics db, got %s", settings.AnalyticsDB)
	}
	if len(settings.Gather.Extensions) == 0 {
		t.Error("Expected default extensions to be set")
	}
	if !settings.Gather.IsExcludedDir("node_modules") {
		t.Error("Expected node_modules to be excluded by default")
	}
}

func TestWithYamlFile(t *testing.T) {
	dir := t.TempDir()
	content := `provider: openai
model: gpt-4-turbo-preview
gather:
  extensions: [".go"]
  exclude_dirs: ["vendor"]
`
	if err := os.WriteFile(filepath.Join(dir, ".repodoc.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(wd)

	settings := WithYamlFile()

	if settings.Provider != ProviderOpenAI {
		t.Errorf("Expected provider openai, got %s", settings.Provider)
	}
	if settings.Model != "gpt-4-turbo-preview" {
		t.Errorf("Expected configured model, got %s", settings.Model)
	}
	if len(settings.Gather.Extensions) != 1 || settings.Gather.Extensions[0] != ".go" {
		t.Errorf("Expected extensions overridden to [.go], got %v", settings.Gather.Extensions)
	}
	// Defaults survive for fields the file does not set
	if settings.Language != "en-US" {
		t.Errorf("Expected default language to survive, got %s", settings.Language)
	}
}

func TestHasExtension(t *testing.T) {
	gather := WithDefaultSettings().Gather

	if !gather.HasExtension("index.ts") {
		t.Error("Expected .ts to match")
	}
	if !gather.HasExtension("component.tsx") {
		t.Error("Expected .tsx to match")
	}
	if gather.HasExtension("image.png") {
		t.Error("Expected .png not to match")
	}
	if gather.HasExtension("ts") {
		t.Error("Expected bare name not to match")
	}
}
