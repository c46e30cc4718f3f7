package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("Config struct defaults", func(t *testing.T) {
		config := &Config{}
		applyDefaults(config)

		// Test Content defaults
		if config.Content.PostsDir != "_posts" {
			t.Errorf("Expected posts dir '_posts', got %q", config.Content.PostsDir)
		}
		if config.Content.DraftsDir != "_drafts" {
			t.Errorf("Expected drafts dir '_drafts', got %q", config.Content.DraftsDir)
		}

		// Test Editor defaults
		if config.Editor.Command != "" {
			t.Errorf("Expected empty editor command, got %q", config.Editor.Command)
		}
		if config.Editor.OpenDrafts {
			t.Error("Expected open_drafts to be disabled by default")
		}

		// Test Preview defaults
		if config.Preview.Command != "bundle exec jekyll serve --watch --drafts" {
			t.Errorf("Unexpected preview command %q", config.Preview.Command)
		}
		if config.Preview.Host != "127.0.0.1" {
			t.Errorf("Expected host '127.0.0.1', got %q", config.Preview.Host)
		}
		if config.Preview.Port != "4000" {
			t.Errorf("Expected port '4000', got %q", config.Preview.Port)
		}
		if config.Preview.ReadyTimeout != 30 {
			t.Errorf("Expected ready timeout 30, got %d", config.Preview.ReadyTimeout)
		}
		if config.Preview.PollInterval != 250 {
			t.Errorf("Expected poll interval 250, got %d", config.Preview.PollInterval)
		}
		if !config.Preview.OpenBrowser {
			t.Error("Expected browser opening to be enabled by default")
		}

		// Test Icons defaults
		if config.Icons.Command != "magick" {
			t.Errorf("Expected icons command 'magick', got %q", config.Icons.Command)
		}
		if config.Icons.OutputDir != "." {
			t.Errorf("Expected icons output dir '.', got %q", config.Icons.OutputDir)
		}

		// Test History defaults
		if !config.History.Enabled {
			t.Error("Expected history to be enabled by default")
		}
		if config.History.Path != ".blogtool/history.db" {
			t.Errorf("Expected history path '.blogtool/history.db', got %q", config.History.Path)
		}

		// Test Sync defaults
		if config.Sync.Bucket != "" {
			t.Errorf("Expected empty sync bucket, got %q", config.Sync.Bucket)
		}
		if config.Sync.Region != "auto" {
			t.Errorf("Expected sync region 'auto', got %q", config.Sync.Region)
		}

		// Test Logging defaults
		if config.Logging.Level != "warn" {
			t.Errorf("Expected logging level 'warn', got %q", config.Logging.Level)
		}
	})

	t.Run("Custom struct with various field types", func(t *testing.T) {
		type TestStruct struct {
			StringField  string  `default:"test-string"`
			BoolField    bool    `default:"true"`
			IntField     int     `default:"42"`
			Float64Field float64 `default:"3.14"`
		}

		s := &TestStruct{}
		applyDefaults(s)

		if s.StringField != "test-string" {
			t.Errorf("Expected 'test-string', got %q", s.StringField)
		}
		if !s.BoolField {
			t.Error("Expected true, got false")
		}
		if s.IntField != 42 {
			t.Errorf("Expected 42, got %d", s.IntField)
		}
		if s.Float64Field != 3.14 {
			t.Errorf("Expected 3.14, got %f", s.Float64Field)
		}
	})

	t.Run("Re-applying defaults overwrites scalar fields", func(t *testing.T) {
		// applyDefaults writes defaults unconditionally for scalar fields,
		// which is why LoadConfig applies them before unmarshalling.
		config := &Config{}
		applyDefaults(config)
		config.Content.PostsDir = "articles"
		applyDefaults(config)
		if config.Content.PostsDir != "_posts" {
			t.Errorf("Expected defaults to win on re-apply, got %q", config.Content.PostsDir)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	SetLogger(zerolog.New(os.Stdout).Level(zerolog.ErrorLevel))

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		if err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
			t.Fatalf("LoadConfig with missing file: %v", err)
		}
		if AppConfig.Content.DraftsDir != "_drafts" {
			t.Errorf("Expected default drafts dir, got %q", AppConfig.Content.DraftsDir)
		}
	})

	t.Run("File values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		data := []byte("content:\n  posts_dir: articles\npreview:\n  port: \"8080\"\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}

		if err := LoadConfig(path); err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if AppConfig.Content.PostsDir != "articles" {
			t.Errorf("Expected posts dir 'articles', got %q", AppConfig.Content.PostsDir)
		}
		if AppConfig.Preview.Port != "8080" {
			t.Errorf("Expected port '8080', got %q", AppConfig.Preview.Port)
		}
		// Untouched sections keep their defaults.
		if AppConfig.Content.DraftsDir != "_drafts" {
			t.Errorf("Expected default drafts dir, got %q", AppConfig.Content.DraftsDir)
		}
	})

	t.Run("Malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		if err := os.WriteFile(path, []byte("content: ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := LoadConfig(path); err == nil {
			t.Error("Expected error for malformed YAML, got nil")
		}
	})
}
