package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

// Config represents the complete configuration structure
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Editor  EditorConfig  `yaml:"editor"`
	Preview PreviewConfig `yaml:"preview"`
	Icons   IconsConfig   `yaml:"icons"`
	History HistoryConfig `yaml:"history"`
	Sync    SyncConfig    `yaml:"sync"`
	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level string `yaml:"level" default:"warn"`
}

type SiteConfig struct {
	Name string `yaml:"name" default:"My Blog"`
	URL  string `yaml:"url" default:""`
}

type ContentConfig struct {
	PostsDir  string `yaml:"posts_dir" default:"_posts"`
	DraftsDir string `yaml:"drafts_dir" default:"_drafts"`
}

type EditorConfig struct {
	// Command overrides $EDITOR when set.
	Command string `yaml:"command" default:""`
	// OpenDrafts controls whether `new draft` opens the editor afterwards.
	OpenDrafts bool `yaml:"open_drafts" default:"false"`
}

type PreviewConfig struct {
	Command      string `yaml:"command" default:"bundle exec jekyll serve --watch --drafts"`
	Host         string `yaml:"host" default:"127.0.0.1"`
	Port         string `yaml:"port" default:"4000"`
	ReadyTimeout int    `yaml:"ready_timeout_seconds" default:"30"`
	PollInterval int    `yaml:"poll_interval_millis" default:"250"`
	OpenBrowser  bool   `yaml:"open_browser" default:"true"`
	SyntaxTheme  string `yaml:"syntax_theme" default:"gruvbox"`
}

type IconsConfig struct {
	Command   string `yaml:"command" default:"magick"`
	OutputDir string `yaml:"output_dir" default:"."`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:".blogtool/history.db"`
}

type SyncConfig struct {
	Bucket   string `yaml:"bucket" default:""`
	Endpoint string `yaml:"endpoint" default:""`
	Region   string `yaml:"region" default:"auto"`
	Prefix   string `yaml:"prefix" default:""`
}

var AppConfig *Config

func LoadConfig(path string) error {
	config := &Config{}

	// Apply default values first
	applyDefaults(config)

	// Try to read and parse the config file
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just use defaults
		configLogger.Debug().Str("path", path).Msg("Config file not found, using defaults")
		AppConfig = config
		return nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	AppConfig = config
	return nil
}

func ApplyDefaults(config interface{}) {
	applyDefaults(config)
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		// Recursively apply defaults to nested structs
		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Float64:
			if val, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				field.SetFloat(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
