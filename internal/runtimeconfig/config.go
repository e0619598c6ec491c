package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFieldInputInvalid       = errors.New("translatable config: field input widget is invalid")
	ErrStorageProviderUnknown  = errors.New("translatable config: storage provider is invalid")
	ErrStorageDialectUnknown   = errors.New("translatable config: storage dialect is invalid")
	ErrLoggingProviderRequired = errors.New("translatable config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("translatable config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("translatable config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("translatable config: logging format is invalid")
)

// Config aggregates field defaults, storage and logging settings.
type Config struct {
	Field    FieldConfig
	Storage  StorageConfig
	Logging  LoggingConfig
	Features Features
}

// FieldConfig holds defaults applied to fields created through the module.
// Empty Languages keeps the bundled list.
type FieldConfig struct {
	Input             string
	KeyLabel          string
	ValueLabel        string
	Languages         []string
	PriorityLanguages []string
	RequiredLanguages []string
	Removable         bool
}

// StorageConfig selects the record repository. Provider is "memory" or "bun";
// Dialect is "sqlite" or "postgres" and only applies to bun.
type StorageConfig struct {
	Provider string
	Dialect  string
	DSN      string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional behaviour.
type Features struct {
	Logger bool
	Audit  bool
}

// DefaultConfig returns in-memory storage, console logging and the bundled
// language list.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Input:      "text",
			KeyLabel:   "Code",
			ValueLabel: "Value",
		},
		Storage: StorageConfig{
			Provider: "memory",
			Dialect:  "sqlite",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Audit: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if input := strings.TrimSpace(cfg.Field.Input); input != "" && !isSupportedInput(input) {
		return fmt.Errorf("%w: %s", ErrFieldInputInvalid, input)
	}

	switch provider := normalize(cfg.Storage.Provider); provider {
	case "", "memory":
	case "bun":
		if dialect := normalize(cfg.Storage.Dialect); dialect != "" && dialect != "sqlite" && dialect != "postgres" {
			return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, dialect)
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "console" && provider != "gologger" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedInput(input string) bool {
	switch normalize(input) {
	case "text", "textarea", "multiline", "rich_text", "richtext", "tinymce", "wysiwyg", "nested", "json":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
