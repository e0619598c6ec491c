package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const (
	rootModule    = "translatable"
	adminModule   = "translatable.admin"
	recordsModule = "translatable.records"
)

const (
	fieldAttribute = "attribute"
	fieldRecordID  = "record_id"
	fieldCommit    = "commit"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// AdminLogger returns the logger namespace reserved for the admin service.
func AdminLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, adminModule)
}

// RecordsLogger returns the logger namespace reserved for record storage.
func RecordsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, recordsModule)
}

// WithFieldContext enriches logger with the field attribute, record id and
// commit policy. Empty values are skipped.
func WithFieldContext(logger interfaces.Logger, attribute, recordID, commit string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(attribute); trimmed != "" {
		fields[fieldAttribute] = trimmed
	}
	if trimmed := strings.TrimSpace(recordID); trimmed != "" {
		fields[fieldRecordID] = trimmed
	}
	if trimmed := strings.TrimSpace(commit); trimmed != "" {
		fields[fieldCommit] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
