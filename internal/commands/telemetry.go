package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// TelemetryStatus classifies a command outcome.
type TelemetryStatus string

const (
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusRejected marks executions that failed with a validation
	// category error, such as a submission missing required languages.
	TelemetryStatusRejected     TelemetryStatus = "rejected"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes one command execution.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is invoked once per execution after the wrapped function returns.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

func failureStatus(err error) TelemetryStatus {
	if goerrors.IsCategory(err, goerrors.CategoryValidation) {
		return TelemetryStatusRejected
	}
	return TelemetryStatusFailed
}

// DefaultTelemetry logs outcomes through logger: successes at info, rejected
// submissions at warn and everything else at error.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		args := []any{"duration_ms", info.Duration.Milliseconds(), "status", string(info.Status)}
		if info.Error != nil {
			args = append(args, "error", info.Error)
		}

		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info("command.execute.success", args...)
		case TelemetryStatusRejected:
			entry.Warn("command.execute.rejected", args...)
		case TelemetryStatusContextError:
			entry.Error("command.execute.context_error", args...)
		default:
			entry.Error("command.execute.failed", args...)
		}
	}
}
