package auditcmd

import (
	"context"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const cleanupAuditMessageType = "translatable.audit.cleanup"

// AuditCleaner extends AuditLog with cleanup capabilities.
type AuditCleaner interface {
	AuditLog
	Clear(ctx context.Context) error
}

// CleanupAuditCommand removes recorded audit events. DryRun only reports the count.
type CleanupAuditCommand struct {
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (CleanupAuditCommand) Type() string { return cleanupAuditMessageType }

// Validate satisfies command.Message.
func (CleanupAuditCommand) Validate() error { return nil }

// CleanupHandlerOption customises the cleanup handler.
type CleanupHandlerOption func(*CleanupAuditHandler)

// CleanupWithCronExpression overrides the cron expression for the cleanup handler.
func CleanupWithCronExpression(expression string) CleanupHandlerOption {
	return func(h *CleanupAuditHandler) {
		if trimmed := strings.TrimSpace(expression); trimmed != "" {
			h.cronConfig.Expression = trimmed
		}
	}
}

// CleanupWithHandlerOptions forwards options to the shared command handler.
func CleanupWithHandlerOptions(opts ...commands.HandlerOption[CleanupAuditCommand]) CleanupHandlerOption {
	return func(h *CleanupAuditHandler) {
		h.handlerOpts = append(h.handlerOpts, opts...)
	}
}

// CleanupAuditHandler clears audit logs via the supplied cleaner implementation.
type CleanupAuditHandler struct {
	inner       *commands.Handler[CleanupAuditCommand]
	cronConfig  command.HandlerConfig
	handlerOpts []commands.HandlerOption[CleanupAuditCommand]
}

// NewCleanupAuditHandler constructs a handler that delegates to cleaner.
func NewCleanupAuditHandler(cleaner AuditCleaner, logger interfaces.Logger, opts ...CleanupHandlerOption) *CleanupAuditHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	h := &CleanupAuditHandler{
		cronConfig: command.HandlerConfig{Expression: "@daily"},
		handlerOpts: []commands.HandlerOption[CleanupAuditCommand]{
			commands.WithLogger[CleanupAuditCommand](logger),
			commands.WithOperation[CleanupAuditCommand]("audit.cleanup"),
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	exec := func(ctx context.Context, msg CleanupAuditCommand) error {
		events, err := cleaner.List(ctx)
		if err != nil {
			return err
		}
		opLogger := logging.WithFields(logger, map[string]any{
			"operation": "audit.cleanup",
		})
		if msg.DryRun {
			logging.WithFields(opLogger, map[string]any{
				"dry_run":        true,
				"existing_count": len(events),
			}).Debug("audit.command.cleanup.dry_run")
			return nil
		}
		if err := cleaner.Clear(ctx); err != nil {
			return err
		}
		logging.WithFields(opLogger, map[string]any{
			"removed": len(events),
		}).Debug("audit.command.cleanup.removed")
		return nil
	}
	h.inner = commands.NewHandler[CleanupAuditCommand](exec, h.handlerOpts...)
	return h
}

// Execute satisfies command.Commander[CleanupAuditCommand].
func (h *CleanupAuditHandler) Execute(ctx context.Context, msg CleanupAuditCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CronHandler satisfies command.CronCommand.
func (h *CleanupAuditHandler) CronHandler() func() error {
	return func() error {
		return h.Execute(context.Background(), CleanupAuditCommand{})
	}
}

// CronOptions returns the configured cron metadata.
func (h *CleanupAuditHandler) CronOptions() command.HandlerConfig {
	return h.cronConfig
}

// CLIHandler exposes the cleanup handler to CLI integrations.
func (h *CleanupAuditHandler) CLIHandler() any {
	return h
}

// CLIOptions describes the CLI metadata for audit cleanup.
func (h *CleanupAuditHandler) CLIOptions() command.CLIConfig {
	return command.CLIConfig{
		Path:        []string{"audit", "cleanup"},
		Group:       "audit",
		Description: "Remove recorded translation audit events; supports dry-run",
	}
}
