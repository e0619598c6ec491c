package auditcmd

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/internal/jobs"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const exportAuditMessageType = "translatable.audit.export"

// AuditLog exposes read operations for recorded audit events.
type AuditLog interface {
	List(ctx context.Context) ([]jobs.AuditEvent, error)
}

// ExportAuditCommand emits recorded translation saves through the logger.
// RecordID and Attribute narrow the export when set.
type ExportAuditCommand struct {
	RecordID   uuid.UUID `json:"record_id,omitempty"`
	Attribute  string    `json:"attribute,omitempty"`
	MaxRecords *int      `json:"max_records,omitempty"`
}

// Type implements command.Message.
func (ExportAuditCommand) Type() string { return exportAuditMessageType }

// Validate ensures the command payload is well-formed.
func (m ExportAuditCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.MaxRecords, validation.By(func(value any) error {
			if m.MaxRecords == nil {
				return nil
			}
			if *m.MaxRecords < 0 {
				return validation.NewError("translatable.audit.export.max_records_invalid", "max_records must be zero or positive")
			}
			return nil
		})),
	)
}

func (m ExportAuditCommand) filter() jobs.AuditFilter {
	f := jobs.AuditFilter{Attribute: strings.TrimSpace(m.Attribute)}
	if m.RecordID != uuid.Nil {
		f.EntityID = m.RecordID.String()
	}
	return f
}

// ExportAuditHandler logs recorded audit events up to the provided limit.
type ExportAuditHandler struct {
	inner *commands.Handler[ExportAuditCommand]
}

// NewExportAuditHandler constructs a handler reading from log.
func NewExportAuditHandler(log AuditLog, logger interfaces.Logger, opts ...commands.HandlerOption[ExportAuditCommand]) *ExportAuditHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	exec := func(ctx context.Context, msg ExportAuditCommand) error {
		events, err := log.List(ctx)
		if err != nil {
			return err
		}

		filter := msg.filter()
		selected := make([]jobs.AuditEvent, 0, len(events))
		for _, event := range events {
			if filter.Matches(event) {
				selected = append(selected, event)
			}
		}
		limit := len(selected)
		if msg.MaxRecords != nil && *msg.MaxRecords < limit {
			limit = *msg.MaxRecords
		}

		baseLogger := logging.WithFields(logger, map[string]any{
			"operation": "audit.export",
		})
		for idx, event := range selected[:limit] {
			logging.WithFields(baseLogger, map[string]any{
				"index":       idx,
				"entity_type": event.EntityType,
				"entity_id":   event.EntityID,
				"action":      event.Action,
				"attribute":   event.Attribute,
				"commit":      event.Commit,
				"locales":     event.Locales,
				"occurred_at": event.OccurredAt.Format(time.RFC3339),
				"metadata":    event.Metadata,
			}).Debug("audit.command.export.event")
		}

		logging.WithFields(baseLogger, map[string]any{
			"exported": limit,
			"matched":  len(selected),
			"total":    len(events),
		}).Info("audit.command.export.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportAuditCommand]{
		commands.WithLogger[ExportAuditCommand](logger),
		commands.WithOperation[ExportAuditCommand]("audit.export"),
	}
	return &ExportAuditHandler{
		inner: commands.NewHandler[ExportAuditCommand](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[ExportAuditCommand].
func (h *ExportAuditHandler) Execute(ctx context.Context, msg ExportAuditCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CLIHandler satisfies command.CLICommand by returning the handler.
func (h *ExportAuditHandler) CLIHandler() any {
	return h
}

// CLIOptions describes the CLI metadata for audit export.
func (h *ExportAuditHandler) CLIOptions() command.CLIConfig {
	return command.CLIConfig{
		Path:        []string{"audit", "export"},
		Group:       "audit",
		Description: "Export translation audit events to the configured logger",
	}
}
