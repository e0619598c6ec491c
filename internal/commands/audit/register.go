package auditcmd

import (
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the audit command handlers.
type HandlerSet struct {
	Export  *ExportAuditHandler
	Cleanup *CleanupAuditHandler
}

// RegisterAuditCommands builds the audit handlers, registers them with reg and
// schedules cleanup through cron. Both reg and cron are optional.
func RegisterAuditCommands(reg CommandRegistry, cron CronRegistrar, log AuditCleaner, provider interfaces.LoggerProvider, opts ...CleanupHandlerOption) (*HandlerSet, error) {
	if log == nil {
		return nil, errors.New("audit command registration: audit log is nil")
	}

	logger := commands.CommandLogger(provider, "audit")
	set := &HandlerSet{
		Export:  NewExportAuditHandler(log, logger),
		Cleanup: NewCleanupAuditHandler(log, logger, opts...),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Export); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Cleanup); err != nil {
			return nil, err
		}
	}
	if cron != nil {
		if err := cron(set.Cleanup.CronOptions(), set.Cleanup.CronHandler()); err != nil {
			return nil, err
		}
	}
	return set, nil
}
