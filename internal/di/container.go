package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	repocache "github.com/goliatone/go-repository-cache/cache"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	admintranslations "github.com/goliatone/go-translatable/internal/admin/translations"
	"github.com/goliatone/go-translatable/internal/commands"
	auditcmd "github.com/goliatone/go-translatable/internal/commands/audit"
	translationscmd "github.com/goliatone/go-translatable/internal/commands/translations"
	"github.com/goliatone/go-translatable/internal/field"
	"github.com/goliatone/go-translatable/internal/jobs"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/logging/console"
	"github.com/goliatone/go-translatable/internal/logging/gologger"
	"github.com/goliatone/go-translatable/internal/records"
	"github.com/goliatone/go-translatable/internal/runtimeconfig"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const defaultSQLiteDSN = "file::memory:?cache=shared&_fk=1"

// CommandRegistry receives command handlers built by the container.
type CommandRegistry = auditcmd.CommandRegistry

// CronRegistrar schedules cron-capable handlers.
type CronRegistrar = auditcmd.CronRegistrar

// ErrStorageDSNRequired indicates a postgres storage profile without a DSN.
var ErrStorageDSNRequired = errors.New("di: storage dsn is required for postgres")

// Container wires configuration into loggers, repositories and services.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB   *bun.DB
	ownsDB  bool
	dialect string

	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	recordRepo      records.Repository
	audit           jobs.AuditRecorder
	translationsSvc *admintranslations.Service

	commandRegistry CommandRegistry
	cronRegistrar   CronRegistrar
	auditCommands   *auditcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies an existing database. The container does not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the provider derived from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithRecordRepository overrides the record repository.
func WithRecordRepository(repo records.Repository) Option {
	return func(c *Container) {
		c.recordRepo = repo
	}
}

// WithAuditRecorder overrides the audit recorder.
func WithAuditRecorder(recorder jobs.AuditRecorder) Option {
	return func(c *Container) {
		c.audit = recorder
	}
}

// WithCache enables go-repository-cache around the bun record repository.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithCommandRegistry registers the container's command handlers with reg.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(c *Container) {
		c.commandRegistry = reg
	}
}

// WithCronRegistrar schedules the audit cleanup handler through fn.
func WithCronRegistrar(fn CronRegistrar) Option {
	return func(c *Container) {
		c.cronRegistrar = fn
	}
}

// NewContainer validates cfg and builds the container.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureRepositories(context.Background()); err != nil {
		return nil, err
	}
	c.configureServices()
	if err := c.configureCommands(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
			Fields:    map[string]any{"service": "translatable"},
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureRepositories(ctx context.Context) error {
	if c.audit == nil && c.Config.Features.Audit {
		c.audit = jobs.NewInMemoryAuditRecorder()
	}
	if c.recordRepo != nil {
		return nil
	}

	logger := logging.RecordsLogger(c.loggerProvider)
	provider := strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider))
	if provider != "bun" && c.bunDB == nil {
		c.recordRepo = records.NewMemoryRepository()
		logger.Debug("records.repository.configured", "provider", "memory")
		return nil
	}

	if c.bunDB == nil {
		db, dialect, err := openBunDB(c.Config.Storage)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
		c.dialect = dialect
	}

	if err := records.CreateSchema(ctx, c.bunDB); err != nil {
		if c.ownsDB {
			_ = c.bunDB.Close()
		}
		return fmt.Errorf("di: create records schema: %w", err)
	}
	c.recordRepo = records.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	logger.Debug("records.repository.configured",
		"provider", "bun",
		"dialect", c.dialect,
		"cached", c.cacheService != nil && c.keySerializer != nil,
	)
	return nil
}

func openBunDB(cfg runtimeconfig.StorageConfig) (*bun.DB, string, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch dialect := strings.ToLower(strings.TrimSpace(cfg.Dialect)); dialect {
	case "postgres":
		if dsn == "" {
			return nil, "", ErrStorageDSNRequired
		}
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, "", err
		}
		return bun.NewDB(sqldb, pgdialect.New()), dialect, nil
	default:
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, "", err
		}
		sqldb.SetMaxOpenConns(1)
		return bun.NewDB(sqldb, sqlitedialect.New()), "sqlite", nil
	}
}

func (c *Container) configureServices() {
	c.translationsSvc = admintranslations.NewService(c.recordRepo, c.audit,
		admintranslations.WithLogger(logging.AdminLogger(c.loggerProvider)),
	)
}

func (c *Container) configureCommands() error {
	if c.audit == nil {
		return nil
	}
	set, err := auditcmd.RegisterAuditCommands(c.commandRegistry, c.cronRegistrar, c.audit, c.loggerProvider)
	if err != nil {
		return err
	}
	c.auditCommands = set
	return nil
}

// Close releases the database opened by the container.
func (c *Container) Close() error {
	if c.bunDB == nil || !c.ownsDB {
		return nil
	}
	return c.bunDB.Close()
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB returns the database backing the record repository, if any.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// Dialect names the SQL dialect of a database opened by the container.
func (c *Container) Dialect() string {
	return c.dialect
}

// RecordRepository returns the configured record repository.
func (c *Container) RecordRepository() records.Repository {
	return c.recordRepo
}

// AuditRecorder returns the audit recorder, nil when auditing is disabled.
func (c *Container) AuditRecorder() jobs.AuditRecorder {
	return c.audit
}

// TranslationsService returns the admin translations service.
func (c *Container) TranslationsService() *admintranslations.Service {
	return c.translationsSvc
}

// AuditCommands returns the audit export and cleanup handlers, nil when
// auditing is disabled.
func (c *Container) AuditCommands() *auditcmd.HandlerSet {
	return c.auditCommands
}

// SaveTranslationsHandler returns a command handler bound to f.
func (c *Container) SaveTranslationsHandler(f *field.Field) *translationscmd.SaveTranslationsHandler {
	return translationscmd.NewSaveTranslationsHandler(c.translationsSvc, f,
		commands.CommandLogger(c.loggerProvider, "translations"),
	)
}

// RegisterSaveTranslations builds the save handler for f and registers it
// with the configured command registry.
func (c *Container) RegisterSaveTranslations(f *field.Field) (*translationscmd.SaveTranslationsHandler, error) {
	handler := c.SaveTranslationsHandler(f)
	if c.commandRegistry != nil {
		if err := c.commandRegistry.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}

// FieldBuilder starts a field preconfigured with the field defaults from the
// configuration.
func (c *Container) FieldBuilder(label string, attribute ...string) *field.Builder {
	defaults := c.Config.Field
	b := field.New(label, attribute...)
	if kind, ok := field.ParseInputKind(defaults.Input); ok {
		b.Input(kind)
	}
	if defaults.KeyLabel != "" || defaults.ValueLabel != "" {
		b.KeyValue(defaults.KeyLabel, defaults.ValueLabel)
	}
	if len(defaults.Languages) > 0 {
		b.Languages(defaults.Languages...)
	}
	if len(defaults.PriorityLanguages) > 0 {
		b.PriorityLanguages(defaults.PriorityLanguages...)
	}
	if len(defaults.RequiredLanguages) > 0 {
		b.RequiredLanguages(defaults.RequiredLanguages...)
	}
	return b.Removable(defaults.Removable)
}
