package translations

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/field"
	"github.com/goliatone/go-translatable/internal/jobs"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/records"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

var (
	// ErrRepositoryRequired indicates the service was constructed without a repository.
	ErrRepositoryRequired = errors.New("admintranslations: repository is required")
	// ErrFieldRequired indicates a call without a field definition.
	ErrFieldRequired = errors.New("admintranslations: field is required")
)

const (
	auditEntityType  = "translatable_record"
	auditActionSaved = "translation_field_saved"
)

// Option mutates the service configuration.
type Option func(*Service)

// WithClock overrides the clock used for audit timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithAuditRecorder overrides the audit recorder dependency.
func WithAuditRecorder(recorder jobs.AuditRecorder) Option {
	return func(s *Service) {
		s.audit = recorder
	}
}

// WithLogger sets the logger used for save diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service loads translatable records into form rows and persists submitted
// rows back through a field definition.
type Service struct {
	repo   records.Repository
	audit  jobs.AuditRecorder
	clock  func() time.Time
	logger interfaces.Logger
}

// NewService constructs a translations admin service.
func NewService(repo records.Repository, recorder jobs.AuditRecorder, opts ...Option) *Service {
	svc := &Service{
		repo:   repo,
		audit:  recorder,
		clock:  time.Now,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Form returns the editable rows of f for the record.
func (s *Service) Form(ctx context.Context, id uuid.UUID, f *field.Field) ([]field.Row, error) {
	record, err := s.load(ctx, id, f)
	if err != nil {
		return nil, err
	}
	return f.Load(record), nil
}

// Summary renders the stored translations of f for list and export views.
func (s *Service) Summary(ctx context.Context, id uuid.UUID, f *field.Field) (string, error) {
	record, err := s.load(ctx, id, f)
	if err != nil {
		return "", err
	}
	return f.RenderSummary(record), nil
}

// Save applies sub to the record and persists the result. A
// *field.RequiredLanguageMissingError is returned unchanged and nothing is
// written. Submissions the field does not accept return the stored record.
func (s *Service) Save(ctx context.Context, id uuid.UUID, f *field.Field, sub field.Submission) (*records.Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	record, err := s.load(ctx, id, f)
	if err != nil {
		return nil, err
	}

	logger := logging.WithFieldContext(s.logger.WithContext(ctx), f.Attribute(), id.String(), f.Commit().String())

	if !f.Submittable(sub) {
		logger.Debug("translations.save.skipped", "read_only", f.ReadOnly(), "present", sub.Present)
		return record, nil
	}

	working := record.Clone()
	if _, err := f.Apply(working, sub); err != nil {
		var missing *field.RequiredLanguageMissingError
		if errors.As(err, &missing) {
			logger.Debug("translations.save.rejected", "missing", missing.Missing)
		}
		return nil, err
	}

	updated, err := s.repo.Update(ctx, working)
	if err != nil {
		logger.Error("translations.save.failed", "error", err)
		return nil, err
	}

	locales := localeKeys(updated.GetTranslations(f.Attribute()))
	logger.Info("translations.saved", "locales", locales)

	s.recordAudit(ctx, jobs.AuditEvent{
		EntityType: auditEntityType,
		EntityID:   id.String(),
		Action:     auditActionSaved,
		Attribute:  f.Attribute(),
		Commit:     f.Commit().String(),
		Locales:    locales,
		OccurredAt: s.clock(),
	})
	return updated, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID, f *field.Field) (*records.Record, error) {
	if s.repo == nil {
		return nil, ErrRepositoryRequired
	}
	if f == nil {
		return nil, ErrFieldRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) recordAudit(ctx context.Context, event jobs.AuditEvent) {
	if s.audit == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.clock()
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("translations.audit.failed", "error", err)
	}
}

func localeKeys(translations map[string]string) []string {
	keys := make([]string, 0, len(translations))
	for code := range translations {
		keys = append(keys, code)
	}
	sort.Strings(keys)
	return keys
}
