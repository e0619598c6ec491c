package translatable

import (
	admintranslations "github.com/goliatone/go-translatable/internal/admin/translations"
	translationscmd "github.com/goliatone/go-translatable/internal/commands/translations"
	"github.com/goliatone/go-translatable/internal/di"
	"github.com/goliatone/go-translatable/internal/field"
	"github.com/goliatone/go-translatable/internal/languages"
	"github.com/goliatone/go-translatable/internal/records"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// Field is an immutable translatable field definition.
type Field = field.Field

// Builder configures a Field.
type Builder = field.Builder

// Row is one editable {key, value} pair of a translatable field.
type Row = field.Row

// Submission carries the rows posted for a field.
type Submission = field.Submission

// SubField describes the key and value inputs rendered for each row.
type SubField = field.SubField

// InputKind selects the value widget.
type InputKind = field.InputKind

// CommitPolicy selects how accepted rows are written to the entity.
type CommitPolicy = field.CommitPolicy

// RequiredLanguageMissingError reports required codes absent from a submission.
type RequiredLanguageMissingError = field.RequiredLanguageMissingError

// TranslatableEntity is implemented by anything that stores translations per attribute.
type TranslatableEntity = interfaces.TranslatableEntity

// Record is the bundled translatable entity.
type Record = records.Record

// RecordRepository persists records.
type RecordRepository = records.Repository

// TranslationsService exports the admin translations service.
type TranslationsService = *admintranslations.Service

// SaveTranslationsCommand exports the save command message.
type SaveTranslationsCommand = translationscmd.SaveTranslationsCommand

const (
	InputText     = field.InputText
	InputTextarea = field.InputTextarea
	InputRichText = field.InputRichText
	InputNested   = field.InputNested

	CommitMerge   = field.CommitMerge
	CommitReplace = field.CommitReplace
)

var (
	ErrRequiredLanguageMissing = field.ErrRequiredLanguageMissing
	ErrSubmissionInvalid       = field.ErrSubmissionInvalid
	ErrRecordNotFound          = records.ErrRecordNotFound
)

// Make starts a field definition for label. The optional attribute overrides
// the name derived from the label.
func Make(label string, attribute ...string) *Builder {
	return field.New(label, attribute...)
}

// Submit builds a submission that carries rows.
func Submit(rows ...Row) Submission {
	return field.Submit(rows...)
}

// ParseSubmission decodes a raw request value into a Submission.
func ParseSubmission(data []byte) (Submission, error) {
	return field.ParseSubmission(data)
}

// AsValidationError tags required language failures with the go-errors
// validation category.
func AsValidationError(err error) error {
	return field.AsValidationError(err)
}

// DefaultLanguages returns the bundled language code list.
func DefaultLanguages() []string {
	return languages.Default()
}

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using cfg and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	if m == nil {
		return nil
	}
	return m.container
}

// Field starts a field preconfigured with the module's field defaults. A nil
// module falls back to Make.
func (m *Module) Field(label string, attribute ...string) *Builder {
	if m == nil || m.container == nil {
		return Make(label, attribute...)
	}
	return m.container.FieldBuilder(label, attribute...)
}

// Records returns the configured record repository.
func (m *Module) Records() RecordRepository {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.RecordRepository()
}

// Translations returns the admin translations service.
func (m *Module) Translations() TranslationsService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.TranslationsService()
}

// SaveTranslationsHandler returns a go-command handler that saves submissions for f.
func (m *Module) SaveTranslationsHandler(f *Field) *translationscmd.SaveTranslationsHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SaveTranslationsHandler(f)
}

// Close releases resources opened by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
