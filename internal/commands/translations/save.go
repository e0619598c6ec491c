package translationscmd

import (
	"context"
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/internal/field"
	"github.com/goliatone/go-translatable/internal/records"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const saveTranslationsMessageType = "translatable.translations.save"

// SaveTranslationsCommand submits the rows of a translatable field for a record.
// Payload, when set, is the raw request value and takes precedence over Rows.
type SaveTranslationsCommand struct {
	RecordID  uuid.UUID       `json:"record_id"`
	Rows      []field.Row     `json:"rows,omitempty"`
	Submitted bool            `json:"submitted"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Type implements command.Message.
func (SaveTranslationsCommand) Type() string { return saveTranslationsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveTranslationsCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("translatable.translations.save.record_id_required", "record_id is required")
	}
	if len(m.Payload) > 0 && len(m.Rows) > 0 {
		errs["payload"] = validation.NewError("translatable.translations.save.payload_conflict", "payload and rows cannot both be set")
	}
	if len(m.Payload) > 0 {
		if _, err := field.ParseSubmission(m.Payload); err != nil {
			errs["payload"] = validation.NewError("translatable.translations.save.payload_invalid", err.Error())
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (m SaveTranslationsCommand) submission() (field.Submission, error) {
	if len(m.Payload) > 0 {
		return field.ParseSubmission(m.Payload)
	}
	return field.Submission{Present: m.Submitted, Rows: m.Rows}, nil
}

// TranslationsService is the admin service contract the handler depends on.
type TranslationsService interface {
	Save(ctx context.Context, id uuid.UUID, f *field.Field, sub field.Submission) (*records.Record, error)
}

// SaveTranslationsHandler applies submissions for one field definition.
type SaveTranslationsHandler struct {
	inner *commands.Handler[SaveTranslationsCommand]
}

// NewSaveTranslationsHandler constructs a handler bound to f.
func NewSaveTranslationsHandler(service TranslationsService, f *field.Field, logger interfaces.Logger, opts ...commands.HandlerOption[SaveTranslationsCommand]) *SaveTranslationsHandler {
	exec := func(ctx context.Context, msg SaveTranslationsCommand) error {
		if service == nil {
			return errors.New("translationscmd: service is required")
		}
		sub, err := msg.submission()
		if err != nil {
			return err
		}
		_, err = service.Save(ctx, msg.RecordID, f, sub)
		return field.AsValidationError(err)
	}

	handlerOpts := []commands.HandlerOption[SaveTranslationsCommand]{
		commands.WithLogger[SaveTranslationsCommand](logger),
		commands.WithOperation[SaveTranslationsCommand]("translations.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveTranslationsHandler{
		inner: commands.NewHandler[SaveTranslationsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveTranslationsCommand].Execute.
func (h *SaveTranslationsHandler) Execute(ctx context.Context, msg SaveTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}
