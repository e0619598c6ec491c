package field

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrRequiredLanguageMissing is the sentinel wrapped by RequiredLanguageMissingError.
	ErrRequiredLanguageMissing = errors.New("translatable: required language missing")
	// ErrSubmissionInvalid indicates a request payload that is not a list of rows.
	ErrSubmissionInvalid = errors.New("translatable: submission payload is invalid")
)

const (
	requiredLanguageMissingCode     = "translatable.required_language_missing"
	requiredLanguageMissingTextCode = "TRANSLATABLE_REQUIRED_LANGUAGE_MISSING"
)

// RequiredLanguageMissingError lists required codes that had no value in a
// submission.
type RequiredLanguageMissingError struct {
	Field   string
	Label   string
	Missing []string
}

func (e *RequiredLanguageMissingError) Error() string {
	if e == nil {
		return ErrRequiredLanguageMissing.Error()
	}
	label := e.Label
	if label == "" {
		label = e.Field
	}
	return fmt.Sprintf("The field %s does not have translation values set for the following languages: %s",
		label, strings.Join(e.Missing, ", "))
}

func (e *RequiredLanguageMissingError) Unwrap() error {
	return ErrRequiredLanguageMissing
}

// ValidationErrors keys the failure by the field attribute so form renderers
// can attach the message to the field.
func (e *RequiredLanguageMissingError) ValidationErrors() validation.Errors {
	if e == nil {
		return nil
	}
	return validation.Errors{
		e.Field: validation.NewError(requiredLanguageMissingCode, e.Error()).
			SetParams(map[string]any{"missing": append([]string(nil), e.Missing...)}),
	}
}

// AsValidationError tags required language failures with the validation
// category. Other errors are returned unchanged.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}
	var missing *RequiredLanguageMissingError
	if !errors.As(err, &missing) {
		return err
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, missing.Error()).
		WithTextCode(requiredLanguageMissingTextCode)
}
