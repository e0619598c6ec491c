package commands

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeValidation     = "TRANSLATABLE_COMMAND_INVALID"
	textCodeCanceled       = "TRANSLATABLE_COMMAND_CANCELED"
	textCodeTimeout        = "TRANSLATABLE_COMMAND_TIMEOUT"
	textCodeContext        = "TRANSLATABLE_COMMAND_CONTEXT_ERROR"
	textCodeExecuteFailure = "TRANSLATABLE_COMMAND_FAILED"
)

// wrapValidationError always restamps the text code, including errors that
// message validation already wrapped.
func wrapValidationError(messageType string, err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, describe(messageType, "rejected invalid message")).
		WithTextCode(textCodeValidation)
}

// Context and execution errors that already carry a go-errors category pass
// through so domain codes such as missing translations survive the handler.
func wrapContextError(messageType string, err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	code, reason := textCodeContext, "context error"
	switch {
	case errors.Is(err, context.Canceled):
		code, reason = textCodeCanceled, "cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		code, reason = textCodeTimeout, "deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, describe(messageType, reason)).
		WithTextCode(code)
}

func wrapExecuteError(messageType string, err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, describe(messageType, "failed")).
		WithTextCode(textCodeExecuteFailure)
}

func describe(messageType, reason string) string {
	if messageType == "" {
		return "command " + reason
	}
	return fmt.Sprintf("command %s %s", messageType, reason)
}
