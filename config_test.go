package translatable_test

import (
	"errors"
	"testing"

	translatable "github.com/goliatone/go-translatable"
)

func TestConfigValidateRejectsUnknownInput(t *testing.T) {
	cfg := translatable.DefaultConfig()
	cfg.Field.Input = "markdown"

	if err := cfg.Validate(); !errors.Is(err, translatable.ErrFieldInputInvalid) {
		t.Fatalf("expected ErrFieldInputInvalid, got %v", err)
	}
}

func TestConfigValidateRejectsUnknownDialect(t *testing.T) {
	cfg := translatable.DefaultConfig()
	cfg.Storage.Provider = "bun"
	cfg.Storage.Dialect = "mysql"

	if err := cfg.Validate(); !errors.Is(err, translatable.ErrStorageDialectUnknown) {
		t.Fatalf("expected ErrStorageDialectUnknown, got %v", err)
	}
}

func TestConfigValidateLoggingProviderRequired(t *testing.T) {
	cfg := translatable.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, translatable.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}
