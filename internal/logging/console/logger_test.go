package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("translatable.admin")
	logger = logging.WithFields(logger, map[string]any{"module": "translatable.admin"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"correlation_id": "req-1234",
	})
	logger = logger.WithContext(ctx)

	recordID := uuid.MustParse("8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999")
	logger.Info("translations.saved",
		"record_id", recordID,
		"locales", []string{"en", "fr"},
		"label", "Page title",
	)

	got := strings.TrimSpace(buf.String())
	want := `2024-03-14T15:09:26.535897Z INFO translations.saved correlation_id=req-1234 label="Page title" locales=en,fr logger=translatable.admin module=translatable.admin record_id=8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("translatable.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar", "dangling")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") || !strings.Contains(lines[0], "field_1=dangling") {
		t.Fatalf("unexpected log line %s", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	if level, ok := console.ParseLevel("Warning"); !ok || level != console.LevelWarn {
		t.Fatalf("expected warn level, got %v %v", level, ok)
	}
	if _, ok := console.ParseLevel("verbose"); ok {
		t.Fatal("expected unknown level to be rejected")
	}
}
