package records

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &Record{Slug: "home", Kind: "page"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	if _, err := repo.Create(ctx, &Record{Slug: "home"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
	if _, err := repo.Create(ctx, &Record{}); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}

	created.SetTranslations("title", map[string]string{"en": "Home"})
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	fetched, err := repo.GetBySlug(ctx, "home")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if fetched.GetTranslations("title")["en"] != "Home" {
		t.Fatalf("expected stored translation, got %v", fetched.Attributes)
	}

	fetched.SetTranslations("title", map[string]string{"en": "Local"})
	again, _ := repo.GetByID(ctx, created.ID)
	if again.GetTranslations("title")["en"] != "Home" {
		t.Fatal("repository returned shared record state")
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List() = %v, %v", list, err)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "record" {
		t.Fatalf("expected NotFoundError, got %T", err)
	}

	if _, err := repo.Update(ctx, &Record{ID: uuid.New(), Slug: "missing"}); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on update, got %v", err)
	}
}
