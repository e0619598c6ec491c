package records

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/pkg/testsupport"
)

func TestBunRepository_PersistsTranslations(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &Record{Slug: "about", Kind: "page"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	created.SetTranslations("title", map[string]string{"en": "About", "de": "Über"})
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	got := fetched.GetTranslations("title")
	if got["en"] != "About" || got["de"] != "Über" {
		t.Fatalf("unexpected translations %v", got)
	}

	fetched.ReplaceTranslations("title", map[string]string{"en": "About us"})
	if _, err := repo.Update(ctx, fetched); err != nil {
		t.Fatalf("Update() replace error = %v", err)
	}

	bySlug, err := repo.GetBySlug(ctx, "about")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	got = bySlug.GetTranslations("title")
	if len(got) != 1 || got["en"] != "About us" {
		t.Fatalf("expected replaced translations, got %v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
}

func TestBunRepository_CachedMergeThenReplace(t *testing.T) {
	db := newTestDB(t)
	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	repo := NewBunRepositoryWithCache(db, cacheSvc, repocache.NewDefaultKeySerializer())
	ctx := context.Background()

	created, err := repo.Create(ctx, &Record{Slug: "contact", Kind: "page"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Warm the cache before writing so stale entries would surface below.
	warm, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(warm.GetTranslations("title")) != 0 {
		t.Fatalf("expected no translations yet, got %v", warm.GetTranslations("title"))
	}

	merged := warm.Clone()
	merged.SetTranslations("title", map[string]string{"en": "Contact", "de": "Kontakt"})
	if _, err := repo.Update(ctx, merged); err != nil {
		t.Fatalf("Update() merge error = %v", err)
	}
	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got, want := fetched.GetTranslations("title"), map[string]string{"en": "Contact", "de": "Kontakt"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after merge got %v, want %v", got, want)
	}

	replaced := fetched.Clone()
	replaced.ReplaceTranslations("title", map[string]string{"en": "Hello"})
	if _, err := repo.Update(ctx, replaced); err != nil {
		t.Fatalf("Update() replace error = %v", err)
	}
	fetched, err = repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got, want := fetched.GetTranslations("title"), map[string]string{"en": "Hello"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after replace got %v, want %v", got, want)
	}

	bySlug, err := repo.GetBySlug(ctx, "contact")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got := bySlug.GetTranslations("title"); len(got) != 1 || got["en"] != "Hello" {
		t.Fatalf("expected slug lookup to see replaced translations, got %v", got)
	}
}

func TestBunRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := testsupport.NewSQLiteMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := CreateSchema(ctx, db); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}
