package field

import (
	"errors"
	"reflect"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

type stubEntity struct {
	attrs    map[string]map[string]string
	sets     int
	replaces int
}

func newStubEntity(attribute string, stored map[string]string) *stubEntity {
	e := &stubEntity{attrs: map[string]map[string]string{}}
	if stored != nil {
		e.attrs[attribute] = copyMap(stored)
	}
	return e
}

func (e *stubEntity) GetTranslations(attribute string) map[string]string {
	return copyMap(e.attrs[attribute])
}

func (e *stubEntity) SetTranslations(attribute string, translations map[string]string) {
	e.sets++
	current := e.attrs[attribute]
	if current == nil {
		current = map[string]string{}
	}
	for code, value := range translations {
		current[code] = value
	}
	e.attrs[attribute] = current
}

func (e *stubEntity) ReplaceTranslations(attribute string, translations map[string]string) {
	e.replaces++
	e.attrs[attribute] = copyMap(translations)
}

func copyMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func TestNewDerivesAttributeFromLabel(t *testing.T) {
	f := New("Page Title").Build()
	if f.Attribute() != "page_title" {
		t.Fatalf("expected page_title attribute, got %q", f.Attribute())
	}

	f = New("Title", "headline").Build()
	if f.Attribute() != "headline" {
		t.Fatalf("expected explicit attribute, got %q", f.Attribute())
	}
}

func TestEffectiveLanguageCodesOrdering(t *testing.T) {
	f := New("Title").
		Languages("zu", "de", "af", "fr").
		PriorityLanguages("de", "pt-br").
		RequiredLanguages("fr", "en").
		Build()

	got := f.EffectiveLanguageCodes()
	want := []string{"en", "fr", "de", "pt-br", "af", "zu"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EffectiveLanguageCodes() = %v, want %v", got, want)
	}
}

func TestBuildFreezesConfiguration(t *testing.T) {
	b := New("Title").Languages("en", "fr")
	f := b.Build()
	b.Languages("de").RequiredLanguages("de")

	if got := f.EffectiveLanguageCodes(); !reflect.DeepEqual(got, []string{"en", "fr"}) {
		t.Fatalf("built field changed after builder mutation: %v", got)
	}
	cfg := f.Config()
	cfg.Available[0] = "xx"
	if f.EffectiveLanguageCodes()[0] != "en" {
		t.Fatal("Config() exposed internal slices")
	}
}

func TestDefinitions(t *testing.T) {
	f := New("Title").
		Languages("fr", "en").
		KeyValue("Language", "Translation").
		Textarea().
		RichText().
		Build()

	defs := f.Definitions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 sub fields, got %d", len(defs))
	}

	key := defs[0]
	if key.Name != "key" || key.Label != "Language" || key.Widget != "select" || !key.Nullable {
		t.Fatalf("unexpected key sub field %+v", key)
	}
	wantOptions := []SelectOption{
		{Value: "en", Label: "EN", Description: "English"},
		{Value: "fr", Label: "FR", Description: "French"},
	}
	if !reflect.DeepEqual(key.Options, wantOptions) {
		t.Fatalf("unexpected options %+v", key.Options)
	}

	value := defs[1]
	if value.Name != "value" || value.Label != "Translation" || value.Widget != "rich_text" {
		t.Fatalf("unexpected value sub field %+v", value)
	}
}

func TestInputKindLastCallWins(t *testing.T) {
	cases := []struct {
		name    string
		builder *Builder
		want    string
	}{
		{"default", New("Title"), "text"},
		{"textarea", New("Title").Textarea(), "textarea"},
		{"rich text", New("Title").Textarea().RichText(), "rich_text"},
		{"nested", New("Title").RichText().Nested(), "nested"},
		{"back to text", New("Title").Nested().Text(), "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.builder.Build().Definitions()[1].Widget; got != tc.want {
				t.Fatalf("widget = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseInputKind(t *testing.T) {
	if kind, ok := ParseInputKind("TinyMCE"); !ok || kind != InputRichText {
		t.Fatalf("expected rich text, got %v %v", kind, ok)
	}
	if _, ok := ParseInputKind("markdown"); ok {
		t.Fatal("expected unknown widget to be rejected")
	}
}

func TestLoadSeedsRequiredRowsForNewEntity(t *testing.T) {
	f := New("Title").RequiredLanguages("fr", "en").Build()
	entity := newStubEntity("title", nil)

	got := f.Load(entity)
	want := []Row{{Key: "en"}, {Key: "fr"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
	if entity.sets != 0 || entity.replaces != 0 {
		t.Fatal("Load() must not mutate the entity")
	}
}

func TestLoadWithoutRequiredReturnsEmpty(t *testing.T) {
	f := New("Title").Build()
	if rows := f.Load(newStubEntity("title", nil)); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestLoadOrdersStoredRows(t *testing.T) {
	f := New("Title").Languages("de", "en", "fr").PriorityLanguages("fr").Build()
	entity := newStubEntity("title", map[string]string{"en": "Hi", "fr": "Salut", "xx": "??"})

	got := f.Load(entity)
	want := []Row{{Key: "fr", Value: "Salut"}, {Key: "en", Value: "Hi"}, {Key: "xx", Value: "??"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	f := New("Title").Build()
	entity := newStubEntity("title", map[string]string{"en": "Hi", "fr": "Salut"})

	rows := f.Load(entity)
	if _, err := f.Apply(entity, Submit(rows...)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := map[string]string{"en": "Hi", "fr": "Salut"}
	if got := entity.GetTranslations("title"); !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip = %v, want %v", got, want)
	}
}

func TestApplyRejectsMissingRequiredLanguages(t *testing.T) {
	f := New("Title").RequiredLanguages("en", "fr").Build()
	entity := newStubEntity("title", map[string]string{"en": "Old"})

	_, err := f.Apply(entity, Submit(Row{Key: "en", Value: "Hi"}))
	if !errors.Is(err, ErrRequiredLanguageMissing) {
		t.Fatalf("expected ErrRequiredLanguageMissing, got %v", err)
	}

	var missingErr *RequiredLanguageMissingError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected RequiredLanguageMissingError, got %T", err)
	}
	if !reflect.DeepEqual(missingErr.Missing, []string{"fr"}) {
		t.Fatalf("unexpected missing codes %v", missingErr.Missing)
	}
	wantMsg := "The field Title does not have translation values set for the following languages: fr"
	if err.Error() != wantMsg {
		t.Fatalf("unexpected message %q", err.Error())
	}

	if entity.sets != 0 || entity.replaces != 0 {
		t.Fatal("entity must not be modified when validation fails")
	}
	if got := entity.GetTranslations("title"); !reflect.DeepEqual(got, map[string]string{"en": "Old"}) {
		t.Fatalf("entity changed: %v", got)
	}
}

func TestApplyListsEveryMissingCode(t *testing.T) {
	f := New("Body").RequiredLanguages("fr", "de", "en").Build()

	_, err := f.Apply(newStubEntity("body", nil), Submit(Row{Key: "de", Value: ""}))
	var missingErr *RequiredLanguageMissingError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected RequiredLanguageMissingError, got %v", err)
	}
	if !reflect.DeepEqual(missingErr.Missing, []string{"de", "en", "fr"}) {
		t.Fatalf("unexpected missing codes %v", missingErr.Missing)
	}
	if got := missingErr.Error(); got != "The field Body does not have translation values set for the following languages: de, en, fr" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestApplyDropsEmptyRows(t *testing.T) {
	f := New("Title").RequiredLanguages("en").Build()
	entity := newStubEntity("title", nil)

	_, err := f.Apply(entity, Submit(
		Row{Key: "en", Value: "Hi"},
		Row{Key: "de", Value: ""},
		Row{Key: "", Value: "orphan"},
	))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := entity.GetTranslations("title"); !reflect.DeepEqual(got, map[string]string{"en": "Hi"}) {
		t.Fatalf("unexpected translations %v", got)
	}
}

func TestApplyLastDuplicateWins(t *testing.T) {
	f := New("Title").Build()
	entity := newStubEntity("title", nil)

	if _, err := f.Apply(entity, Submit(Row{Key: "en", Value: "First"}, Row{Key: "EN", Value: "Second"})); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := entity.GetTranslations("title")["en"]; got != "Second" {
		t.Fatalf("expected last duplicate to win, got %q", got)
	}
}

func TestApplyCommitPolicies(t *testing.T) {
	stored := map[string]string{"en": "Hi", "de": "Hallo"}
	sub := Submit(Row{Key: "en", Value: "Hello"})

	merge := New("Title").Build()
	merged := newStubEntity("title", stored)
	if _, err := merge.Apply(merged, sub); err != nil {
		t.Fatalf("merge Apply() error = %v", err)
	}
	if got := merged.GetTranslations("title"); !reflect.DeepEqual(got, map[string]string{"en": "Hello", "de": "Hallo"}) {
		t.Fatalf("merge result = %v", got)
	}
	if merged.sets != 1 || merged.replaces != 0 {
		t.Fatalf("expected merge commit, sets=%d replaces=%d", merged.sets, merged.replaces)
	}

	replace := New("Title").Removable(true).Build()
	replaced := newStubEntity("title", stored)
	if _, err := replace.Apply(replaced, sub); err != nil {
		t.Fatalf("replace Apply() error = %v", err)
	}
	if got := replaced.GetTranslations("title"); !reflect.DeepEqual(got, map[string]string{"en": "Hello"}) {
		t.Fatalf("replace result = %v", got)
	}
	if replace.Commit().String() != "replace" {
		t.Fatalf("unexpected commit policy %s", replace.Commit())
	}
}

func TestApplyIsNoOpWhenNotSubmittable(t *testing.T) {
	entity := newStubEntity("title", map[string]string{"en": "Hi"})

	readOnly := New("Title").RequiredLanguages("fr").ReadOnly(true).Build()
	if _, err := readOnly.Apply(entity, Submit(Row{Key: "en", Value: "Changed"})); err != nil {
		t.Fatalf("read-only Apply() error = %v", err)
	}

	f := New("Title").RequiredLanguages("fr").Build()
	got, err := f.Apply(entity, Submission{})
	if err != nil {
		t.Fatalf("absent submission Apply() error = %v", err)
	}
	if got != entity {
		t.Fatal("expected the same entity to be returned")
	}
	if entity.sets != 0 || entity.replaces != 0 {
		t.Fatal("entity must not be modified")
	}
}

func TestRenderSummary(t *testing.T) {
	f := New("Title").Build()
	entity := newStubEntity("title", map[string]string{"fr": "Salut", "en": "Hi"})

	if got := f.RenderSummary(entity); got != `{"en":"Hi","fr":"Salut"}` {
		t.Fatalf("RenderSummary() = %s", got)
	}
	if got := f.RenderSummary(newStubEntity("title", nil)); got != `{}` {
		t.Fatalf("RenderSummary() empty = %s", got)
	}
}

func TestRenderLocaleFallsBack(t *testing.T) {
	f := New("Title").RequiredLanguages("en").Build()
	entity := newStubEntity("title", map[string]string{"fr": "Salut", "en": "Hi"})

	if got := f.RenderLocale(entity, "fr"); got != "Salut" {
		t.Fatalf("RenderLocale(fr) = %q", got)
	}
	if got := f.RenderLocale(entity, "de"); got != "Hi" {
		t.Fatalf("RenderLocale(de) = %q", got)
	}
}

func TestRequiredLanguageMissingErrorAdapters(t *testing.T) {
	f := New("Title").RequiredLanguages("en").Build()
	_, err := f.Apply(newStubEntity("title", nil), Submit())

	var missingErr *RequiredLanguageMissingError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected RequiredLanguageMissingError, got %v", err)
	}

	errs := missingErr.ValidationErrors()
	fieldErr, ok := errs["title"].(validation.Error)
	if !ok {
		t.Fatalf("expected validation error keyed by attribute, got %#v", errs)
	}
	if fieldErr.Code() != requiredLanguageMissingCode {
		t.Fatalf("unexpected code %q", fieldErr.Code())
	}

	wrapped := AsValidationError(err)
	if !goerrors.IsCategory(wrapped, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", wrapped)
	}
	if !errors.Is(wrapped, ErrRequiredLanguageMissing) {
		t.Fatalf("expected wrapped error to keep the sentinel, got %v", wrapped)
	}

	other := errors.New("boom")
	if AsValidationError(other) != other {
		t.Fatal("expected unrelated errors to pass through")
	}
}
