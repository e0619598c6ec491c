package field

import (
	"encoding/json"
	"sort"

	"github.com/goliatone/go-translatable/internal/languages"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// Row is one editable language entry.
type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Submission carries the rows posted for a field. Present is false when the
// request did not include a value for the field at all.
type Submission struct {
	Present bool
	Rows    []Row
}

// Submit builds a present submission from rows.
func Submit(rows ...Row) Submission {
	return Submission{Present: true, Rows: rows}
}

// Load returns the rows presented when editing entity. When nothing is stored
// yet and required languages are configured, one empty row per required code
// is returned so editors always see the mandatory entries.
func (f *Field) Load(entity interfaces.TranslatableEntity) []Row {
	var stored map[string]string
	if entity != nil {
		stored = entity.GetTranslations(f.cfg.Attribute)
	}

	if len(stored) == 0 {
		rows := make([]Row, 0, len(f.cfg.Required))
		for _, code := range f.cfg.Required {
			rows = append(rows, Row{Key: code})
		}
		return rows
	}

	rows := make([]Row, 0, len(stored))
	for _, code := range f.orderCodes(stored) {
		rows = append(rows, Row{Key: code, Value: stored[code]})
	}
	return rows
}

// Submittable reports whether Apply will write sub to an entity.
func (f *Field) Submittable(sub Submission) bool {
	return !f.cfg.ReadOnly && sub.Present
}

// Collapse turns rows into a translation map. Rows without a key or value are
// dropped and the last row wins for repeated keys.
func Collapse(rows []Row) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		key := languages.Normalize(row.Key)
		if key == "" || row.Value == "" {
			continue
		}
		out[key] = row.Value
	}
	return out
}

// Apply validates sub and commits it to entity using the field commit policy.
// When a required language is missing a *RequiredLanguageMissingError is
// returned and entity is left untouched.
func (f *Field) Apply(entity interfaces.TranslatableEntity, sub Submission) (interfaces.TranslatableEntity, error) {
	if !f.Submittable(sub) || entity == nil {
		return entity, nil
	}

	translations, err := f.Validate(sub.Rows)
	if err != nil {
		return entity, err
	}

	if f.cfg.Commit == CommitReplace {
		entity.ReplaceTranslations(f.cfg.Attribute, translations)
		return entity, nil
	}
	entity.SetTranslations(f.cfg.Attribute, translations)
	return entity, nil
}

// Validate collapses rows and checks required language coverage without
// touching any entity.
func (f *Field) Validate(rows []Row) (map[string]string, error) {
	translations := Collapse(rows)
	if missing := languages.Missing(f.cfg.Required, translations); len(missing) > 0 {
		return nil, &RequiredLanguageMissingError{
			Field:   f.cfg.Attribute,
			Label:   f.cfg.Label,
			Missing: missing,
		}
	}
	return translations, nil
}

// RenderSummary renders the stored translations as a JSON object for list
// and export views.
func (f *Field) RenderSummary(entity interfaces.TranslatableEntity) string {
	stored := map[string]string{}
	if entity != nil {
		if translations := entity.GetTranslations(f.cfg.Attribute); translations != nil {
			stored = translations
		}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return ""
	}
	return string(data)
}

// RenderLocale returns the translation for locale. When it is missing the
// first stored code in selector order is used instead.
func (f *Field) RenderLocale(entity interfaces.TranslatableEntity, locale string) string {
	if entity == nil {
		return ""
	}
	stored := entity.GetTranslations(f.cfg.Attribute)
	if len(stored) == 0 {
		return ""
	}
	if value, ok := stored[languages.Normalize(locale)]; ok && value != "" {
		return value
	}
	for _, code := range f.orderCodes(stored) {
		if value := stored[code]; value != "" {
			return value
		}
	}
	return ""
}

// orderCodes sorts the stored codes by their position in the selector; codes
// outside the selector follow in lexical order.
func (f *Field) orderCodes(stored map[string]string) []string {
	rank := make(map[string]int, len(stored))
	for i, code := range f.EffectiveLanguageCodes() {
		rank[code] = i
	}

	codes := make([]string, 0, len(stored))
	for code := range stored {
		codes = append(codes, code)
	}
	sort.SliceStable(codes, func(i, j int) bool {
		ri, iok := rank[codes[i]]
		rj, jok := rank[codes[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return codes[i] < codes[j]
		}
	})
	return codes
}
