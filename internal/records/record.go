package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// Record is a persisted entity whose attributes hold translations keyed by
// language code.
type Record struct {
	bun.BaseModel `bun:"table:translatable_records,alias:tr"`

	ID         uuid.UUID                    `bun:",pk,type:uuid"                                json:"id"`
	Slug       string                       `bun:"slug,notnull,unique"                          json:"slug"`
	Kind       string                       `bun:"kind,notnull"                                 json:"kind"`
	Attributes map[string]map[string]string `bun:"attributes,type:jsonb"                        json:"attributes,omitempty"`
	CreatedAt  time.Time                    `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time                    `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

var _ interfaces.TranslatableEntity = (*Record)(nil)

// GetTranslations returns a copy of the translations stored for attribute.
func (r *Record) GetTranslations(attribute string) map[string]string {
	if r == nil {
		return map[string]string{}
	}
	return cloneTranslations(r.Attributes[attribute])
}

// SetTranslations merges translations into attribute.
func (r *Record) SetTranslations(attribute string, translations map[string]string) {
	if r == nil {
		return
	}
	if r.Attributes == nil {
		r.Attributes = map[string]map[string]string{}
	}
	current := r.Attributes[attribute]
	if current == nil {
		current = make(map[string]string, len(translations))
	}
	for code, value := range translations {
		current[code] = value
	}
	r.Attributes[attribute] = current
}

// ReplaceTranslations swaps the translations stored for attribute.
func (r *Record) ReplaceTranslations(attribute string, translations map[string]string) {
	if r == nil {
		return
	}
	if r.Attributes == nil {
		r.Attributes = map[string]map[string]string{}
	}
	r.Attributes[attribute] = cloneTranslations(translations)
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	if r.Attributes != nil {
		out.Attributes = make(map[string]map[string]string, len(r.Attributes))
		for attribute, translations := range r.Attributes {
			out.Attributes[attribute] = cloneTranslations(translations)
		}
	}
	return &out
}

func cloneTranslations(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for code, value := range src {
		out[code] = value
	}
	return out
}
