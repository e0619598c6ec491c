package field

import (
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-translatable/internal/languages"
)

const (
	DefaultKeyLabel   = "Code"
	DefaultValueLabel = "Value"
)

// CommitPolicy controls how submitted translations are written back.
type CommitPolicy int

const (
	// CommitMerge layers submitted values over the stored translations.
	CommitMerge CommitPolicy = iota
	// CommitReplace discards stored codes that were not submitted.
	CommitReplace
)

func (p CommitPolicy) String() string {
	if p == CommitReplace {
		return "replace"
	}
	return "merge"
}

// Config is the immutable definition of a translatable field.
type Config struct {
	Label      string
	Attribute  string
	Available  []string
	Priority   []string
	Required   []string
	Input      InputKind
	KeyLabel   string
	ValueLabel string
	Commit     CommitPolicy
	ReadOnly   bool
}

func (c Config) clone() Config {
	out := c
	out.Available = append([]string(nil), c.Available...)
	out.Priority = append([]string(nil), c.Priority...)
	out.Required = append([]string(nil), c.Required...)
	return out
}

// Builder assembles a field definition through chained calls. Build freezes
// the configuration; later calls on the builder do not affect built fields.
type Builder struct {
	cfg Config
}

// New starts a field definition for label. The target attribute defaults to
// a snake-cased slug of the label.
func New(label string, attribute ...string) *Builder {
	cfg := Config{
		Label:      strings.TrimSpace(label),
		Available:  languages.Default(),
		KeyLabel:   DefaultKeyLabel,
		ValueLabel: DefaultValueLabel,
	}
	cfg.Attribute = attributeFromLabel(cfg.Label)
	if len(attribute) > 0 && strings.TrimSpace(attribute[0]) != "" {
		cfg.Attribute = strings.TrimSpace(attribute[0])
	}
	return &Builder{cfg: cfg}
}

// Attribute overrides the entity attribute the field reads and writes.
func (b *Builder) Attribute(name string) *Builder {
	if name = strings.TrimSpace(name); name != "" {
		b.cfg.Attribute = name
	}
	return b
}

// Languages replaces the selectable universe.
func (b *Builder) Languages(codes ...string) *Builder {
	b.cfg.Available = languages.Sorted(codes)
	return b
}

// RequiredLanguages marks codes that must carry a value on save.
func (b *Builder) RequiredLanguages(codes ...string) *Builder {
	b.cfg.Required = languages.Sorted(codes)
	return b
}

// PriorityLanguages marks codes listed right after the required ones.
func (b *Builder) PriorityLanguages(codes ...string) *Builder {
	b.cfg.Priority = languages.Sorted(codes)
	return b
}

// Text restores the default single line input.
func (b *Builder) Text() *Builder {
	b.cfg.Input = InputText
	return b
}

// Textarea edits values with a multi-line input.
func (b *Builder) Textarea() *Builder {
	b.cfg.Input = InputTextarea
	return b
}

// RichText edits values with a rich text editor.
func (b *Builder) RichText() *Builder {
	b.cfg.Input = InputRichText
	return b
}

// Nested edits values with a nested editor.
func (b *Builder) Nested() *Builder {
	b.cfg.Input = InputNested
	return b
}

// Input sets the value widget explicitly.
func (b *Builder) Input(kind InputKind) *Builder {
	b.cfg.Input = kind
	return b
}

// KeyValue relabels the language selector and the value input.
func (b *Builder) KeyValue(keyLabel, valueLabel string) *Builder {
	if keyLabel = strings.TrimSpace(keyLabel); keyLabel != "" {
		b.cfg.KeyLabel = keyLabel
	}
	if valueLabel = strings.TrimSpace(valueLabel); valueLabel != "" {
		b.cfg.ValueLabel = valueLabel
	}
	return b
}

// Removable switches the commit policy to replace, so codes removed in the
// editor are deleted from the entity.
func (b *Builder) Removable(removable bool) *Builder {
	if removable {
		b.cfg.Commit = CommitReplace
	} else {
		b.cfg.Commit = CommitMerge
	}
	return b
}

// ReadOnly marks the field as non submittable. Apply becomes a no-op.
func (b *Builder) ReadOnly(readOnly bool) *Builder {
	b.cfg.ReadOnly = readOnly
	return b
}

// Build returns the immutable field.
func (b *Builder) Build() *Field {
	return &Field{cfg: b.cfg.clone()}
}

// Field adapts a translatable entity attribute into key/value form rows.
// A Field is immutable and safe for concurrent use.
type Field struct {
	cfg Config
}

// Config returns a copy of the field definition.
func (f *Field) Config() Config {
	return f.cfg.clone()
}

func (f *Field) Label() string {
	return f.cfg.Label
}

func (f *Field) Attribute() string {
	return f.cfg.Attribute
}

func (f *Field) Commit() CommitPolicy {
	return f.cfg.Commit
}

func (f *Field) ReadOnly() bool {
	return f.cfg.ReadOnly
}

// RequiredLanguages returns the required codes in validation order.
func (f *Field) RequiredLanguages() []string {
	return append([]string(nil), f.cfg.Required...)
}

// EffectiveLanguageCodes lists the selectable codes: required, then priority,
// then the remaining available codes.
func (f *Field) EffectiveLanguageCodes() []string {
	return languages.Effective(f.cfg.Required, f.cfg.Priority, f.cfg.Available)
}

// Definitions describes the two columns rendered for each row.
func (f *Field) Definitions() []SubField {
	return []SubField{
		keySubField(f.cfg.KeyLabel, f.EffectiveLanguageCodes()),
		valueSubField(f.cfg.Input, f.cfg.ValueLabel),
	}
}

func attributeFromLabel(label string) string {
	if label == "" {
		return ""
	}
	normalized, err := slug.Normalize(label)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.Join(strings.Fields(label), "_"))
	}
	return strings.ReplaceAll(normalized, "-", "_")
}
