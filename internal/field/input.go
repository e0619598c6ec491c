package field

import (
	"strings"

	"github.com/goliatone/go-translatable/internal/languages"
)

// InputKind selects the widget used to edit the value half of each row.
type InputKind int

const (
	InputText InputKind = iota
	InputTextarea
	InputRichText
	InputNested
)

// String returns the widget identifier understood by form renderers.
func (k InputKind) String() string {
	switch k {
	case InputTextarea:
		return "textarea"
	case InputRichText:
		return "rich_text"
	case InputNested:
		return "nested"
	default:
		return "text"
	}
}

// ParseInputKind resolves widget identifiers ("text", "textarea", "rich_text",
// "nested") and a few common aliases.
func ParseInputKind(value string) (InputKind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "text":
		return InputText, true
	case "textarea", "multiline":
		return InputTextarea, true
	case "rich_text", "richtext", "tinymce", "wysiwyg":
		return InputRichText, true
	case "nested", "json":
		return InputNested, true
	default:
		return InputText, false
	}
}

const (
	keyName   = "key"
	valueName = "value"

	widgetSelect = "select"
)

// SelectOption is a single entry of the language selector.
type SelectOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// SubField describes one column of the key/value editor. Renderers choose a
// concrete widget from Widget.
type SubField struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Widget   string         `json:"widget"`
	Options  []SelectOption `json:"options,omitempty"`
	Nullable bool           `json:"nullable,omitempty"`
}

func keySubField(label string, codes []string) SubField {
	options := make([]SelectOption, 0, len(codes))
	for _, code := range codes {
		options = append(options, SelectOption{
			Value:       code,
			Label:       languages.Label(code),
			Description: languages.DisplayName(code),
		})
	}
	return SubField{
		Name:     keyName,
		Label:    label,
		Widget:   widgetSelect,
		Options:  options,
		Nullable: true,
	}
}

func valueSubField(kind InputKind, label string) SubField {
	return SubField{
		Name:   valueName,
		Label:  label,
		Widget: kind.String(),
	}
}
