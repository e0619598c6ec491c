package interfaces

// TranslatableEntity is implemented by records that persist one or more
// attributes as a map of language code to localized text.
//
// GetTranslations must not expose internal state: callers are free to mutate
// the returned map. SetTranslations layers the provided values over the
// stored ones, while ReplaceTranslations discards codes that are not present
// in the provided map.
type TranslatableEntity interface {
	GetTranslations(attribute string) map[string]string
	SetTranslations(attribute string, translations map[string]string)
	ReplaceTranslations(attribute string, translations map[string]string)
}
