package languages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var englishNamer = display.Tags(language.English)

// Tag parses code into a BCP 47 language tag.
func Tag(code string) (language.Tag, bool) {
	normalized := Normalize(code)
	if normalized == "" {
		return language.Und, false
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// DisplayName returns the English name of the language identified by code,
// or an empty string when the code is not a parseable tag.
func DisplayName(code string) string {
	tag, ok := Tag(code)
	if !ok {
		return ""
	}
	return englishNamer.Name(tag)
}

// NativeName returns the name of the language written in that language.
func NativeName(code string) string {
	tag, ok := Tag(code)
	if !ok {
		return ""
	}
	return display.Self.Name(tag)
}
