package languages

import (
	"sort"
	"strings"
)

// Normalize lower-cases a language code, trims surrounding whitespace and
// converts POSIX style separators ("pt_BR") into hyphens ("pt-br").
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	return strings.ToLower(strings.ReplaceAll(code, "_", "-"))
}

// Clean normalizes every code, drops empty entries and duplicates while
// keeping the first occurrence. The result is never nil.
func Clean(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		normalized := Normalize(code)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// Sorted returns a cleaned, lexically sorted copy of codes.
func Sorted(codes []string) []string {
	out := Clean(codes)
	sort.Strings(out)
	return out
}

// Effective merges the three classification sets into the list presented to
// editors: required codes first, then priority codes, then the remaining
// available codes. Each group is sorted on its own and a code that appears in
// several groups keeps the slot of its first group.
func Effective(required, priority, available []string) []string {
	groups := [][]string{Sorted(required), Sorted(priority), Sorted(available)}

	size := 0
	for _, group := range groups {
		size += len(group)
	}

	out := make([]string, 0, size)
	seen := make(map[string]struct{}, size)
	for _, group := range groups {
		for _, code := range group {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out
}

// Missing returns the entries of required that have no key in present,
// preserving the order of required.
func Missing(required []string, present map[string]string) []string {
	var missing []string
	for _, code := range required {
		if _, ok := present[code]; ok {
			continue
		}
		missing = append(missing, code)
	}
	return missing
}

// Label renders the option label shown in selection widgets.
func Label(code string) string {
	return strings.ToUpper(code)
}
