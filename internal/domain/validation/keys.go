package validation

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateKeyBindings checks a list of Bubble Tea key names bound to one action.
func ValidateKeyBindings(field string, keys []string) []string {
	var errs []string
	if len(keys) == 0 {
		return []string{field + " must contain at least one key"}
	}

	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, field+" cannot contain an empty key")
			continue
		}
		if strings.ContainsAny(k, "\r\n\t") {
			errs = append(errs, fmt.Sprintf("%s key %q must not contain control whitespace", field, k))
		}
		if _, dup := seen[k]; dup {
			errs = append(errs, fmt.Sprintf("%s lists %q more than once", field, k))
		}
		seen[k] = struct{}{}
	}
	return errs
}

// ValidateDisjointBindings reports keys bound to more than one action.
func ValidateDisjointBindings(bindings map[string][]string) []string {
	owner := make(map[string]string)
	var errs []string
	for _, field := range sortedKeys(bindings) {
		for _, k := range bindings[field] {
			if prev, ok := owner[k]; ok && prev != field {
				errs = append(errs, fmt.Sprintf("key %q is bound to both %s and %s", k, prev, field))
				continue
			}
			owner[k] = field
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
