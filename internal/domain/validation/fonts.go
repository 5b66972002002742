package validation

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var fontExtensions = []string{".ttf", ".otf", ".ttc"}

// ValidateFontPath checks an optional font file path. Empty means "use the
// embedded font".
func ValidateFontPath(field string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var errs []string
	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
		return errs
	}

	ext := strings.ToLower(filepath.Ext(value))
	if !slices.Contains(fontExtensions, ext) {
		errs = append(errs, field+" must point to a .ttf, .otf or .ttc file")
	}

	info, err := os.Stat(value)
	switch {
	case err != nil:
		errs = append(errs, field+" does not exist: "+value)
	case info.IsDir():
		errs = append(errs, field+" is a directory")
	}

	return errs
}
