package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/bnema/hyprisland/internal/domain/entity"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// IsHexColor reports whether value is #RRGGBB or #RRGGBBAA.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or a CSS color name ("magenta", "teal").
func ParseColor(value string) (entity.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return entity.Color{}, fmt.Errorf("empty color")
	}

	if !strings.HasPrefix(value, "#") {
		named, ok := colornames.Map[strings.ToLower(value)]
		if !ok {
			return entity.Color{}, fmt.Errorf("unknown color name %q", value)
		}
		return entity.RGBA(named.R, named.G, named.B, named.A), nil
	}

	if !IsHexColor(value) {
		return entity.Color{}, fmt.Errorf("%q is not a hex color like #RRGGBB or #RRGGBBAA", value)
	}

	c, err := colorful.Hex(value[:7])
	if err != nil {
		return entity.Color{}, fmt.Errorf("parse %q: %w", value, err)
	}
	r, g, b := c.RGB255()

	alpha := uint64(0xff)
	if len(value) == 9 {
		alpha, err = strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return entity.Color{}, fmt.Errorf("parse alpha of %q: %w", value, err)
		}
	}

	return entity.RGBA(r, g, b, uint8(alpha)), nil
}

// ValidateColor returns a message per problem with the color in field.
func ValidateColor(field string, value string) []string {
	if _, err := ParseColor(value); err != nil {
		return []string{fmt.Sprintf("%s must be #RRGGBB, #RRGGBBAA or a CSS color name (%v)", field, err)}
	}
	return nil
}

// ValidateGradientPair validates the top/bottom endpoints of a gradient section.
func ValidateGradientPair(prefix string, top string, bottom string) []string {
	var errs []string
	errs = append(errs, ValidateColor(prefix+".top", top)...)
	errs = append(errs, ValidateColor(prefix+".bottom", bottom)...)
	return errs
}
