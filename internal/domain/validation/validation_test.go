package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprisland/internal/domain/entity"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    entity.Color
		wantErr bool
	}{
		{name: "hex", value: "#ff00ff", want: entity.RGB(255, 0, 255)},
		{name: "hex uppercase", value: "#00FFFF", want: entity.RGB(0, 255, 255)},
		{name: "hex with alpha", value: "#00000040", want: entity.RGBA(0, 0, 0, 64)},
		{name: "surrounding spaces", value: "  #400040 ", want: entity.RGB(64, 0, 64)},
		{name: "css name", value: "magenta", want: entity.RGB(255, 0, 255)},
		{name: "css name mixed case", value: "Teal", want: entity.RGB(0, 128, 128)},
		{name: "empty", value: "", wantErr: true},
		{name: "short hex", value: "#fff", wantErr: true},
		{name: "bad digits", value: "#gg0000", wantErr: true},
		{name: "unknown name", value: "notacolor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateGradientPair(t *testing.T) {
	assert.Empty(t, ValidateGradientPair("appearance.selected", "#ff00ff", "cyan"))

	errs := ValidateGradientPair("appearance.selected", "nope", "#12")
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "appearance.selected.top")
	assert.Contains(t, errs[1], "appearance.selected.bottom")
}

func TestValidateKeyBindings(t *testing.T) {
	assert.Empty(t, ValidateKeyBindings("keys.split", []string{"q", "s"}))
	assert.NotEmpty(t, ValidateKeyBindings("keys.split", nil))
	assert.NotEmpty(t, ValidateKeyBindings("keys.split", []string{" "}))
	assert.NotEmpty(t, ValidateKeyBindings("keys.split", []string{"q", "q"}))
}

func TestValidateDisjointBindings(t *testing.T) {
	assert.Empty(t, ValidateDisjointBindings(map[string][]string{
		"keys.split": {"q"},
		"keys.quit":  {"esc", "ctrl+c"},
	}))

	errs := ValidateDisjointBindings(map[string][]string{
		"keys.split": {"q"},
		"keys.quit":  {"q"},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, `key "q" is bound to both keys.quit and keys.split`, errs[0])
}

func TestValidateFontPath(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "label.ttf")
	require.NoError(t, os.WriteFile(font, []byte("x"), 0o600))

	assert.Empty(t, ValidateFontPath("snapshot.font_path", ""))
	assert.Empty(t, ValidateFontPath("snapshot.font_path", font))
	assert.NotEmpty(t, ValidateFontPath("snapshot.font_path", filepath.Join(dir, "missing.ttf")))
	assert.NotEmpty(t, ValidateFontPath("snapshot.font_path", filepath.Join(dir, "label.txt")))
}
