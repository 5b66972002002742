package fonts

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func stubLocator(responses map[string]string, calls *[]string) *Locator {
	l := NewLocator()
	l.list = func(_ context.Context, pattern string) ([]byte, error) {
		*calls = append(*calls, pattern)
		return []byte(responses[pattern]), nil
	}
	return l
}

func TestLocator_PrefersRegularStyle(t *testing.T) {
	var calls []string
	l := stubLocator(map[string]string{
		":family=Fira Sans:style=Regular": "/usr/share/fonts/FiraSans-Regular.otf\n",
		":family=Fira Sans":               "/usr/share/fonts/FiraSans-Bold.otf\n",
	}, &calls)

	path, err := l.Locate(testContext(), "Fira Sans")

	require.NoError(t, err)
	assert.Equal(t, "/usr/share/fonts/FiraSans-Regular.otf", path)
	assert.Len(t, calls, 1)
}

func TestLocator_FallsBackToAnyStyle(t *testing.T) {
	var calls []string
	l := stubLocator(map[string]string{
		":family=Iosevka": "/fonts/iosevka.ttc\n/fonts/Iosevka-Light.ttf\n",
	}, &calls)

	path, err := l.Locate(testContext(), "Iosevka")

	require.NoError(t, err)
	assert.Equal(t, "/fonts/Iosevka-Light.ttf", path, "collections are skipped")
	assert.Len(t, calls, 2)
}

func TestLocator_CachesResults(t *testing.T) {
	var calls []string
	l := stubLocator(map[string]string{
		":family=Noto Sans:style=Regular": "/fonts/NotoSans-Regular.ttf\n",
	}, &calls)

	_, err := l.Locate(testContext(), "Noto Sans")
	require.NoError(t, err)
	_, err = l.Locate(testContext(), " Noto Sans ")
	require.NoError(t, err)

	assert.Len(t, calls, 1)
}

func TestLocator_NotFound(t *testing.T) {
	var calls []string
	l := stubLocator(map[string]string{}, &calls)

	_, err := l.Locate(testContext(), "No Such Font")
	assert.ErrorIs(t, err, ErrFontNotFound)

	_, err = l.Locate(testContext(), "  ")
	assert.ErrorIs(t, err, ErrFontNotFound)
}

func TestLocator_MissingBinary(t *testing.T) {
	l := NewLocator()
	l.list = func(context.Context, string) ([]byte, error) {
		return nil, &exec.Error{Name: "fc-list", Err: exec.ErrNotFound}
	}

	_, err := l.Locate(testContext(), "Anything")

	assert.ErrorIs(t, err, ErrFontconfigUnavailable)
}

func TestLocator_CommandFailure(t *testing.T) {
	l := NewLocator()
	l.list = func(context.Context, string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}

	_, err := l.Locate(testContext(), "Anything")

	assert.ErrorContains(t, err, "exit status 1")
}

func TestEscapePattern(t *testing.T) {
	assert.Equal(t, `DejaVu Sans\-Mono\:bold`, escapePattern("DejaVu Sans-Mono:bold"))
}

func TestLocator_System(t *testing.T) {
	ctx := testContext()
	l := NewLocator()
	if !l.IsAvailable(ctx) {
		t.Skip("fc-list not available on this system")
	}

	// Documents behaviour on the host rather than asserting installed fonts.
	path, err := l.Locate(ctx, "DejaVu Sans")
	t.Logf("DejaVu Sans -> %q (err: %v)", path, err)
}
