// Package fonts resolves label fonts through fontconfig.
package fonts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/hyprisland/internal/application/port"
	"github.com/bnema/hyprisland/internal/logging"
)

var (
	// ErrFontconfigUnavailable is returned when fc-list is not installed.
	ErrFontconfigUnavailable = errors.New("fontconfig (fc-list) is not available")
	// ErrFontNotFound is returned when no usable file exists for a family.
	ErrFontNotFound = errors.New("font family not found")
)

// Locator implements port.FontLocator using fontconfig's fc-list command.
type Locator struct {
	mu    sync.RWMutex
	cache map[string]string
	// list runs fc-list with the given pattern and returns its output.
	list func(ctx context.Context, pattern string) ([]byte, error)
}

var _ port.FontLocator = (*Locator)(nil)

// NewLocator creates a new font locator.
func NewLocator() *Locator {
	return &Locator{
		cache: make(map[string]string),
		list: func(ctx context.Context, pattern string) ([]byte, error) {
			return exec.CommandContext(ctx, "fc-list", "--format=%{file}\n", pattern).Output()
		},
	}
}

// IsAvailable implements port.FontLocator.
// Returns true if fc-list command is available on the system.
func (*Locator) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// Locate implements port.FontLocator. Results are cached per family.
func (l *Locator) Locate(ctx context.Context, family string) (string, error) {
	log := logging.FromContext(ctx)
	family = strings.TrimSpace(family)
	if family == "" {
		return "", fmt.Errorf("%w: empty family name", ErrFontNotFound)
	}

	l.mu.RLock()
	if path, ok := l.cache[family]; ok {
		l.mu.RUnlock()
		return path, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock.
	if path, ok := l.cache[family]; ok {
		return path, nil
	}

	path, err := l.query(ctx, family)
	if err != nil {
		log.Debug().Str("family", family).Err(err).Msg("font lookup failed")
		return "", err
	}

	l.cache[family] = path
	log.Debug().Str("family", family).Str("file", path).Msg("resolved font family")
	return path, nil
}

// query tries the regular style first, then any style of the family.
func (l *Locator) query(ctx context.Context, family string) (string, error) {
	escaped := escapePattern(family)
	for _, pattern := range []string{":family=" + escaped + ":style=Regular", ":family=" + escaped} {
		output, err := l.list(ctx, pattern)
		if err != nil {
			var execErr *exec.Error
			if errors.As(err, &execErr) {
				return "", ErrFontconfigUnavailable
			}
			return "", fmt.Errorf("fc-list %s: %w", pattern, err)
		}
		if file := firstLoadable(output); file != "" {
			return file, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFontNotFound, family)
}

// firstLoadable returns the first TTF/OTF path in fc-list output.
func firstLoadable(output []byte) string {
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(filepath.Ext(line)) {
		case ".ttf", ".otf":
			return line
		}
	}
	return ""
}

// escapePattern escapes fontconfig pattern metacharacters in a family name.
func escapePattern(family string) string {
	return strings.NewReplacer(`\`, `\\`, `-`, `\-`, `:`, `\:`, `,`, `\,`).Replace(family)
}
