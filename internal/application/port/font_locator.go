package port

import "context"

// FontLocator maps an installed font family name to a font file on disk.
type FontLocator interface {
	// Locate returns the path of a file for family, preferring its regular style.
	Locate(ctx context.Context, family string) (string, error)

	// IsAvailable returns true if font lookup is available on this system.
	IsAvailable(ctx context.Context) bool
}
