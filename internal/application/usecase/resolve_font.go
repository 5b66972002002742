package usecase

import (
	"context"
	"strings"

	"github.com/bnema/hyprisland/internal/application/port"
	"github.com/bnema/hyprisland/internal/logging"
)

// FontSource tells where a resolved font came from.
type FontSource string

const (
	FontSourcePath     FontSource = "path"
	FontSourceFamily   FontSource = "family"
	FontSourceEmbedded FontSource = "embedded"
)

// ResolveFontUseCase picks the font file used for snapshot labels.
type ResolveFontUseCase struct {
	locator port.FontLocator
}

// NewResolveFontUseCase creates a new ResolveFontUseCase. locator may be nil.
func NewResolveFontUseCase(locator port.FontLocator) *ResolveFontUseCase {
	return &ResolveFontUseCase{locator: locator}
}

// ResolveFontInput holds the configured font settings.
type ResolveFontInput struct {
	Path   string
	Family string
}

// ResolveFontOutput is the chosen font. Path is empty for the embedded font.
type ResolveFontOutput struct {
	Path   string
	Source FontSource
}

// Execute returns Path when set, else the file for Family when it can be
// located, else the embedded font. A family that cannot be found is logged
// and never fails the render.
func (uc *ResolveFontUseCase) Execute(ctx context.Context, input ResolveFontInput) (*ResolveFontOutput, error) {
	log := logging.FromContext(ctx)

	if path := strings.TrimSpace(input.Path); path != "" {
		return &ResolveFontOutput{Path: path, Source: FontSourcePath}, nil
	}

	family := strings.TrimSpace(input.Family)
	if family == "" {
		return &ResolveFontOutput{Source: FontSourceEmbedded}, nil
	}

	if uc.locator == nil || !uc.locator.IsAvailable(ctx) {
		log.Warn().Str("family", family).Msg("font lookup unavailable, using embedded font")
		return &ResolveFontOutput{Source: FontSourceEmbedded}, nil
	}

	path, err := uc.locator.Locate(ctx, family)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn().Err(err).Str("family", family).Msg("font not found, using embedded font")
		return &ResolveFontOutput{Source: FontSourceEmbedded}, nil
	}

	log.Debug().Str("family", family).Str("path", path).Msg("font resolved")
	return &ResolveFontOutput{Path: path, Source: FontSourceFamily}, nil
}
