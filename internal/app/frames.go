package app

import (
	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/external/frames"
)

func (a *application) InitFrameVerifier() domain.FrameVerifier {
	return frames.NewFrameVerifier(a.config.Frames.URL, a.config.Frames.APIKey)
}
