package frames

import (
	"errors"

	"github.com/farplay/blackjack/internal/domain"
)

// Is4xxError checks if the error is a 4xx client error
func Is4xxError(err error) bool {
	var frameErr *domain.FrameServiceError
	if errors.As(err, &frameErr) {
		return frameErr.Is4xxError()
	}
	return false
}

// Is5xxError checks if the error is a 5xx server error
func Is5xxError(err error) bool {
	var frameErr *domain.FrameServiceError
	if errors.As(err, &frameErr) {
		return frameErr.Is5xxError()
	}
	return false
}
