package domain

import (
	"context"
	"fmt"
)

// FrameMessage is the verified content of a signed frame action: the player
// the action belongs to and which button was pressed. The raw signature
// envelope never crosses into the core.
type FrameMessage struct {
	Address     string `json:"address"`
	ButtonIndex int    `json:"button_index"`
	Valid       bool   `json:"valid"`
}

// FrameVerifier verifies signed frame message bytes against a hub and
// resolves the interactor's custody address.
type FrameVerifier interface {
	Verify(ctx context.Context, messageBytes string) (*FrameMessage, error)
}

// FrameServiceError represents an error from the frame verification service
type FrameServiceError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *FrameServiceError) Error() string {
	return fmt.Sprintf("frame service error: %s - %s", e.Code, e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *FrameServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Is5xxError checks if the error is a 5xx server error
func (e *FrameServiceError) Is5xxError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}
