package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/auth"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// SessionHandler exchanges a verified frame message for a playground session
// token, so web clients can act without re-signing every request.
type SessionHandler struct {
	frameVerifier domain.FrameVerifier
	jwtService    auth.JWTService
	logger        *logger.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(frameVerifier domain.FrameVerifier, jwtService auth.JWTService, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		frameVerifier: frameVerifier,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// SessionResponse represents the session creation response body
type SessionResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Address string `json:"address" example:"0x1a2b3c"`
}

// CreateSession verifies a signed frame message and issues a session token
// @Summary Create playground session
// @Description Verify the signed frame message and issue a session token bound to the interactor's address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body FrameActionRequest true "Signed frame message"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/session [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req FrameActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", http.StatusBadRequest, err)))
		return
	}

	message, err := h.frameVerifier.Verify(c.Request.Context(), req.MessageBytesInHex)
	if err != nil {
		h.logger.Warn("Frame verification failed", zap.Error(err))
		respondError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(message.Address)
	if err != nil {
		h.logger.Error("Token generation failed", zap.String("address", message.Address), zap.Error(err))
		respondError(c, domain.NewInternalError("Failed to create session", err))
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Token:   token,
		Address: message.Address,
	})
}
