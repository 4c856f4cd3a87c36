package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farplay/blackjack/internal/domain"
)

// respondError maps a usecase error onto the wire. AppErrors carry their own
// HTTP status; anything else is an internal error.
func respondError(c *gin.Context, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		appErr.RequestID = requestID(c)
		appErr.Path = c.Request.URL.Path
		appErr.Method = c.Request.Method
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}

	var frameErr *domain.FrameServiceError
	if errors.As(err, &frameErr) {
		status := http.StatusBadGateway
		if frameErr.Is4xxError() {
			status = http.StatusUnauthorized
		}
		wrapped := domain.NewAppError(domain.ErrCodeFrameServiceError, frameErr.Message, status, frameErr)
		wrapped.RequestID = requestID(c)
		c.JSON(status, domain.NewErrorResponse(wrapped))
		return
	}

	internal := domain.NewInternalError("Internal server error", err)
	internal.RequestID = requestID(c)
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(internal))
}

func requestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		return id.(string)
	}
	return ""
}
