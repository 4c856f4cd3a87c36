package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// StatsHandler handles HTTP requests for player statistics
type StatsHandler struct {
	statsUseCase  domain.StatsUseCase
	frameVerifier domain.FrameVerifier
	logger        *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUseCase domain.StatsUseCase, frameVerifier domain.FrameVerifier, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsUseCase:  statsUseCase,
		frameVerifier: frameVerifier,
		logger:        logger,
	}
}

// StatsResponse represents the aggregated statistics response body. Rank is
// omitted when the player has no completed games yet.
type StatsResponse struct {
	Address      string  `json:"address" example:"0x1a2b3c"`
	TotalGames   int     `json:"total_games" example:"6"`
	GamesWon     int     `json:"games_won" example:"4"`
	WinRatio     float64 `json:"win_ratio" example:"0.6667"`
	MaxStreak    int     `json:"max_streak" example:"2"`
	Rank         *int    `json:"rank,omitempty" example:"3"`
	TotalPlayers *int    `json:"total_players,omitempty" example:"120"`
}

func (h *StatsHandler) buildStats(c *gin.Context, address string) {
	ctx := c.Request.Context()

	stats, err := h.statsUseCase.ComputeStats(ctx, address)
	if err != nil {
		h.logger.Error("Stats computation failed", zap.String("address", address), zap.Error(err))
		respondError(c, err)
		return
	}

	response := StatsResponse{
		Address:    stats.Address,
		TotalGames: stats.TotalGames,
		GamesWon:   stats.GamesWon,
		WinRatio:   stats.WinRatio,
		MaxStreak:  stats.MaxStreak,
	}

	// Rank only exists once the player shows up in the win aggregation.
	rank, err := h.statsUseCase.ComputeRank(ctx, address)
	if err == nil {
		response.Rank = &rank.Rank
		response.TotalPlayers = &rank.TotalPlayers
	} else if !domain.IsErrorCode(err, domain.ErrCodePlayerNotFound) {
		h.logger.Error("Rank computation failed", zap.String("address", address), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// StatsFrame returns the interactor's statistics from a signed frame action
// @Summary Player statistics (frame)
// @Description Verify the signed frame message and return the interactor's aggregated statistics
// @Tags frames
// @Accept json
// @Produce json
// @Param request body FrameActionRequest true "Signed frame message"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /frames/stats [post]
func (h *StatsHandler) StatsFrame(c *gin.Context) {
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

	h.buildStats(c, message.Address)
}

// Stats returns the session player's statistics
// @Summary Player statistics
// @Description Get the authenticated player's aggregated statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		return
	}
	h.buildStats(c, address)
}
