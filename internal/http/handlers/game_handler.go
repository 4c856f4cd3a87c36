package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

// GameHandler handles HTTP requests for game actions. Frame routes resolve
// the player from a signed frame message; playground routes resolve it from
// the session token set by the JWT middleware.
type GameHandler struct {
	gameUseCase   domain.GameUseCase
	frameVerifier domain.FrameVerifier
	logger        *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase, frameVerifier domain.FrameVerifier, logger *logger.Logger) *GameHandler {
	return &GameHandler{
		gameUseCase:   gameUseCase,
		frameVerifier: frameVerifier,
		logger:        logger,
	}
}

// FrameActionRequest carries the signed frame payload for an action
type FrameActionRequest struct {
	MessageBytesInHex string `json:"message_bytes_in_hex" binding:"required" example:"0a49080d10d0..."`
}

// CardView is a single card as shown to the client
type CardView struct {
	Code  int    `json:"code" example:"14"`
	Label string `json:"label" example:"♦A"`
}

// GameResponse represents the game state exposed to the client. While the
// game is ongoing only the dealer's upcard is included and the dealer score
// covers the visible cards; terminal games reveal the full dealer hand.
type GameResponse struct {
	GameID           int64      `json:"game_id" example:"42"`
	Status           string     `json:"status" example:"ongoing"`
	PlayerCards      []CardView `json:"player_cards"`
	PlayerScore      int        `json:"player_score" example:"16"`
	DealerCards      []CardView `json:"dealer_cards"`
	DealerScore      int        `json:"dealer_score" example:"10"`
	DealerHoleHidden bool       `json:"dealer_hole_hidden" example:"true"`
	CardsRemaining   int        `json:"cards_remaining" example:"48"`
}

func cardViews(hand domain.Hand) []CardView {
	views := make([]CardView, 0, len(hand))
	for _, c := range hand {
		views = append(views, CardView{Code: int(c), Label: c.String()})
	}
	return views
}

// newGameResponse builds the client snapshot of a game
func newGameResponse(game *domain.Game) GameResponse {
	response := GameResponse{
		GameID:         game.ID,
		Status:         string(game.Status),
		PlayerCards:    cardViews(game.PlayerCards),
		PlayerScore:    game.PlayerScore,
		DealerCards:    cardViews(game.DealerCards),
		DealerScore:    game.DealerScore,
		CardsRemaining: game.Deck.Remaining(),
	}

	if !game.Status.IsTerminal() && len(game.DealerCards) > 1 {
		upcard := game.DealerCards[:1]
		response.DealerCards = cardViews(upcard)
		response.DealerScore = upcard.Score()
		response.DealerHoleHidden = true
	}

	return response
}

// resolveFrameAddress verifies the signed frame message and returns the
// interactor's custody address
func (h *GameHandler) resolveFrameAddress(c *gin.Context) (string, bool) {
	var req FrameActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", http.StatusBadRequest, err)))
		return "", false
	}

	message, err := h.frameVerifier.Verify(c.Request.Context(), req.MessageBytesInHex)
	if err != nil {
		h.logger.Warn("Frame verification failed", zap.Error(err))
		respondError(c, err)
		return "", false
	}

	return message.Address, true
}

// sessionAddress extracts the player address set by the JWT middleware
func sessionAddress(c *gin.Context) (string, bool) {
	address, exists := c.Get("address")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(
			domain.NewUnauthorizedError("Player not authenticated")))
		return "", false
	}
	return address.(string), true
}

func (h *GameHandler) runAction(c *gin.Context, address string, act func() (*domain.Game, error)) {
	game, err := act()
	if err != nil {
		h.logger.Error("Game action failed",
			zap.String("address", address),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game))
}

// StartFrame starts a game from a signed frame action
// @Summary Start a game (frame)
// @Description Verify the signed frame message and start a game for the interactor, or return the game already in progress
// @Tags frames
// @Accept json
// @Produce json
// @Param request body FrameActionRequest true "Signed frame message"
// @Success 200 {object} GameResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /frames/start [post]
func (h *GameHandler) StartFrame(c *gin.Context) {
	address, ok := h.resolveFrameAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.Start(c.Request.Context(), address)
	})
}

// HitFrame deals the player one more card from a signed frame action
// @Summary Hit (frame)
// @Description Verify the signed frame message and deal one card to the interactor's hand
// @Tags frames
// @Accept json
// @Produce json
// @Param request body FrameActionRequest true "Signed frame message"
// @Success 200 {object} GameResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /frames/hit [post]
func (h *GameHandler) HitFrame(c *gin.Context) {
	address, ok := h.resolveFrameAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.Hit(c.Request.Context(), address)
	})
}

// StandFrame ends the player's turn from a signed frame action
// @Summary Stand (frame)
// @Description Verify the signed frame message, play out the dealer and resolve the interactor's game
// @Tags frames
// @Accept json
// @Produce json
// @Param request body FrameActionRequest true "Signed frame message"
// @Success 200 {object} GameResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /frames/stand [post]
func (h *GameHandler) StandFrame(c *gin.Context) {
	address, ok := h.resolveFrameAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.Stand(c.Request.Context(), address)
	})
}

// Start starts a game for the session player
// @Summary Start a game
// @Description Start a game for the authenticated player, or return the game already in progress
// @Tags game
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GameResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /game/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.Start(c.Request.Context(), address)
	})
}

// Hit deals the session player one more card
// @Summary Hit
// @Description Deal one card to the authenticated player's hand
// @Tags game
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GameResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /game/hit [post]
func (h *GameHandler) Hit(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.Hit(c.Request.Context(), address)
	})
}

// Stand ends the session player's turn
// @Summary Stand
// @Description Play out the dealer and resolve the authenticated player's game
// @Tags game
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GameResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /game/stand [post]
func (h *GameHandler) Stand(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.Stand(c.Request.Context(), address)
	})
}

// Active returns the session player's ongoing game without acting on it
// @Summary Get active game
// @Description Get the authenticated player's ongoing game
// @Tags game
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GameResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /game [get]
func (h *GameHandler) Active(c *gin.Context) {
	address, ok := sessionAddress(c)
	if !ok {
		return
	}
	h.runAction(c, address, func() (*domain.Game, error) {
		return h.gameUseCase.ActiveGame(c.Request.Context(), address)
	})
}
