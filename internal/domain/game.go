package domain

import (
	"context"
	"time"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	// GameStatusOngoing player's turn, the only non-terminal state
	GameStatusOngoing GameStatus = "ongoing"

	// GameStatusPlayerBusted player drew past 21, terminal
	GameStatusPlayerBusted GameStatus = "player_busted"

	// GameStatusDealerBusted dealer drew past 21, terminal, counts as a player win
	GameStatusDealerBusted GameStatus = "dealer_busted"

	// GameStatusPlayerWins player out-scored the dealer, terminal
	GameStatusPlayerWins GameStatus = "player_wins"

	// GameStatusDealerWins dealer out-scored the player, terminal
	GameStatusDealerWins GameStatus = "dealer_wins"

	// GameStatusTie both sides landed on the same total, terminal
	GameStatusTie GameStatus = "tie"
)

// IsTerminal reports whether the status permits no further transitions.
func (s GameStatus) IsTerminal() bool {
	return s != GameStatusOngoing
}

// IsPlayerWin reports whether the status counts as a win for the player.
func (s GameStatus) IsPlayerWin() bool {
	return s == GameStatusPlayerWins || s == GameStatusDealerBusted
}

// Game represents one blackjack game owned by a single player address.
// At most one ongoing game exists per address at any time; the repository
// enforces this with a partial unique index. Terminal games are append-only
// history and are never updated again.
type Game struct {
	ID          int64      `json:"game_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Address     string     `json:"address" gorm:"index;not null;type:varchar(64)"`
	PlayerCards Hand       `json:"player_cards" gorm:"type:jsonb;serializer:json;not null"`
	DealerCards Hand       `json:"dealer_cards" gorm:"type:jsonb;serializer:json;not null"`
	Deck        Deck       `json:"-" gorm:"type:jsonb;serializer:json;not null"`
	PlayerScore int        `json:"player_score" gorm:"not null"`
	DealerScore int        `json:"dealer_score" gorm:"not null"`
	Status      GameStatus `json:"status" gorm:"type:varchar(16);not null;default:'ongoing'"`
	Version     int64      `json:"-" gorm:"not null;default:1"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// IsFinished reports whether the game reached a terminal state.
func (g *Game) IsFinished() bool {
	return g.Status.IsTerminal()
}

// GameRepository defines the interface for game data
type GameRepository interface {
	Create(ctx context.Context, game *Game) error
	GetByID(ctx context.Context, id int64) (*Game, error)
	GetActiveByAddress(ctx context.Context, address string) (*Game, error)
	GetFinishedByAddress(ctx context.Context, address string) ([]*Game, error)
	// UpdateWithVersion persists the game only if the stored version still
	// equals expectedVersion, bumping the version on success. A stale write
	// returns ErrCodeConcurrentModification.
	UpdateWithVersion(ctx context.Context, game *Game, expectedVersion int64) error
	WinCounts(ctx context.Context) ([]*WinCount, error)
}

// GameUseCase defines the interface for the game state machine
type GameUseCase interface {
	Start(ctx context.Context, address string) (*Game, error)
	Hit(ctx context.Context, address string) (*Game, error)
	Stand(ctx context.Context, address string) (*Game, error)
	ActiveGame(ctx context.Context, address string) (*Game, error)
}
