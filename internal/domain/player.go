package domain

import (
	"context"
	"time"
)

// Player represents a registered player, keyed by custody address. The row
// exists for identity and first-seen ordering; all figures about a player are
// derived from the games history instead of counters kept here.
type Player struct {
	ID        int64     `json:"player_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Address   string    `json:"address" gorm:"uniqueIndex;not null;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	Create(ctx context.Context, player *Player) error
	GetByAddress(ctx context.Context, address string) (*Player, error)
	// EnsureExists creates the player row if it is not there yet and returns
	// it either way. Concurrent calls for the same address are safe.
	EnsureExists(ctx context.Context, address string) (*Player, error)
}
