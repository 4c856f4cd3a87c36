package repository

import (
	"context"
	"errors"
	"time"

	"github.com/farplay/blackjack/internal/domain"

	"gorm.io/gorm"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(player).Error
}

// GetByAddress retrieves a player by custody address
func (r *PlayerRepository) GetByAddress(ctx context.Context, address string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.WithContext(ctx).Where("address = ?", address).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// EnsureExists creates the player row on first contact. A concurrent create
// for the same address loses on the unique index and falls back to the read.
func (r *PlayerRepository) EnsureExists(ctx context.Context, address string) (*domain.Player, error) {
	player, err := r.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if player != nil {
		return player, nil
	}

	player = &domain.Player{Address: address}
	if err := r.Create(ctx, player); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByAddress(ctx, address)
		}
		return nil, err
	}
	return player, nil
}
