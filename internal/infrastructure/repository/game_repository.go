package repository

import (
	"context"
	"errors"
	"time"

	"github.com/farplay/blackjack/internal/domain"

	"gorm.io/gorm"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// Create persists a new game. The partial unique index on ongoing games
// makes the active-game check and the insert effectively atomic per address:
// the second of two concurrent creates loses with ACTIVE_GAME_EXISTS and can
// re-fetch the winner's game.
func (r *GameRepository) Create(ctx context.Context, game *domain.Game) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	if game.Version == 0 {
		game.Version = 1
	}

	err := r.db.WithContext(ctx).Create(game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewAppError(domain.ErrCodeActiveGameExists, "Player already has an active game", 409, err)
		}
		return err
	}
	return nil
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetActiveByAddress retrieves the single non-terminal game for an address
func (r *GameRepository) GetActiveByAddress(ctx context.Context, address string) (*domain.Game, error) {
	var game domain.Game
	result := r.db.WithContext(ctx).
		Where("address = ? AND status = ?", address, domain.GameStatusOngoing).
		First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetFinishedByAddress retrieves all terminal games for an address ordered by
// creation time, the chronological order streaks are computed over
func (r *GameRepository) GetFinishedByAddress(ctx context.Context, address string) ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.WithContext(ctx).
		Where("address = ? AND status <> ?", address, domain.GameStatusOngoing).
		Order("created_at ASC, id ASC").
		Find(&games)

	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

// UpdateWithVersion persists the game only if nobody wrote it since the read.
// Terminal games never match the ongoing-status predicate, so a stale action
// can never resurrect or mutate a finished game.
func (r *GameRepository) UpdateWithVersion(ctx context.Context, game *domain.Game, expectedVersion int64) error {
	game.UpdatedAt = time.Now()
	game.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).Model(&domain.Game{}).
		Where("id = ? AND version = ? AND status = ?", game.ID, expectedVersion, domain.GameStatusOngoing).
		Select("player_cards", "dealer_cards", "deck", "player_score", "dealer_score", "status", "version", "updated_at").
		Updates(game)

	if result.Error != nil {
		game.Version = expectedVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		game.Version = expectedVersion
		return domain.NewConcurrentModificationError(game.ID)
	}

	return nil
}

// WinCounts aggregates won games per address, ordered by wins descending
// with ties broken by the earliest game ever created for the address
func (r *GameRepository) WinCounts(ctx context.Context) ([]*domain.WinCount, error) {
	var rows []*domain.WinCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT address,
		       COUNT(*) FILTER (WHERE status IN (?, ?)) AS wins,
		       CAST(EXTRACT(EPOCH FROM MIN(created_at)) AS BIGINT) AS first_seen
		FROM games
		WHERE status <> ?
		GROUP BY address
		ORDER BY wins DESC, first_seen ASC, address ASC`,
		domain.GameStatusPlayerWins, domain.GameStatusDealerBusted, domain.GameStatusOngoing,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
