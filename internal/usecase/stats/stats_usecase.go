package stats

import (
	"context"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// StatsUseCase implements domain.StatsUseCase. Every figure is derived from
// the full games history on each request; nothing is incrementally counted,
// so the numbers cannot drift from the games actually on record.
type StatsUseCase struct {
	gameRepo   domain.GameRepository
	playerRepo domain.PlayerRepository
	logger     *logger.Logger
}

// NewStatsUseCase creates a new stats usecase
func NewStatsUseCase(
	gameRepo domain.GameRepository,
	playerRepo domain.PlayerRepository,
	logger *logger.Logger,
) domain.StatsUseCase {
	return &StatsUseCase{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// ComputeStats scans the player's finished games in chronological order
func (uc *StatsUseCase) ComputeStats(ctx context.Context, address string) (*domain.PlayerStats, error) {
	if address == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Player address is required", 400, nil)
	}

	player, err := uc.playerRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, domain.NewDatabaseError("get player", err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	games, err := uc.gameRepo.GetFinishedByAddress(ctx, address)
	if err != nil {
		return nil, domain.NewDatabaseError("get finished games", err)
	}

	stats := aggregate(address, games)

	uc.logger.Debug("Computed player stats",
		zap.String("address", address),
		zap.Int("totalGames", stats.TotalGames),
		zap.Int("gamesWon", stats.GamesWon),
		zap.Int("maxStreak", stats.MaxStreak))

	return stats, nil
}

// ComputeRank places the player among all players by win count descending,
// ties broken by first-seen order so the ranking is deterministic
func (uc *StatsUseCase) ComputeRank(ctx context.Context, address string) (*domain.PlayerRank, error) {
	if address == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Player address is required", 400, nil)
	}

	counts, err := uc.gameRepo.WinCounts(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError("aggregate win counts", err)
	}

	for i, row := range counts {
		if row.Address == address {
			return &domain.PlayerRank{
				Address:      address,
				Rank:         i + 1,
				TotalPlayers: len(counts),
			}, nil
		}
	}

	return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player has no completed games", 404, nil)
}

// aggregate folds a chronological game history into totals. A win extends
// the running streak; a loss or a tie resets it to zero.
func aggregate(address string, games []*domain.Game) *domain.PlayerStats {
	stats := &domain.PlayerStats{Address: address}

	streak := 0
	for _, g := range games {
		stats.TotalGames++
		if g.Status.IsPlayerWin() {
			stats.GamesWon++
			streak++
			if streak > stats.MaxStreak {
				stats.MaxStreak = streak
			}
		} else {
			streak = 0
		}
	}

	if stats.TotalGames > 0 {
		stats.WinRatio = float64(stats.GamesWon) / float64(stats.TotalGames)
	}

	return stats
}
