package stats

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/domain/mocks"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

const testAddress = "0xdeadbeef"

func newStatsUseCase(t *testing.T) (*mocks.MockGameRepository, *mocks.MockPlayerRepository, domain.StatsUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gameRepo := mocks.NewMockGameRepository(ctrl)
	playerRepo := mocks.NewMockPlayerRepository(ctrl)
	useCase := NewStatsUseCase(gameRepo, playerRepo, logger.NewLogger("test", "error"))

	return gameRepo, playerRepo, useCase
}

// finishedGames builds a chronological history from result statuses.
func finishedGames(statuses ...domain.GameStatus) []*domain.Game {
	games := make([]*domain.Game, 0, len(statuses))
	for i, s := range statuses {
		games = append(games, &domain.Game{
			ID:      int64(i + 1),
			Address: testAddress,
			Status:  s,
		})
	}
	return games
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		history   []*domain.Game
		gamesWon  int
		total     int
		winRatio  float64
		maxStreak int
	}{
		{
			name:      "Empty_History",
			history:   nil,
			gamesWon:  0,
			total:     0,
			winRatio:  0,
			maxStreak: 0,
		},
		{
			name: "Tie_Breaks_Streak",
			history: finishedGames(
				domain.GameStatusPlayerWins,
				domain.GameStatusDealerWins,
				domain.GameStatusPlayerWins,
				domain.GameStatusPlayerWins,
				domain.GameStatusTie,
				domain.GameStatusPlayerWins,
			),
			gamesWon:  4,
			total:     6,
			winRatio:  4.0 / 6.0,
			maxStreak: 2,
		},
		{
			name: "Dealer_Bust_Counts_As_Win",
			history: finishedGames(
				domain.GameStatusDealerBusted,
				domain.GameStatusPlayerWins,
				domain.GameStatusDealerBusted,
			),
			gamesWon:  3,
			total:     3,
			winRatio:  1,
			maxStreak: 3,
		},
		{
			name: "All_Losses",
			history: finishedGames(
				domain.GameStatusPlayerBusted,
				domain.GameStatusDealerWins,
			),
			gamesWon:  0,
			total:     2,
			winRatio:  0,
			maxStreak: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gameRepo, playerRepo, useCase := newStatsUseCase(t)

			playerRepo.EXPECT().GetByAddress(gomock.Any(), testAddress).Return(&domain.Player{ID: 1, Address: testAddress}, nil)
			gameRepo.EXPECT().GetFinishedByAddress(gomock.Any(), testAddress).Return(tt.history, nil)

			stats, err := useCase.ComputeStats(context.Background(), testAddress)

			assert.NoError(t, err)
			assert.Equal(t, testAddress, stats.Address)
			assert.Equal(t, tt.total, stats.TotalGames)
			assert.Equal(t, tt.gamesWon, stats.GamesWon)
			assert.InDelta(t, tt.winRatio, stats.WinRatio, 1e-9)
			assert.Equal(t, tt.maxStreak, stats.MaxStreak)
		})
	}
}

func TestComputeStatsUnknownPlayer(t *testing.T) {
	_, playerRepo, useCase := newStatsUseCase(t)

	playerRepo.EXPECT().GetByAddress(gomock.Any(), testAddress).Return(nil, nil)

	_, err := useCase.ComputeStats(context.Background(), testAddress)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodePlayerNotFound))
}

func TestComputeStatsRequiresAddress(t *testing.T) {
	_, _, useCase := newStatsUseCase(t)

	_, err := useCase.ComputeStats(context.Background(), "")

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeRequiredField))
}

func TestComputeRank(t *testing.T) {
	gameRepo, _, useCase := newStatsUseCase(t)

	gameRepo.EXPECT().WinCounts(gomock.Any()).Return([]*domain.WinCount{
		{Address: "0xfirst", Wins: 9, FirstSeen: 100},
		{Address: testAddress, Wins: 4, FirstSeen: 300},
		{Address: "0xthird", Wins: 4, FirstSeen: 500},
		{Address: "0xlast", Wins: 1, FirstSeen: 200},
	}, nil)

	rank, err := useCase.ComputeRank(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, 2, rank.Rank)
	assert.Equal(t, 4, rank.TotalPlayers)
}

func TestComputeRankNoCompletedGames(t *testing.T) {
	gameRepo, _, useCase := newStatsUseCase(t)

	gameRepo.EXPECT().WinCounts(gomock.Any()).Return([]*domain.WinCount{
		{Address: "0xother", Wins: 2, FirstSeen: 100},
	}, nil)

	_, err := useCase.ComputeRank(context.Background(), testAddress)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodePlayerNotFound))
}
