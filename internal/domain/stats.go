package domain

import "context"

// PlayerStats aggregates a player's completed games. It is recomputed from
// the games history on every request rather than incrementally maintained, so
// the figures can never drift from the source of truth.
type PlayerStats struct {
	Address    string  `json:"address"`
	TotalGames int     `json:"total_games"`
	GamesWon   int     `json:"games_won"`
	WinRatio   float64 `json:"win_ratio"`
	MaxStreak  int     `json:"max_streak"`
}

// PlayerRank places a player among all players by win count.
type PlayerRank struct {
	Address      string `json:"address"`
	Rank         int    `json:"rank"`
	TotalPlayers int    `json:"total_players"`
}

// WinCount is one row of the global win aggregation: a player address, its
// number of won games and the creation time of its earliest game. Rows are
// ordered by wins descending with ties broken by first-seen time, which keeps
// ranks deterministic.
type WinCount struct {
	Address   string `json:"address"`
	Wins      int    `json:"wins"`
	FirstSeen int64  `json:"first_seen"`
}

// StatsUseCase defines the interface for stats aggregation
type StatsUseCase interface {
	ComputeStats(ctx context.Context, address string) (*PlayerStats, error)
	ComputeRank(ctx context.Context, address string) (*PlayerRank, error)
}
