package storage

import "github.com/thesidshah/pokemon-mcp/internal/game"

// Repository persists finished battle outcomes and aggregate species stats.
// Live battle state is intentionally kept out of the database; the arena
// holds the single active battle in memory.
type Repository interface {
	// SaveBattleRecord writes the outcome of a finished battle.
	SaveBattleRecord(r *game.BattleRecord) error
	// GetRecentBattles returns finished battles, newest first.
	GetRecentBattles(limit int) ([]game.BattleRecord, error)
	// UpdateStatsOnBattleEnd increments the winner's and loser's aggregate
	// counters, creating rows as needed.
	UpdateStatsOnBattleEnd(winner, loser string) error
	// GetTopSpecies returns species ranked by wins (desc).
	GetTopSpecies(limit int) ([]game.SpeciesStat, error)
}
