package storage

import (
	"errors"

	"github.com/thesidshah/pokemon-mcp/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a migrated gorm DB handle.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveBattleRecord(rec *game.BattleRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetRecentBattles(limit int) ([]game.BattleRecord, error) {
	var records []game.BattleRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(winner, loser string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpStat(tx, winner, true); err != nil {
			return err
		}
		return bumpStat(tx, loser, false)
	})
}

func bumpStat(tx *gorm.DB, speciesName string, won bool) error {
	var stat game.SpeciesStat
	err := tx.Where("species_name = ?", speciesName).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stat = game.SpeciesStat{SpeciesName: speciesName}
	} else if err != nil {
		return err
	}
	stat.Battles++
	if won {
		stat.Wins++
	} else {
		stat.Losses++
	}
	return tx.Save(&stat).Error
}

func (r *sqliteRepository) GetTopSpecies(limit int) ([]game.SpeciesStat, error) {
	var stats []game.SpeciesStat
	if err := r.db.Order("wins DESC, battles ASC").Limit(limit).Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
