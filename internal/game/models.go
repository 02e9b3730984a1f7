package game

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Type is an elemental type name (lowercase, e.g. "fire").
type Type string

// MoveCategory mirrors the classic physical/special split. Both categories
// currently use the same damage formula; the field is kept for data fidelity.
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
)

// BaseStats is the immutable attribute quadruple of a species.
type BaseStats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Species is a catalog template. It is defined at startup from the
// configuration file and never mutated.
type Species struct {
	Name  string    `json:"name"`
	Types []Type    `json:"types"`
	Stats BaseStats `json:"base_stats"`
	// MovePool lists the move names this species may learn. Entries that do
	// not exist in the move catalog are ignored at combatant build time.
	MovePool []string `json:"moves"`
}

// Move is a catalog entry. Power is non-negative; Accuracy is a percent
// chance to hit in [0,100].
type Move struct {
	Name     string       `json:"name"`
	Type     Type         `json:"type"`
	Power    int          `json:"power"`
	Accuracy int          `json:"accuracy"`
	Category MoveCategory `json:"category"`
}

// StatusNone is the initial (and, without status effects, only) status
// marker carried by a combatant.
const StatusNone = "none"

// Combatant is a battle-instantiated creature: level-scaled stats plus a
// drawn subset of the species' move pool. It lives only for the duration of
// a battle or a standalone lookup.
type Combatant struct {
	Species   string `json:"species"`
	Types     []Type `json:"types"`
	Level     int    `json:"level"`
	MaxHP     int    `json:"max_hp"`
	CurrentHP int    `json:"current_hp"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Speed     int    `json:"speed"`
	Moves     []Move `json:"moves"`
	Status    string `json:"status"`
}

// MoveNamed returns the assigned move matching name (case-insensitive).
func (c *Combatant) MoveNamed(name string) (Move, bool) {
	for _, m := range c.Moves {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Move{}, false
}

// HasType reports whether t is one of the combatant's types.
func (c *Combatant) HasType(t Type) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// Fainted reports whether the combatant's health has reached zero.
func (c *Combatant) Fainted() bool { return c.CurrentHP <= 0 }

// ApplyDamage subtracts dmg from CurrentHP, floored at 0.
func (c *Combatant) ApplyDamage(dmg int) {
	c.CurrentHP -= dmg
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}

// Battle is the single active contest between two combatants. ActorIndex
// points at the side that must act next (0 = player1, 1 = player2).
type Battle struct {
	ID         string        `json:"id"`
	Combatants [2]*Combatant `json:"combatants"`
	Turn       int           `json:"turn"`
	ActorIndex int           `json:"actor_index"`
	Active     bool          `json:"active"`
	Winner     string        `json:"winner"`
	StartedAt  time.Time     `json:"started_at"`
}

// Actor returns the combatant whose turn it is.
func (b *Battle) Actor() *Combatant { return b.Combatants[b.ActorIndex] }

// Opponent returns the combatant the current actor is facing.
func (b *Battle) Opponent() *Combatant { return b.Combatants[1-b.ActorIndex] }

// AdvanceTurn increments the turn counter and flips the actor pointer.
func (b *Battle) AdvanceTurn() {
	b.Turn++
	b.ActorIndex = 1 - b.ActorIndex
}

// BattleRecord is the persisted outcome of a finished battle. Active battle
// state is never stored; only completed contests are written.
type BattleRecord struct {
	gorm.Model
	BattleUUID     string `json:"battle_uuid" gorm:"uniqueIndex"`
	Player1Species string `json:"player1_species"`
	Player1Level   int    `json:"player1_level"`
	Player2Species string `json:"player2_species"`
	Player2Level   int    `json:"player2_level"`
	Winner         string `json:"winner"`
	Turns          int    `json:"turns"`
}

func (BattleRecord) TableName() string { return "battle_history" }

// SpeciesStat aggregates wins and losses per species across finished
// battles. Used by the leaderboard endpoint.
type SpeciesStat struct {
	gorm.Model
	SpeciesName string `json:"species_name" gorm:"uniqueIndex"`
	Battles     int    `json:"battles"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
}

func (SpeciesStat) TableName() string { return "species_leaderboard" }
