package service

import (
	"errors"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/thesidshah/pokemon-mcp/internal/config"
	"github.com/thesidshah/pokemon-mcp/internal/constants"
	"github.com/thesidshah/pokemon-mcp/internal/engine"
	"github.com/thesidshah/pokemon-mcp/internal/game"
	"github.com/thesidshah/pokemon-mcp/internal/logging"
	"github.com/thesidshah/pokemon-mcp/internal/storage"
)

var (
	ErrSpeciesNotFound = errors.New("species not found")
	ErrNoActiveBattle  = errors.New("no active battle")
	ErrUnknownType     = errors.New("unknown type")
)

// Arena owns the single active battle and the immutable catalog. Every
// operation takes the mutex: the engine itself is single-threaded by design,
// so the arena serializes concurrent callers to keep the "one battle, turns
// strictly alternate" invariant.
type Arena struct {
	mu sync.Mutex

	speciesOrder  []game.Species
	speciesByName map[string]game.Species
	movesByName   map[string]game.Move
	chart         game.TypeChart
	settings      config.BattleSettings

	rng    *rand.Rand
	repo   storage.Repository
	battle *game.Battle
}

// NewArena builds an arena from a loaded configuration. repo may be nil
// when battle history persistence is not wanted (tests); rng is the single
// source of randomness for move draws, levels, accuracy and damage variance.
func NewArena(cfg *config.LoadedConfig, repo storage.Repository, rng *rand.Rand) *Arena {
	speciesByName := make(map[string]game.Species, len(cfg.Species))
	for _, s := range cfg.Species {
		speciesByName[strings.ToLower(s.Name)] = s
	}
	movesByName := make(map[string]game.Move, len(cfg.Moves))
	for _, m := range cfg.Moves {
		movesByName[strings.ToLower(m.Name)] = m
	}
	return &Arena{
		speciesOrder:  cfg.Species,
		speciesByName: speciesByName,
		movesByName:   movesByName,
		chart:         cfg.Chart,
		settings:      cfg.Battle,
		rng:           rng,
		repo:          repo,
	}
}

// StartReport is the payload returned by StartBattle.
type StartReport struct {
	BattleID   string          `json:"battle_id"`
	Player1    *game.Combatant `json:"player1"`
	Player2    *game.Combatant `json:"player2"`
	FirstActor string          `json:"first_actor"`
	Turn       int             `json:"turn"`
	Message    string          `json:"message"`
}

// StartBattle resolves both species by case-insensitive name, builds two
// full combatants and replaces whatever battle existed before, active or
// not. Levels <= 0 are drawn uniformly from the configured random range.
func (a *Arena) StartBattle(species1, species2 string, level1, level2 int) (*StartReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sp1, ok := a.speciesByName[strings.ToLower(species1)]
	if !ok {
		return nil, ErrSpeciesNotFound
	}
	sp2, ok := a.speciesByName[strings.ToLower(species2)]
	if !ok {
		return nil, ErrSpeciesNotFound
	}
	if level1 <= 0 {
		level1 = a.randomLevel()
	}
	if level2 <= 0 {
		level2 = a.randomLevel()
	}

	p1 := engine.NewCombatant(sp1, a.movesByName, level1, a.settings.MovesPerCombatant, a.rng)
	p2 := engine.NewCombatant(sp2, a.movesByName, level2, a.settings.MovesPerCombatant, a.rng)

	a.battle = engine.NewBattle(uuid.NewString(), p1, p2)
	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID: a.battle.ID,
		constants.LogFieldSpecies:  p1.Species + " vs " + p2.Species,
	})

	first := a.battle.Actor().Species
	return &StartReport{
		BattleID:   a.battle.ID,
		Player1:    p1,
		Player2:    p2,
		FirstActor: first,
		Turn:       a.battle.Turn,
		Message:    "Battle started! " + first + " moves first.",
	}, nil
}

// Attack applies one move use for the named combatant. Engine rule errors
// (wrong turn, unknown move, unknown combatant) pass through unchanged so
// the boundary can map them individually.
func (a *Arena) Attack(attackerName, moveName string) (*engine.AttackReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.battle == nil || !a.battle.Active {
		return nil, ErrNoActiveBattle
	}
	report, err := engine.Attack(a.battle, a.chart, attackerName, moveName, a.rng)
	if err != nil {
		return nil, err
	}
	if report.BattleOver {
		a.recordOutcome(a.battle)
	}
	return report, nil
}

// recordOutcome persists the finished battle and bumps species stats.
// Failures are logged but never fail the attack call.
func (a *Arena) recordOutcome(b *game.Battle) {
	if a.repo == nil {
		return
	}
	loser := b.Combatants[0].Species
	if loser == b.Winner {
		loser = b.Combatants[1].Species
	}
	rec := &game.BattleRecord{
		BattleUUID:     b.ID,
		Player1Species: b.Combatants[0].Species,
		Player1Level:   b.Combatants[0].Level,
		Player2Species: b.Combatants[1].Species,
		Player2Level:   b.Combatants[1].Level,
		Winner:         b.Winner,
		Turns:          b.Turn,
	}
	if err := a.repo.SaveBattleRecord(rec); err != nil {
		logging.Error("failed to save battle record", err, logging.Fields{constants.LogFieldBattleID: b.ID})
	}
	if err := a.repo.UpdateStatsOnBattleEnd(b.Winner, loser); err != nil {
		logging.Error("failed to update species stats", err, logging.Fields{constants.LogFieldBattleID: b.ID})
	}
	logging.Info("battle finished", logging.Fields{
		constants.LogFieldBattleID: b.ID,
		constants.LogFieldWinner:   b.Winner,
		constants.LogFieldTurns:    b.Turn,
	})
}

// CombatantStatus is a health snapshot of one side in the status payload.
type CombatantStatus struct {
	Species   string `json:"species"`
	Level     int    `json:"level"`
	CurrentHP int    `json:"current_hp"`
	MaxHP     int    `json:"max_hp"`
}

// StatusReport describes the current battle, or reports that none has been
// started yet.
type StatusReport struct {
	Active       bool              `json:"active"`
	BattleID     string            `json:"battle_id,omitempty"`
	Turn         int               `json:"turn,omitempty"`
	CurrentActor string            `json:"current_actor,omitempty"`
	Winner       string            `json:"winner,omitempty"`
	Combatants   []CombatantStatus `json:"combatants,omitempty"`
	Message      string            `json:"message"`
}

// Status never fails: with no battle ever started it returns an explicit
// "no battle" payload.
func (a *Arena) Status() *StatusReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.battle == nil {
		return &StatusReport{Active: false, Message: "No battle has been started."}
	}
	b := a.battle
	report := &StatusReport{
		Active:   b.Active,
		BattleID: b.ID,
		Turn:     b.Turn,
		Winner:   b.Winner,
	}
	for _, c := range b.Combatants {
		report.Combatants = append(report.Combatants, CombatantStatus{
			Species:   c.Species,
			Level:     c.Level,
			CurrentHP: c.CurrentHP,
			MaxHP:     c.MaxHP,
		})
	}
	if b.Active {
		report.CurrentActor = b.Actor().Species
		report.Message = "Battle in progress. It is " + report.CurrentActor + "'s turn."
	} else {
		report.Message = b.Winner + " won the battle."
	}
	return report
}

func (a *Arena) randomLevel() int {
	min, max := a.settings.MinRandomLevel, a.settings.MaxRandomLevel
	return min + a.rng.Intn(max-min+1)
}
