package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/thesidshah/pokemon-mcp/internal/game"
)

// defaultConfig holds the shipped catalog (species, moves, type chart) and
// server defaults. It is used whenever no config path is provided.
//
//go:embed pokemon_config.json
var defaultConfig []byte

type speciesEntry struct {
	Name      string         `json:"name"`
	Types     []string       `json:"types"`
	BaseStats game.BaseStats `json:"base_stats"`
	Moves     []string       `json:"moves"`
}

type moveEntry struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	Category string `json:"category"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Battle      *rawBattle                    `json:"battle"`
	SpeciesList []speciesEntry                `json:"species_list"`
	MoveList    []moveEntry                   `json:"move_list"`
	TypeChart   map[string]map[string]float64 `json:"type_chart"`
}

type rawBattle struct {
	MovesPerCombatant  int `json:"moves_per_combatant"`
	LookupMoveCount    int `json:"lookup_move_count"`
	DefaultLookupLevel int `json:"default_lookup_level"`
	MinRandomLevel     int `json:"min_random_level"`
	MaxRandomLevel     int `json:"max_random_level"`
}

// BattleSettings are the tunable knobs of the battle service.
type BattleSettings struct {
	// MovesPerCombatant is the move count drawn for a full battle.
	MovesPerCombatant int
	// LookupMoveCount is the smaller count used by standalone lookups.
	LookupMoveCount int
	// DefaultLookupLevel is used by get_species when no level is given.
	DefaultLookupLevel int
	// MinRandomLevel/MaxRandomLevel bound the level drawn when start_battle
	// is called without explicit levels.
	MinRandomLevel int
	MaxRandomLevel int
}

// LoadedConfig contains the validated catalog and server settings.
type LoadedConfig struct {
	Species       []game.Species
	Moves         []game.Move
	Chart         game.TypeChart
	ServerAddress string
	Battle        BattleSettings
}

// Load reads and validates the configuration at path. An empty path loads
// the embedded default configuration.
func Load(path string) (*LoadedConfig, error) {
	b := defaultConfig
	if path != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(rc.TypeChart) == 0 {
		return nil, fmt.Errorf("config: type_chart is empty")
	}
	chart := make(game.TypeChart, len(rc.TypeChart))
	for att, row := range rc.TypeChart {
		out := make(map[game.Type]float64, len(row))
		for def, mult := range row {
			if mult < 0 {
				return nil, fmt.Errorf("config: type_chart[%s][%s] is negative", att, def)
			}
			out[game.Type(strings.ToLower(def))] = mult
		}
		chart[game.Type(strings.ToLower(att))] = out
	}
	// Defending types named only inside rows must still be valid types.
	for att, row := range chart {
		for def := range row {
			if !chart.Known(def) {
				return nil, fmt.Errorf("config: type_chart[%s] references unknown type '%s'", att, def)
			}
		}
	}

	if len(rc.MoveList) == 0 {
		return nil, fmt.Errorf("config: move_list is empty (provide a 'move_list' array)")
	}
	moves := make([]game.Move, 0, len(rc.MoveList))
	moveSet := make(map[string]struct{}, len(rc.MoveList))
	for _, m := range rc.MoveList {
		if m.Name == "" {
			return nil, fmt.Errorf("config: move entry missing 'name'")
		}
		ln := strings.ToLower(m.Name)
		if _, exists := moveSet[ln]; exists {
			return nil, fmt.Errorf("config: duplicate move name '%s'", m.Name)
		}
		moveSet[ln] = struct{}{}
		mt := game.Type(strings.ToLower(m.Type))
		if !chart.Known(mt) {
			return nil, fmt.Errorf("config: move '%s' has unknown type '%s'", m.Name, m.Type)
		}
		if m.Power < 0 {
			return nil, fmt.Errorf("config: move '%s' has negative power", m.Name)
		}
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return nil, fmt.Errorf("config: move '%s' accuracy must be within [0,100]", m.Name)
		}
		cat := game.MoveCategory(strings.ToLower(m.Category))
		if cat != game.CategoryPhysical && cat != game.CategorySpecial {
			return nil, fmt.Errorf("config: move '%s' category must be physical or special", m.Name)
		}
		moves = append(moves, game.Move{
			Name:     m.Name,
			Type:     mt,
			Power:    m.Power,
			Accuracy: m.Accuracy,
			Category: cat,
		})
	}

	if len(rc.SpeciesList) == 0 {
		return nil, fmt.Errorf("config: species_list is empty (provide a 'species_list' array)")
	}
	species := make([]game.Species, 0, len(rc.SpeciesList))
	nameSet := make(map[string]struct{}, len(rc.SpeciesList))
	for _, s := range rc.SpeciesList {
		if s.Name == "" {
			return nil, fmt.Errorf("config: species entry missing 'name'")
		}
		ln := strings.ToLower(strings.TrimSpace(s.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config: duplicate species name '%s'", s.Name)
		}
		nameSet[ln] = struct{}{}
		if len(s.Types) < 1 || len(s.Types) > 2 {
			return nil, fmt.Errorf("config: species '%s' must have 1 or 2 types", s.Name)
		}
		types := make([]game.Type, 0, len(s.Types))
		for _, t := range s.Types {
			st := game.Type(strings.ToLower(t))
			if !chart.Known(st) {
				return nil, fmt.Errorf("config: species '%s' has unknown type '%s'", s.Name, t)
			}
			types = append(types, st)
		}
		if s.BaseStats.HP < 1 || s.BaseStats.Attack < 1 || s.BaseStats.Defense < 1 || s.BaseStats.Speed < 1 {
			return nil, fmt.Errorf("config: species '%s' base stats must all be >= 1", s.Name)
		}
		// Pool entries that do not appear in move_list are allowed: such a
		// species simply ends up with fewer (possibly zero) drawable moves.
		species = append(species, game.Species{
			Name:     s.Name,
			Types:    types,
			Stats:    s.BaseStats,
			MovePool: append([]string(nil), s.Moves...),
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	battle := BattleSettings{
		MovesPerCombatant:  4,
		LookupMoveCount:    2,
		DefaultLookupLevel: 50,
		MinRandomLevel:     20,
		MaxRandomLevel:     70,
	}
	if rc.Battle != nil {
		if rc.Battle.MovesPerCombatant > 0 {
			battle.MovesPerCombatant = rc.Battle.MovesPerCombatant
		}
		if rc.Battle.LookupMoveCount > 0 {
			battle.LookupMoveCount = rc.Battle.LookupMoveCount
		}
		if rc.Battle.DefaultLookupLevel > 0 {
			battle.DefaultLookupLevel = rc.Battle.DefaultLookupLevel
		}
		if rc.Battle.MinRandomLevel > 0 {
			battle.MinRandomLevel = rc.Battle.MinRandomLevel
		}
		if rc.Battle.MaxRandomLevel > 0 {
			battle.MaxRandomLevel = rc.Battle.MaxRandomLevel
		}
	}
	if battle.MinRandomLevel > battle.MaxRandomLevel {
		return nil, fmt.Errorf("config: min_random_level exceeds max_random_level")
	}

	return &LoadedConfig{
		Species:       species,
		Moves:         moves,
		Chart:         chart,
		ServerAddress: addr,
		Battle:        battle,
	}, nil
}
