package service

import (
	"strings"

	"github.com/thesidshah/pokemon-mcp/internal/engine"
	"github.com/thesidshah/pokemon-mcp/internal/game"
)

// ListSpecies returns the full catalog in configuration order.
func (a *Arena) ListSpecies() []game.Species {
	return a.speciesOrder
}

// GetSpecies builds a standalone combatant preview for the named species.
// The lookup uses the smaller configured move count; level <= 0 falls back
// to the configured default lookup level.
func (a *Arena) GetSpecies(name string, level int) (*game.Combatant, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sp, ok := a.speciesByName[strings.ToLower(name)]
	if !ok {
		return nil, ErrSpeciesNotFound
	}
	return a.buildLookup(sp, level), nil
}

// GetRandomSpecies picks a catalog species uniformly and builds a preview.
func (a *Arena) GetRandomSpecies(level int) *game.Combatant {
	a.mu.Lock()
	defer a.mu.Unlock()

	sp := a.speciesOrder[a.rng.Intn(len(a.speciesOrder))]
	return a.buildLookup(sp, level)
}

func (a *Arena) buildLookup(sp game.Species, level int) *game.Combatant {
	if level <= 0 {
		level = a.settings.DefaultLookupLevel
	}
	return engine.NewCombatant(sp, a.movesByName, level, a.settings.LookupMoveCount, a.rng)
}

// EffectivenessReport answers a type_effectiveness call. With a defending
// type it carries the single multiplier and its classification; without one
// it carries the attacking type's full breakdown (types in no bucket are
// implicitly neutral).
type EffectivenessReport struct {
	Attacking      string   `json:"attacking"`
	Defending      string   `json:"defending,omitempty"`
	Multiplier     *float64 `json:"multiplier,omitempty"`
	Classification string   `json:"classification,omitempty"`

	SuperEffectiveAgainst   []string `json:"super_effective_against,omitempty"`
	NotVeryEffectiveAgainst []string `json:"not_very_effective_against,omitempty"`
	NoEffectAgainst         []string `json:"no_effect_against,omitempty"`
}

// TypeEffectiveness looks up the static chart. Both type names are checked
// against the chart's key set so unknown types never reach the core lookup.
func (a *Arena) TypeEffectiveness(attacking, defending string) (*EffectivenessReport, error) {
	att := game.Type(strings.ToLower(attacking))
	if !a.chart.Known(att) {
		return nil, ErrUnknownType
	}

	if defending != "" {
		def := game.Type(strings.ToLower(defending))
		if !a.chart.Known(def) {
			return nil, ErrUnknownType
		}
		mult := a.chart.Multiplier(att, def)
		return &EffectivenessReport{
			Attacking:      string(att),
			Defending:      string(def),
			Multiplier:     &mult,
			Classification: game.ClassifyEffectiveness(mult),
		}, nil
	}

	report := &EffectivenessReport{Attacking: string(att)}
	for _, def := range a.chart.Types() {
		switch mult := a.chart.Multiplier(att, def); {
		case mult == 0:
			report.NoEffectAgainst = append(report.NoEffectAgainst, string(def))
		case mult > 1:
			report.SuperEffectiveAgainst = append(report.SuperEffectiveAgainst, string(def))
		case mult < 1:
			report.NotVeryEffectiveAgainst = append(report.NotVeryEffectiveAgainst, string(def))
		}
	}
	return report, nil
}
