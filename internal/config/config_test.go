package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Species)
	assert.NotEmpty(t, cfg.Moves)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 4, cfg.Battle.MovesPerCombatant)
	assert.Equal(t, 2, cfg.Battle.LookupMoveCount)

	// The static chart is part of the contract: fire vs grass is always 2x.
	assert.Equal(t, 2.0, cfg.Chart.Multiplier("fire", "grass"))
	assert.Equal(t, 0.0, cfg.Chart.Multiplier("electric", "ground"))
	assert.Equal(t, 1.0, cfg.Chart.Multiplier("normal", "normal"))
}

func TestLoad_DefaultCatalogIsCoherent(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	byName := make(map[string]struct{}, len(cfg.Moves))
	for _, m := range cfg.Moves {
		byName[m.Name] = struct{}{}
	}
	// Every pool entry of the shipped catalog should resolve to a move so no
	// shipped species ends up with fewer drawable moves than configured.
	for _, sp := range cfg.Species {
		resolved := 0
		for _, name := range sp.MovePool {
			if _, ok := byName[name]; ok {
				resolved++
			}
		}
		assert.GreaterOrEqual(t, resolved, cfg.Battle.MovesPerCombatant, "species %s", sp.Name)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_RejectsDuplicateSpecies(t *testing.T) {
	path := writeConfig(t, `{
		"type_chart": {"normal": {}},
		"move_list": [{"name": "Tackle", "type": "normal", "power": 40, "accuracy": 100, "category": "physical"}],
		"species_list": [
			{"name": "Eevee", "types": ["normal"], "base_stats": {"hp": 55, "attack": 55, "defense": 50, "speed": 55}, "moves": ["Tackle"]},
			{"name": "eevee", "types": ["normal"], "base_stats": {"hp": 55, "attack": 55, "defense": 50, "speed": 55}, "moves": ["Tackle"]}
		]
	}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "duplicate species name")
}

func TestLoad_RejectsUnknownTypes(t *testing.T) {
	path := writeConfig(t, `{
		"type_chart": {"normal": {}},
		"move_list": [{"name": "Moonblast", "type": "fairy", "power": 95, "accuracy": 100, "category": "special"}],
		"species_list": [{"name": "Eevee", "types": ["normal"], "base_stats": {"hp": 55, "attack": 55, "defense": 50, "speed": 55}, "moves": []}]
	}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "unknown type")
}

func TestLoad_RejectsBadAccuracy(t *testing.T) {
	path := writeConfig(t, `{
		"type_chart": {"normal": {}},
		"move_list": [{"name": "Tackle", "type": "normal", "power": 40, "accuracy": 120, "category": "physical"}],
		"species_list": [{"name": "Eevee", "types": ["normal"], "base_stats": {"hp": 55, "attack": 55, "defense": 50, "speed": 55}, "moves": []}]
	}`)
	_, err := Load(path)
	require.ErrorContains(t, err, "accuracy")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	require.Error(t, err)
}
