package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesidshah/pokemon-mcp/internal/config"
	"github.com/thesidshah/pokemon-mcp/internal/engine"
	"github.com/thesidshah/pokemon-mcp/internal/game"
	"github.com/thesidshah/pokemon-mcp/internal/storage"
)

type mockRepo struct {
	records      []*game.BattleRecord
	statsUpdates [][2]string
}

func (m *mockRepo) SaveBattleRecord(r *game.BattleRecord) error {
	m.records = append(m.records, r)
	return nil
}

func (m *mockRepo) GetRecentBattles(limit int) ([]game.BattleRecord, error) { return nil, nil }

func (m *mockRepo) UpdateStatsOnBattleEnd(winner, loser string) error {
	m.statsUpdates = append(m.statsUpdates, [2]string{winner, loser})
	return nil
}

func (m *mockRepo) GetTopSpecies(limit int) ([]game.SpeciesStat, error) { return nil, nil }

// testConfig builds a small two-species catalog with weak, always-hitting
// moves so battles are multi-turn and fully deterministic apart from damage
// variance.
func testConfig() *config.LoadedConfig {
	return &config.LoadedConfig{
		Species: []game.Species{
			{
				Name:     "Pikachu",
				Types:    []game.Type{"electric"},
				Stats:    game.BaseStats{HP: 35, Attack: 55, Defense: 40, Speed: 90},
				MovePool: []string{"Spark", "Nuzzle"},
			},
			{
				Name:     "Squirtle",
				Types:    []game.Type{"water"},
				Stats:    game.BaseStats{HP: 44, Attack: 48, Defense: 65, Speed: 43},
				MovePool: []string{"Splash Hit", "Shell Bump"},
			},
		},
		Moves: []game.Move{
			{Name: "Spark", Type: "electric", Power: 10, Accuracy: 100, Category: game.CategorySpecial},
			{Name: "Nuzzle", Type: "electric", Power: 10, Accuracy: 100, Category: game.CategoryPhysical},
			{Name: "Splash Hit", Type: "water", Power: 10, Accuracy: 100, Category: game.CategorySpecial},
			{Name: "Shell Bump", Type: "water", Power: 10, Accuracy: 100, Category: game.CategoryPhysical},
		},
		Chart: game.TypeChart{
			"normal":   {},
			"electric": {"water": 2, "electric": 0.5},
			"water":    {"water": 0.5},
		},
		ServerAddress: ":8080",
		Battle: config.BattleSettings{
			MovesPerCombatant:  2,
			LookupMoveCount:    1,
			DefaultLookupLevel: 50,
			MinRandomLevel:     20,
			MaxRandomLevel:     70,
		},
	}
}

func newTestArena(t *testing.T, repo *mockRepo) *Arena {
	t.Helper()
	var r storage.Repository
	if repo != nil {
		r = repo
	}
	return NewArena(testConfig(), r, rand.New(rand.NewSource(1)))
}

func TestStartBattle_UnknownSpecies(t *testing.T) {
	a := newTestArena(t, nil)
	_, err := a.StartBattle("Pikachu", "Mewtwo", 50, 50)
	require.ErrorIs(t, err, ErrSpeciesNotFound)
}

func TestStartBattle_FasterSpeciesActsFirst(t *testing.T) {
	a := newTestArena(t, nil)
	report, err := a.StartBattle("pikachu", "squirtle", 50, 50)
	require.NoError(t, err)

	assert.Equal(t, "Pikachu", report.FirstActor)
	assert.Equal(t, 1, report.Turn)
	assert.Len(t, report.Player1.Moves, 2)
	assert.Equal(t, report.Player1.MaxHP, report.Player1.CurrentHP)
}

func TestStartBattle_DefaultsLevelsToRandomRange(t *testing.T) {
	a := newTestArena(t, nil)
	report, err := a.StartBattle("Pikachu", "Squirtle", 0, 0)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, report.Player1.Level, 20)
	assert.LessOrEqual(t, report.Player1.Level, 70)
	assert.GreaterOrEqual(t, report.Player2.Level, 20)
	assert.LessOrEqual(t, report.Player2.Level, 70)
}

func TestAttack_NoBattleStarted(t *testing.T) {
	a := newTestArena(t, nil)
	_, err := a.Attack("Pikachu", "Spark")
	require.ErrorIs(t, err, ErrNoActiveBattle)

	status := a.Status()
	assert.False(t, status.Active)
	assert.Equal(t, "No battle has been started.", status.Message)
}

func TestAttack_TurnOrderEnforced(t *testing.T) {
	a := newTestArena(t, nil)
	report, err := a.StartBattle("Pikachu", "Squirtle", 50, 50)
	require.NoError(t, err)

	move := report.Player1.Moves[0].Name
	attack, err := a.Attack("Pikachu", move)
	require.NoError(t, err)
	assert.True(t, attack.Hit)
	assert.Greater(t, attack.Damage, 0)
	assert.Equal(t, attack.DefenderHP.Max-attack.Damage, attack.DefenderHP.Current)

	// Immediately attacking again out of turn must fail without mutating.
	_, err = a.Attack("Pikachu", move)
	require.ErrorIs(t, err, engine.ErrWrongTurn)

	status := a.Status()
	assert.Equal(t, 2, status.Turn)
	assert.Equal(t, "Squirtle", status.CurrentActor)
}

func TestAttack_BattleRunsToCompletion(t *testing.T) {
	repo := &mockRepo{}
	a := newTestArena(t, repo)
	_, err := a.StartBattle("Pikachu", "Squirtle", 50, 50)
	require.NoError(t, err)

	var last *engine.AttackReport
	for i := 0; i < 500; i++ {
		status := a.Status()
		if !status.Active {
			break
		}
		actor := status.CurrentActor
		move := "Spark"
		if actor == "Squirtle" {
			move = "Splash Hit"
		}
		last, err = a.Attack(actor, move)
		require.NoError(t, err)
	}

	require.NotNil(t, last)
	require.True(t, last.BattleOver)
	// Pikachu out-damages Squirtle (super effective + bonus) at equal levels.
	assert.Equal(t, "Pikachu", last.Winner)

	// Attacking a finished battle reports NoActiveBattle, not WrongTurn.
	_, err = a.Attack("Pikachu", "Spark")
	require.ErrorIs(t, err, ErrNoActiveBattle)

	status := a.Status()
	assert.False(t, status.Active)
	assert.Equal(t, "Pikachu", status.Winner)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "Pikachu", repo.records[0].Winner)
	assert.NotEmpty(t, repo.records[0].BattleUUID)
	require.Len(t, repo.statsUpdates, 1)
	assert.Equal(t, [2]string{"Pikachu", "Squirtle"}, repo.statsUpdates[0])
}

func TestStartBattle_OverwritesExistingBattle(t *testing.T) {
	a := newTestArena(t, nil)
	first, err := a.StartBattle("Pikachu", "Squirtle", 50, 50)
	require.NoError(t, err)
	_, err = a.Attack("Pikachu", first.Player1.Moves[0].Name)
	require.NoError(t, err)

	second, err := a.StartBattle("Squirtle", "Pikachu", 30, 30)
	require.NoError(t, err)
	assert.NotEqual(t, first.BattleID, second.BattleID)
	assert.Equal(t, 1, second.Turn)

	status := a.Status()
	assert.True(t, status.Active)
	assert.Equal(t, second.BattleID, status.BattleID)
}

func TestLookups(t *testing.T) {
	a := newTestArena(t, nil)

	list := a.ListSpecies()
	require.Len(t, list, 2)

	c, err := a.GetSpecies("SQUIRTLE", 0)
	require.NoError(t, err)
	assert.Equal(t, "Squirtle", c.Species)
	assert.Equal(t, 50, c.Level)
	assert.Len(t, c.Moves, 1)

	_, err = a.GetSpecies("Mew", 0)
	require.ErrorIs(t, err, ErrSpeciesNotFound)

	random := a.GetRandomSpecies(25)
	assert.Equal(t, 25, random.Level)
	assert.Contains(t, []string{"Pikachu", "Squirtle"}, random.Species)
}

func TestTypeEffectiveness(t *testing.T) {
	a := newTestArena(t, nil)

	single, err := a.TypeEffectiveness("Electric", "Water")
	require.NoError(t, err)
	require.NotNil(t, single.Multiplier)
	assert.Equal(t, 2.0, *single.Multiplier)
	assert.Equal(t, game.EffectSuper, single.Classification)

	breakdown, err := a.TypeEffectiveness("electric", "")
	require.NoError(t, err)
	assert.Contains(t, breakdown.SuperEffectiveAgainst, "water")
	assert.Contains(t, breakdown.NotVeryEffectiveAgainst, "electric")
	assert.Empty(t, breakdown.NoEffectAgainst)

	_, err = a.TypeEffectiveness("cosmic", "")
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = a.TypeEffectiveness("water", "cosmic")
	require.ErrorIs(t, err, ErrUnknownType)
}
