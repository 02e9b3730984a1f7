package engine

import (
	"math/rand"
	"strings"

	"github.com/thesidshah/pokemon-mcp/internal/game"
)

// NewCombatant builds a battle-ready combatant from a species template.
// Stats are scaled for the level, current HP starts at max and moveCount
// distinct moves are drawn uniformly without replacement from the subset of
// the move catalog named by the species' pool. When the pool resolves to
// fewer moves than requested, all available moves are assigned; a pool that
// matches nothing in the catalog yields zero moves.
func NewCombatant(sp game.Species, moveCatalog map[string]game.Move, level, moveCount int, rng *rand.Rand) *game.Combatant {
	c := &game.Combatant{
		Species: sp.Name,
		Types:   append([]game.Type(nil), sp.Types...),
		Level:   level,
		MaxHP:   ScaleHP(sp.Stats.HP, level),
		Attack:  ScaleStat(sp.Stats.Attack, level),
		Defense: ScaleStat(sp.Stats.Defense, level),
		Speed:   ScaleStat(sp.Stats.Speed, level),
		Status:  game.StatusNone,
	}
	c.CurrentHP = c.MaxHP
	c.Moves = drawMoves(sp.MovePool, moveCatalog, moveCount, rng)
	return c
}

// drawMoves samples up to count moves from the pool entries present in the
// catalog. Catalog keys are lowercase move names.
func drawMoves(pool []string, moveCatalog map[string]game.Move, count int, rng *rand.Rand) []game.Move {
	eligible := make([]game.Move, 0, len(pool))
	for _, name := range pool {
		if m, ok := moveCatalog[strings.ToLower(name)]; ok {
			eligible = append(eligible, m)
		}
	}
	if count > len(eligible) {
		count = len(eligible)
	}
	drawn := make([]game.Move, 0, count)
	for _, idx := range rng.Perm(len(eligible))[:count] {
		drawn = append(drawn, eligible[idx])
	}
	return drawn
}
