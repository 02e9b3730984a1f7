package engine

import (
	"math"
	"math/rand"

	"github.com/thesidshah/pokemon-mcp/internal/game"
)

// effectivenessCap bounds the combined type multiplier against dual-type
// defenders: a 2x/2x defender still takes at most double damage.
const effectivenessCap = 2.0

const sameTypeBonus = 1.5

// DamageResult carries the computed damage plus the auxiliary facts needed
// for reporting.
type DamageResult struct {
	Amount        int     `json:"amount"`
	SameTypeBonus bool    `json:"same_type_bonus"`
	Effectiveness float64 `json:"effectiveness"`
}

// ComputeDamage evaluates one use of move by attacker against defender.
//
//	base = ((2*level + 10) / 250) * (attack / defense) * power + 2
//	damage = floor(base * stab * effectiveness * uniform(0.85, 1.0))
//
// The effectiveness product over the defender's types is capped at 2x; a 0x
// multiplier always yields 0 damage. The random draw is the sole source of
// non-determinism.
func ComputeDamage(attacker, defender *game.Combatant, move game.Move, chart game.TypeChart, rng *rand.Rand) DamageResult {
	base := (float64(2*attacker.Level+10)/250.0)*
		(float64(attacker.Attack)/float64(defender.Defense))*
		float64(move.Power) + 2

	stab := 1.0
	if attacker.HasType(move.Type) {
		stab = sameTypeBonus
	}

	eff := chart.MultiplierAgainst(move.Type, defender.Types)
	if eff > effectivenessCap {
		eff = effectivenessCap
	}

	random := 0.85 + rng.Float64()*0.15

	return DamageResult{
		Amount:        int(math.Floor(base * stab * eff * random)),
		SameTypeBonus: stab > 1,
		Effectiveness: eff,
	}
}
