package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/thesidshah/pokemon-mcp/internal/game"
)

var (
	// ErrUnknownCombatant means the attacker name matched neither side.
	ErrUnknownCombatant = errors.New("combatant is not part of this battle")
	// ErrWrongTurn means the resolved combatant is not the one whose turn it
	// is. Checked before accuracy and damage so an out-of-turn call never
	// mutates state.
	ErrWrongTurn = errors.New("not this combatant's turn")
	// ErrUnknownMove means the move is not in the attacker's assigned set.
	ErrUnknownMove = errors.New("move not known by this combatant")
)

// NewBattle creates an active battle between two ready combatants. The
// combatant with strictly higher speed acts first; on a tie player1 acts
// first. The turn counter starts at 1.
func NewBattle(id string, player1, player2 *game.Combatant) *game.Battle {
	b := &game.Battle{
		ID:         id,
		Combatants: [2]*game.Combatant{player1, player2},
		Turn:       1,
		ActorIndex: 0,
		Active:     true,
		StartedAt:  time.Now(),
	}
	if player2.Speed > player1.Speed {
		b.ActorIndex = 1
	}
	return b
}

// AttackReport describes one resolved attack call: the move used, hit or
// miss, damage facts, both combatants' health and the victory state.
type AttackReport struct {
	Turn          int      `json:"turn"`
	Attacker      string   `json:"attacker"`
	Defender      string   `json:"defender"`
	Move          string   `json:"move"`
	Hit           bool     `json:"hit"`
	Damage        int      `json:"damage"`
	SameTypeBonus bool     `json:"same_type_bonus"`
	Effectiveness float64  `json:"effectiveness"`
	EffectLabel   string   `json:"effectiveness_text,omitempty"`
	AttackerHP    HPStatus `json:"attacker_hp"`
	DefenderHP    HPStatus `json:"defender_hp"`
	BattleOver    bool     `json:"battle_over"`
	Winner        string   `json:"winner,omitempty"`
	Log           []string `json:"log"`
}

// HPStatus is a current/max health snapshot.
type HPStatus struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Attack validates and applies one move use for attackerName. A miss still
// succeeds and advances the turn. A hit applies damage; if the defender
// faints the battle ends, the attacker wins and the turn pointer is left
// untouched. Validation errors leave the battle unchanged.
func Attack(b *game.Battle, chart game.TypeChart, attackerName, moveName string, rng *rand.Rand) (*AttackReport, error) {
	// Check the current actor first so mirror matches (both sides the same
	// species) resolve to the side allowed to act.
	var attacker, defender *game.Combatant
	switch {
	case strings.EqualFold(b.Actor().Species, attackerName):
		attacker, defender = b.Actor(), b.Opponent()
	case strings.EqualFold(b.Opponent().Species, attackerName):
		return nil, ErrWrongTurn
	default:
		return nil, ErrUnknownCombatant
	}

	move, ok := attacker.MoveNamed(moveName)
	if !ok {
		return nil, ErrUnknownMove
	}

	report := &AttackReport{
		Turn:     b.Turn,
		Attacker: attacker.Species,
		Defender: defender.Species,
		Move:     move.Name,
	}

	if rng.Float64()*100 >= float64(move.Accuracy) {
		report.Hit = false
		report.Log = append(report.Log, fmt.Sprintf("%s used %s... but it missed!", attacker.Species, move.Name))
		b.AdvanceTurn()
		report.AttackerHP = HPStatus{Current: attacker.CurrentHP, Max: attacker.MaxHP}
		report.DefenderHP = HPStatus{Current: defender.CurrentHP, Max: defender.MaxHP}
		return report, nil
	}

	dmg := ComputeDamage(attacker, defender, move, chart, rng)
	defender.ApplyDamage(dmg.Amount)

	report.Hit = true
	report.Damage = dmg.Amount
	report.SameTypeBonus = dmg.SameTypeBonus
	report.Effectiveness = dmg.Effectiveness
	if label := game.ClassifyEffectiveness(dmg.Effectiveness); label != game.EffectNeutral {
		report.EffectLabel = label
	}

	report.Log = append(report.Log, fmt.Sprintf("%s used %s!", attacker.Species, move.Name))
	switch {
	case dmg.Effectiveness == 0:
		report.Log = append(report.Log, fmt.Sprintf("It doesn't affect %s...", defender.Species))
	case dmg.Effectiveness > 1:
		report.Log = append(report.Log, "It's super effective!")
	case dmg.Effectiveness < 1:
		report.Log = append(report.Log, "It's not very effective...")
	}
	if dmg.Amount > 0 {
		report.Log = append(report.Log, fmt.Sprintf("%s took %d damage.", defender.Species, dmg.Amount))
	}

	if defender.Fainted() {
		b.Active = false
		b.Winner = attacker.Species
		report.BattleOver = true
		report.Winner = attacker.Species
		report.Log = append(report.Log,
			fmt.Sprintf("%s fainted!", defender.Species),
			fmt.Sprintf("%s wins the battle!", attacker.Species))
	} else {
		b.AdvanceTurn()
	}

	report.AttackerHP = HPStatus{Current: attacker.CurrentHP, Max: attacker.MaxHP}
	report.DefenderHP = HPStatus{Current: defender.CurrentHP, Max: defender.MaxHP}
	return report, nil
}
