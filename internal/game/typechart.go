package game

import "sort"

// TypeChart maps attacking type -> defending type -> multiplier. Only
// non-neutral entries are stored; absent pairs are 1x. Every valid type has
// a row, so the key set doubles as the closed set of known types.
type TypeChart map[Type]map[Type]float64

// Known reports whether t is a valid attacking type.
func (c TypeChart) Known(t Type) bool {
	_, ok := c[t]
	return ok
}

// Types returns the chart's key set in sorted order.
func (c TypeChart) Types() []Type {
	out := make([]Type, 0, len(c))
	for t := range c {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Multiplier returns the single-pair multiplier, defaulting to 1 for pairs
// not present in the chart.
func (c TypeChart) Multiplier(attacking, defending Type) float64 {
	if row, ok := c[attacking]; ok {
		if m, ok := row[defending]; ok {
			return m
		}
	}
	return 1
}

// MultiplierAgainst multiplies the lookups for each of the defender's types
// (e.g. 2x * 2x = 4x for a dual-weak defender). Callers that want the
// battle-balance cap apply it on top of this raw product.
func (c TypeChart) MultiplierAgainst(attacking Type, defending []Type) float64 {
	mult := 1.0
	for _, d := range defending {
		mult *= c.Multiplier(attacking, d)
	}
	return mult
}

// Effectiveness classification strings used in attack reports and the
// type-effectiveness breakdown.
const (
	EffectSuper   = "super effective"
	EffectNotVery = "not very effective"
	EffectNone    = "no effect"
	EffectNeutral = "neutral"
)

// ClassifyEffectiveness maps a multiplier to its reporting label: >1 is
// super effective, 0 is no effect, (0,1) is not very effective and exactly
// 1 carries no annotation.
func ClassifyEffectiveness(mult float64) string {
	switch {
	case mult == 0:
		return EffectNone
	case mult > 1:
		return EffectSuper
	case mult < 1:
		return EffectNotVery
	default:
		return EffectNeutral
	}
}
