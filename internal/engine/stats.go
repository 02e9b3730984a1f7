package engine

// ScaleStat converts a species base attribute into the battle-ready value
// for a given level: floor(2*base*level/100 + 5). The result is >= 1 for any
// base >= 1 and level >= 1, so scaled defense can never be zero.
func ScaleStat(base, level int) int {
	return 2*base*level/100 + 5
}

// ScaleHP converts a species base HP into max health for a given level:
// floor(2*base*level/100 + level + 10).
func ScaleHP(base, level int) int {
	return 2*base*level/100 + level + 10
}
