package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "POKEMON_CONFIG"
	EnvDBPath     = "POKEMON_DB"

	// Defaults used when the env vars above are unset
	DefaultDBPath = "./data/pokemon.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix         = "/api"
	RouteSpecies           = "/species"
	RouteSpeciesByName     = "/species/:name"
	RouteRandomSpecies     = "/random-species"
	RouteBattles           = "/battles"
	RouteBattleAttack      = "/battles/attack"
	RouteBattleCurrent     = "/battles/current"
	RouteBattleHistory     = "/battles/history"
	RouteTypeEffectiveness = "/type-effectiveness"
	RouteLeaderboard       = "/leaderboard"
	RouteVersion           = "/version"
	RouteHealth            = "/healthz"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrSpeciesNotFound     = "Species not found"
	ErrCombatantNotFound   = "Combatant not found in the current battle"
	ErrNoActiveBattle      = "No active battle"
	ErrWrongTurn           = "It is not that combatant's turn"
	ErrUnknownMove         = "Move not known by this combatant"
	ErrUnknownType         = "Unknown attacking type"
	ErrLevelOutOfRange     = "Level must be between 1 and 100"
	ErrAttackingRequired   = "attacking query parameter is required"
	ErrFailedFetchHistory  = "Failed to fetch battle history"
	ErrFailedFetchRankings = "Failed to fetch leaderboard"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldSpecies  = "species"
	LogFieldWinner   = "winner"
	LogFieldTurns    = "turns"
	LogFieldAddr     = "addr"
)
