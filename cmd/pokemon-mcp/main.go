package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/thesidshah/pokemon-mcp/internal/api"
	"github.com/thesidshah/pokemon-mcp/internal/config"
	"github.com/thesidshah/pokemon-mcp/internal/constants"
	"github.com/thesidshah/pokemon-mcp/internal/logging"
	"github.com/thesidshah/pokemon-mcp/internal/service"
	"github.com/thesidshah/pokemon-mcp/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	// Load the catalog configuration. POKEMON_CONFIG may point at a custom
	// file; by default the embedded catalog is used.
	cfg, err := config.Load(os.Getenv(constants.EnvConfigPath))
	if err != nil {
		logging.Fatal("Missing or invalid pokemon configuration", err, logging.Fields{
			"config_path": os.Getenv(constants.EnvConfigPath),
			"hint":        "provide a JSON file with species_list, move_list and type_chart (see internal/config/pokemon_config.json)",
		})
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	arena := service.NewArena(cfg, repo, rng)
	handler := api.NewBattleHandler(arena, repo)

	router := gin.Default()
	router.GET(constants.RouteHealth, api.Health)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteSpecies, handler.ListSpecies)
		apiRoutes.GET(constants.RouteSpeciesByName, handler.GetSpecies)
		apiRoutes.GET(constants.RouteRandomSpecies, handler.GetRandomSpecies)

		apiRoutes.POST(constants.RouteBattles, handler.StartBattle)
		apiRoutes.POST(constants.RouteBattleAttack, handler.Attack)
		apiRoutes.GET(constants.RouteBattleCurrent, handler.BattleStatus)
		apiRoutes.GET(constants.RouteBattleHistory, handler.BattleHistory)

		apiRoutes.GET(constants.RouteTypeEffectiveness, handler.TypeEffectiveness)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
