package api

import (
	"net/http"
	"strconv"

	"github.com/thesidshah/pokemon-mcp/internal/constants"
	"github.com/thesidshah/pokemon-mcp/internal/service"
	"github.com/thesidshah/pokemon-mcp/internal/storage"

	"github.com/gin-gonic/gin"
)

// BattleHandler groups all HTTP handlers around one arena.
type BattleHandler struct {
	arena *service.Arena
	repo  storage.Repository
}

// NewBattleHandler creates a handler backed by the given arena and
// repository.
func NewBattleHandler(arena *service.Arena, repo storage.Repository) *BattleHandler {
	return &BattleHandler{arena: arena, repo: repo}
}

// parseLevel reads an optional level value from a query parameter. Returns
// 0 when absent (callers treat 0 as "use the default"). Out-of-range or
// non-numeric values are rejected here: level validation is the boundary's
// responsibility, not the engine's.
func parseLevel(c *gin.Context, key string) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 100 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrLevelOutOfRange})
		return 0, false
	}
	return n, true
}

// validLevel checks an optional body-supplied level (0 means unset).
func validLevel(n int) bool {
	return n == 0 || (n >= 1 && n <= 100)
}
