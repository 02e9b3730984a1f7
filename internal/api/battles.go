package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/thesidshah/pokemon-mcp/internal/constants"
	"github.com/thesidshah/pokemon-mcp/internal/engine"
	"github.com/thesidshah/pokemon-mcp/internal/service"

	"github.com/gin-gonic/gin"
)

// StartBattleRequest carries the start_battle arguments. Levels are
// optional; 0 means "pick a random level".
type StartBattleRequest struct {
	Species1 string `json:"species1" binding:"required"`
	Species2 string `json:"species2" binding:"required"`
	Level1   int    `json:"level1"`
	Level2   int    `json:"level2"`
}

// StartBattle creates a fresh battle, unconditionally discarding any
// previous one.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if !validLevel(req.Level1) || !validLevel(req.Level2) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrLevelOutOfRange})
		return
	}
	report, err := h.arena.StartBattle(req.Species1, req.Species2, req.Level1, req.Level2)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSpeciesNotFound})
		return
	}
	c.JSON(http.StatusOK, report)
}

// AttackRequest carries the attack arguments.
type AttackRequest struct {
	Attacker string `json:"attacker" binding:"required"`
	Move     string `json:"move" binding:"required"`
}

// Attack resolves one attack call against the current battle.
func (h *BattleHandler) Attack(c *gin.Context) {
	var req AttackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	report, err := h.arena.Attack(req.Attacker, req.Move)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveBattle):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNoActiveBattle})
		case errors.Is(err, engine.ErrUnknownCombatant):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCombatantNotFound})
		case errors.Is(err, engine.ErrWrongTurn):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrWrongTurn})
		case errors.Is(err, engine.ErrUnknownMove):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownMove})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// BattleStatus reports the current battle, or an explicit "no battle"
// payload if none has ever started.
func (h *BattleHandler) BattleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.arena.Status())
}

// BattleHistory lists recently finished battles (?limit=N, default 20).
func (h *BattleHandler) BattleHistory(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	records, err := h.repo.GetRecentBattles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	c.JSON(http.StatusOK, gin.H{"battles": records})
}

// Leaderboard returns species ranked by wins (?limit=N, default 10).
func (h *BattleHandler) Leaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	stats, err := h.repo.GetTopSpecies(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRankings})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": stats})
}
