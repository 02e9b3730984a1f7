package api

import (
	"net/http"

	"github.com/thesidshah/pokemon-mcp/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListSpecies returns the full species catalog.
func (h *BattleHandler) ListSpecies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"species": h.arena.ListSpecies()})
}

// GetSpecies returns a battle-ready preview of one species at an optional
// level (?level=N, defaulting per configuration).
func (h *BattleHandler) GetSpecies(c *gin.Context) {
	level, ok := parseLevel(c, "level")
	if !ok {
		return
	}
	combatant, err := h.arena.GetSpecies(c.Param("name"), level)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSpeciesNotFound})
		return
	}
	c.JSON(http.StatusOK, combatant)
}

// GetRandomSpecies returns a preview of a randomly drawn species.
func (h *BattleHandler) GetRandomSpecies(c *gin.Context) {
	level, ok := parseLevel(c, "level")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.arena.GetRandomSpecies(level))
}
