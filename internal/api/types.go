package api

import (
	"net/http"

	"github.com/thesidshah/pokemon-mcp/internal/constants"

	"github.com/gin-gonic/gin"
)

// TypeEffectiveness answers chart lookups. ?attacking= is required;
// ?defending= narrows the answer to a single multiplier, otherwise the full
// breakdown for the attacking type is returned.
func (h *BattleHandler) TypeEffectiveness(c *gin.Context) {
	attacking := c.Query("attacking")
	if attacking == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrAttackingRequired})
		return
	}
	report, err := h.arena.TypeEffectiveness(attacking, c.Query("defending"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownType})
		return
	}
	c.JSON(http.StatusOK, report)
}
