package api

import (
	"net/http"

	"github.com/thesidshah/pokemon-mcp/internal/version"

	"github.com/gin-gonic/gin"
)

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}

// Health is the liveness probe used by cmd/healthcheck and container
// orchestrators.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
