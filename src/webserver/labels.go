package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stockdesk/src/format"
)

// Labels serves the code→label tables the frontend renders selects from.
func Labels(c *gin.Context) {
	switch c.Param("kind") {
	case "shapes":
		c.JSON(http.StatusOK, gin.H{"labels": format.ShapeLabels()})
	case "movements":
		c.JSON(http.StatusOK, gin.H{"labels": format.MovementLabels()})
	default:
		c.JSON(http.StatusNotFound, gin.H{"err": "unknown label kind"})
	}
}
