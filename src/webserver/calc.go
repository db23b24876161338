package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stake-plus/stockdesk/src/calc"
	"github.com/stake-plus/stockdesk/src/data"
	"github.com/stake-plus/stockdesk/src/format"
)

type Calc struct {
	db *gorm.DB
}

func NewCalc(db *gorm.DB) Calc { return Calc{db: db} }

// Weigh computes bar stock weight. Density can be given directly or via a
// material code from the catalog; an explicit density wins.
func (h Calc) Weigh(c *gin.Context) {
	var req struct {
		Shape      string   `json:"shape" binding:"required"`
		DiameterMm float64  `json:"diameterMm"`
		LengthMm   float64  `json:"lengthMm"`
		Density    *float64 `json:"density"`
		Material   string   `json:"material"`
		Locale     string   `json:"locale"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	density := 0.0
	switch {
	case req.Density != nil:
		density = *req.Density
	case req.Material != "":
		d, ok := data.MaterialDensity(h.db, req.Material)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"err": "unknown material"})
			return
		}
		density = d
	default:
		c.JSON(http.StatusBadRequest, gin.H{"err": "density or material required"})
		return
	}

	weight := calc.Weight(calc.Shape(req.Shape), req.DiameterMm, req.LengthMm, density)

	c.JSON(http.StatusOK, gin.H{
		"weightKg":   weight,
		"display":    format.Number(weight, 3, req.Locale) + " kg",
		"shapeLabel": format.ShapeLabel(req.Shape),
	})
}

// Materials lists the alloy catalog.
func (h Calc) Materials(c *gin.Context) {
	var materials []data.Material
	if err := h.db.Order("code asc").Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": materials})
}
