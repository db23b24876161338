package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stockdesk/src/validate"
)

// ValidateField answers whether a single form value is acceptable.
func ValidateField(c *gin.Context) {
	var req struct {
		Value   string `json:"value"`
		Type    string `json:"type"`
		Options struct {
			Min       *float64 `json:"min"`
			Max       *float64 `json:"max"`
			MinLength *int     `json:"minLength"`
			MaxLength *int     `json:"maxLength"`
			Required  bool     `json:"required"`
		} `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	ok := validate.Input(req.Value, req.Type, validate.Options{
		Min:       req.Options.Min,
		Max:       req.Options.Max,
		MinLength: req.Options.MinLength,
		MaxLength: req.Options.MaxLength,
		Required:  req.Options.Required,
	})
	c.JSON(http.StatusOK, gin.H{"valid": ok})
}
