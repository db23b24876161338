package webserver

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stake-plus/stockdesk/src/calc"
	"github.com/stake-plus/stockdesk/src/data"
	"github.com/stake-plus/stockdesk/src/format"
	"github.com/stake-plus/stockdesk/src/notify"
)

var movementTypes = map[string]bool{
	"receive": true, "issue": true, "return": true, "move": true, "adjust": true,
}

type Movements struct {
	db     *gorm.DB
	toasts *notify.Center
}

func NewMovements(db *gorm.DB, toasts *notify.Center) Movements {
	return Movements{db: db, toasts: toasts}
}

func (h Movements) Create(c *gin.Context) {
	var req struct {
		Material   string  `json:"material" binding:"required"`
		Shape      string  `json:"shape" binding:"required"`
		DiameterMm float64 `json:"diameterMm"`
		LengthMm   float64 `json:"lengthMm"`
		Type       string  `json:"type" binding:"required"`
		Note       string  `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if !movementTypes[req.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad movement type"})
		return
	}

	density, ok := data.MaterialDensity(h.db, req.Material)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"err": "unknown material"})
		return
	}

	m := data.Movement{
		UUID:         uuid.New().String(),
		MaterialCode: req.Material,
		Shape:        req.Shape,
		DiameterMm:   req.DiameterMm,
		LengthMm:     req.LengthMm,
		WeightKg:     calc.Weight(calc.Shape(req.Shape), req.DiameterMm, req.LengthMm, density),
		Type:         req.Type,
		Note:         req.Note,
		CreatedAt:    time.Now(),
	}
	if err := h.db.Create(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	h.toasts.Push(notify.SeveritySuccess, fmt.Sprintf("%s recorded (%s kg)",
		format.MovementLabel(m.Type), format.Number(m.WeightKg, 3, "")))

	c.JSON(http.StatusCreated, gin.H{"id": m.UUID, "weightKg": m.WeightKg})
}

func (h Movements) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	q := h.db.Order("created_at desc").Limit(limit)
	if typ := c.Query("type"); typ != "" {
		q = q.Where("type = ?", typ)
	}

	var movements []data.Movement
	if err := q.Find(&movements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements})
}

// ExportCSV streams the movement log as a CSV attachment, which the browser
// saves under a dated filename.
func (h Movements) ExportCSV(c *gin.Context) {
	var movements []data.Movement
	if err := h.db.Order("created_at asc").Find(&movements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "date", "material", "shape", "diameter_mm", "length_mm", "weight_kg", "type", "note"})
	for _, m := range movements {
		_ = w.Write([]string{
			m.UUID,
			format.DateTime(m.CreatedAt),
			m.MaterialCode,
			format.ShapeLabel(m.Shape),
			strconv.FormatFloat(m.DiameterMm, 'f', -1, 64),
			strconv.FormatFloat(m.LengthMm, 'f', -1, 64),
			strconv.FormatFloat(m.WeightKg, 'f', 3, 64),
			format.MovementLabel(m.Type),
			m.Note,
		})
	}
	w.Flush()

	filename := "movements-" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
