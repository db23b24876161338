package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stockdesk/src/errmap"
	"github.com/stake-plus/stockdesk/src/notify"
)

type Toasts struct {
	center   *notify.Center
	confirms *notify.Broker
	mapper   errmap.Mapper
}

func NewToasts(center *notify.Center, confirms *notify.Broker, mapper errmap.Mapper) Toasts {
	return Toasts{center: center, confirms: confirms, mapper: mapper}
}

func (h Toasts) Push(c *gin.Context) {
	var req struct {
		Severity string `json:"severity"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	t := h.center.Push(notify.Severity(req.Severity), req.Message)
	c.JSON(http.StatusCreated, t)
}

func (h Toasts) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toasts": h.center.Active()})
}

func (h Toasts) Dismiss(c *gin.Context) {
	h.center.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ReportError maps a failed operation's error text onto a user-facing toast,
// mirroring what the frontend error handler used to do with raw messages.
func (h Toasts) ReportError(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	n := h.mapper.Map(errors.New(req.Message))
	h.center.Push(notify.Severity(n.Severity), n.Message)

	resp := gin.H{"message": n.Message, "severity": n.Severity}
	if n.Redirect != "" {
		resp["redirect"] = n.Redirect
		resp["redirectAfterMs"] = n.RedirectAfter.Milliseconds()
	}
	c.JSON(http.StatusOK, resp)
}

func (h Toasts) PendingConfirmations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"confirmations": h.confirms.Pending()})
}

func (h Toasts) AnswerConfirmation(c *gin.Context) {
	var req struct {
		Accepted bool `json:"accepted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if !h.confirms.Answer(c.Param("id"), req.Accepted) {
		c.JSON(http.StatusNotFound, gin.H{"err": "no such confirmation"})
		return
	}
	c.Status(http.StatusNoContent)
}
