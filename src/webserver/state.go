package webserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/stockdesk/src/forms"
	"github.com/stake-plus/stockdesk/src/storage"
	"github.com/stake-plus/stockdesk/src/uistate"
)

type UIState struct {
	kv       *storage.Store
	sessions *uistate.Manager
}

func NewUIState(kv *storage.Store, sessions *uistate.Manager) UIState {
	return UIState{kv: kv, sessions: sessions}
}

func (h UIState) stateKey(c *gin.Context) string {
	return c.Param("session") + ":" + c.Param("key")
}

// SetValue stores an arbitrary JSON value under the session's key.
func (h UIState) SetValue(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "body must be valid JSON"})
		return
	}
	var v any
	_ = json.Unmarshal(body, &v)
	if !h.kv.Set(c.Request.Context(), h.stateKey(c), v) {
		c.JSON(http.StatusInternalServerError, gin.H{"err": "store failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetValue returns the stored value, or the caller's default from the
// "default" query parameter when the key is missing or unreadable.
func (h UIState) GetValue(c *gin.Context) {
	var v any
	if !h.kv.Get(c.Request.Context(), h.stateKey(c), &v) {
		def := c.Query("default")
		c.JSON(http.StatusOK, gin.H{"value": def, "found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": v, "found": true})
}

func (h UIState) RemoveValue(c *gin.Context) {
	h.kv.Remove(c.Request.Context(), h.stateKey(c))
	c.Status(http.StatusNoContent)
}

func (h UIState) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Snapshot(c.Request.Context(), c.Param("session")))
}

func (h UIState) OpenModal(c *gin.Context) {
	h.sessions.OpenModal(c.Request.Context(), c.Param("session"), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h UIState) CloseModal(c *gin.Context) {
	h.sessions.CloseModal(c.Request.Context(), c.Param("session"), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// CloseOpenModal is the Escape / outside-click path: whatever modal is open
// gets closed.
func (h UIState) CloseOpenModal(c *gin.Context) {
	closed := h.sessions.CloseOpen(c.Request.Context(), c.Param("session"))
	c.JSON(http.StatusOK, gin.H{"closed": closed})
}

// SetForm stashes the modal's form fields, coalescing repeated names the way
// the browser submits them.
func (h UIState) SetForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	fields := forms.Map(c.Request.PostForm)
	h.sessions.SetForm(c.Request.Context(), c.Param("session"), c.Param("id"), fields)
	c.JSON(http.StatusOK, gin.H{"fields": fields})
}

func (h UIState) ShowElement(c *gin.Context) {
	h.sessions.Show(c.Request.Context(), c.Param("session"), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h UIState) HideElement(c *gin.Context) {
	h.sessions.Hide(c.Request.Context(), c.Param("session"), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h UIState) SetBusy(c *gin.Context) {
	var req struct {
		CurrentLabel string `json:"currentLabel"`
		BusyLabel    string `json:"busyLabel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if req.BusyLabel == "" {
		req.BusyLabel = "Working..."
	}
	h.sessions.SetBusy(c.Request.Context(), c.Param("session"), c.Param("control"),
		req.CurrentLabel, req.BusyLabel)
	c.Status(http.StatusNoContent)
}

func (h UIState) ClearBusy(c *gin.Context) {
	label := h.sessions.ClearBusy(c.Request.Context(), c.Param("session"), c.Param("control"))
	c.JSON(http.StatusOK, gin.H{"restoreLabel": label})
}
