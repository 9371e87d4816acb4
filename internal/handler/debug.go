package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types/interfaces"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/utils"
)

// DebugHandler serves the health and debug endpoints
type DebugHandler struct {
	syllabi interfaces.SyllabusService
	now     func() time.Time
}

// NewDebugHandler creates a debug handler. Pass nil for now to use the
// wall clock.
func NewDebugHandler(syllabi interfaces.SyllabusService, now func() time.Time) *DebugHandler {
	if now == nil {
		now = time.Now
	}
	return &DebugHandler{syllabi: syllabi, now: now}
}

// Health handles GET /health
func (h *DebugHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Time handles GET /debug/time and reports the current moment in the
// fixed reference timezone
func (h *DebugHandler) Time(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"isoNow":     now.UTC().Format(time.RFC3339),
		"viennaDate": utils.FormatViennaDate(now),
		"viennaTime": utils.FormatViennaTime(now),
	})
}

// SyllabiIndex handles GET /debug/syllabi-index. Fetch and configuration
// failures are reported in the body with a 200 status, matching how the
// chat flow treats them as non-fatal.
func (h *DebugHandler) SyllabiIndex(c *gin.Context) {
	index, err := h.syllabi.GetIndex(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "courses": index.Names()})
}
