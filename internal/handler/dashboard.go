package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/levelup-marketers/client-dashboard-service/internal/dashboard"
	"github.com/levelup-marketers/client-dashboard-service/internal/errs"
)

// DashboardHandler serves the client-facing overview and section payloads.
type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("clientID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}
	ov, err := h.svc.Overview(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, errs.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build overview"})
		return
	}
	c.JSON(http.StatusOK, ov)
}

func (h *DashboardHandler) Section(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("clientID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}
	section := c.Param("section")
	if !dashboard.ValidSection(section) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section"})
		return
	}
	payload, err := h.svc.Section(c.Request.Context(), clientID, section)
	if err != nil {
		if errors.Is(err, errs.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section, "content": payload})
}
