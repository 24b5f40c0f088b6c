package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/levelup-marketers/client-dashboard-service/internal/service"
)

// ExtrasHandler serves the billing and plugin record endpoints.
type ExtrasHandler struct {
	svc *service.ExtrasService
}

func NewExtrasHandler(svc *service.ExtrasService) *ExtrasHandler {
	return &ExtrasHandler{svc: svc}
}

type createBillingRequest struct {
	ClientID      uint64 `json:"client_id" binding:"required"`
	InvoiceNumber string `json:"invoice_number" binding:"required"`
}

func (h *ExtrasHandler) CreateBilling(c *gin.Context) {
	var req createBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	b := &model.BillingRecord{ClientID: req.ClientID, InvoiceNumber: req.InvoiceNumber}
	if err := h.svc.CreateBilling(c.Request.Context(), b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create billing record"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *ExtrasHandler) ListBilling(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Query("client_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
		return
	}
	items, err := h.svc.ListBillingByClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list billing records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"billing": items, "total": len(items)})
}

type createPluginRequest struct {
	ClientID   uint64 `json:"client_id" binding:"required"`
	PluginName string `json:"plugin_name" binding:"required"`
}

func (h *ExtrasHandler) CreatePlugin(c *gin.Context) {
	var req createPluginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	p := &model.PluginRecord{ClientID: req.ClientID, PluginName: req.PluginName}
	if err := h.svc.CreatePlugin(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plugin record"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ExtrasHandler) ListPlugins(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Query("client_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
		return
	}
	items, err := h.svc.ListPluginsByClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plugin records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plugins": items, "total": len(items)})
}
