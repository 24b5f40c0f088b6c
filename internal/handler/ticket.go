package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/levelup-marketers/client-dashboard-service/internal/errs"
	"github.com/levelup-marketers/client-dashboard-service/internal/kafka"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/levelup-marketers/client-dashboard-service/internal/searchindex"
	"github.com/levelup-marketers/client-dashboard-service/internal/service"
)

type TicketHandler struct {
	svc      service.TicketServicer
	search   *searchindex.Client
	producer kafka.RecordEventProducer
}

func NewTicketHandler(svc service.TicketServicer, search *searchindex.Client, producer kafka.RecordEventProducer) *TicketHandler {
	return &TicketHandler{svc: svc, search: search, producer: producer}
}

type createTicketRequest struct {
	ClientID           uint64     `json:"client_id" binding:"required"`
	CreationDatetime   *time.Time `json:"creation_datetime"`
	StartTime          *time.Time `json:"start_time"`
	EndTime            *time.Time `json:"end_time"`
	DurationMinutes    int        `json:"duration_minutes"`
	Status             string     `json:"status"`
	InitialDescription string     `json:"initial_description" binding:"required"`
	TicketUpdates      string     `json:"ticket_updates"`
	AttentionNeeded    string     `json:"attention_needed"`
	CriticalIssue      string     `json:"critical_issue"`
}

func ticketEventPayload(t *model.Ticket) map[string]interface{} {
	return map[string]interface{}{
		"ticket_id":   int64(t.ID),
		"client_id":   int64(t.ClientID),
		"status":      t.Status,
		"description": t.InitialDescription,
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	status := req.Status
	if status == "" {
		status = model.TicketStatusNotStarted
	}
	created := time.Now()
	if req.CreationDatetime != nil {
		created = *req.CreationDatetime
	}
	ticket := &model.Ticket{
		ClientID:           req.ClientID,
		CreationDatetime:   created,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		DurationMinutes:    req.DurationMinutes,
		Status:             status,
		InitialDescription: req.InitialDescription,
		TicketUpdates:      req.TicketUpdates,
		AttentionNeeded:    req.AttentionNeeded,
		CriticalIssue:      req.CriticalIssue,
	}
	if err := h.svc.Create(c.Request.Context(), ticket); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ticket"})
		return
	}
	h.search.IndexTicketAsync(ticket)
	h.producer.ProduceRecordEvent(c.Request.Context(), "ticket.created", ticketEventPayload(ticket))
	c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) List(c *gin.Context) {
	filter := make(map[string]interface{})
	if v := c.Query("client_id"); v != "" {
		filter["client_id = ?"] = v
	}
	if v := c.Query("status"); v != "" {
		filter["status = ?"] = v
	}
	limit, offset := pagination(c)
	items, total, err := h.svc.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tickets": items,
		"total":   total,
	})
}

type updateTicketRequest struct {
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Status          *string    `json:"status,omitempty"`
	TicketUpdates   *string    `json:"ticket_updates,omitempty"`
	AttentionNeeded *string    `json:"attention_needed,omitempty"`
	CriticalIssue   *string    `json:"critical_issue,omitempty"`
}

func (h *TicketHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	changes := make(map[string]interface{})
	if req.StartTime != nil {
		changes["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		changes["end_time"] = *req.EndTime
	}
	if req.DurationMinutes != nil {
		changes["duration_minutes"] = *req.DurationMinutes
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if req.TicketUpdates != nil {
		changes["ticket_updates"] = *req.TicketUpdates
	}
	if req.AttentionNeeded != nil {
		changes["attention_needed"] = *req.AttentionNeeded
	}
	if req.CriticalIssue != nil {
		changes["critical_issue"] = *req.CriticalIssue
	}
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no changes"})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Re-fetch for the full entity to index (gorm Updates doesn't refresh
	// every field).
	if full, _ := h.svc.GetByID(c.Request.Context(), id); full != nil {
		h.search.IndexTicketAsync(full)
		h.producer.ProduceRecordEvent(c.Request.Context(), "ticket.updated", ticketEventPayload(full))
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) Archive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "ticket.archived", map[string]interface{}{"ticket_id": int64(id)})
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "ticket.deleted", map[string]interface{}{"ticket_id": int64(id)})
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
