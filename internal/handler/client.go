package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/levelup-marketers/client-dashboard-service/internal/errs"
	"github.com/levelup-marketers/client-dashboard-service/internal/kafka"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"github.com/levelup-marketers/client-dashboard-service/internal/service"
)

type ClientHandler struct {
	svc      service.ClientServicer
	producer kafka.RecordEventProducer
}

func NewClientHandler(svc service.ClientServicer, producer kafka.RecordEventProducer) *ClientHandler {
	return &ClientHandler{svc: svc, producer: producer}
}

type createClientRequest struct {
	UserID          uint64 `json:"user_id" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	CompanyName     string `json:"company_name" binding:"required"`
	MailingAddress1 string `json:"mailing_address1"`
	MailingAddress2 string `json:"mailing_address2"`
	MailingCity     string `json:"mailing_city"`
	MailingState    string `json:"mailing_state"`
	MailingPostcode string `json:"mailing_postcode"`
	MailingCountry  string `json:"mailing_country"`
	CompanyWebsite  string `json:"company_website"`
	ClientSince     string `json:"client_since"`
	AttentionNeeded string `json:"attention_needed"`
	CriticalIssue   string `json:"critical_issue"`
}

func clientEventPayload(c *model.Client) map[string]interface{} {
	return map[string]interface{}{
		"client_id":  int64(c.ID),
		"user_id":    int64(c.UserID),
		"email":      c.Email,
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"company":    c.CompanyName,
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	client := &model.Client{
		UserID:          req.UserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		CompanyName:     req.CompanyName,
		MailingAddress1: req.MailingAddress1,
		MailingAddress2: req.MailingAddress2,
		MailingCity:     req.MailingCity,
		MailingState:    req.MailingState,
		MailingPostcode: req.MailingPostcode,
		MailingCountry:  req.MailingCountry,
		CompanyWebsite:  req.CompanyWebsite,
		ClientSince:     req.ClientSince,
		AttentionNeeded: req.AttentionNeeded,
		CriticalIssue:   req.CriticalIssue,
	}
	if err := h.svc.Create(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "client.created", clientEventPayload(client))
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	filter := make(map[string]interface{})
	if v := c.Query("user_id"); v != "" {
		filter["user_id = ?"] = v
	}
	if v := c.Query("email"); v != "" {
		filter["email = ?"] = v
	}
	limit, offset := pagination(c)
	items, total, err := h.svc.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clients": items,
		"total":   total,
	})
}

type updateClientRequest struct {
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Email           *string `json:"email,omitempty"`
	MailingAddress1 *string `json:"mailing_address1,omitempty"`
	MailingAddress2 *string `json:"mailing_address2,omitempty"`
	MailingCity     *string `json:"mailing_city,omitempty"`
	MailingState    *string `json:"mailing_state,omitempty"`
	MailingPostcode *string `json:"mailing_postcode,omitempty"`
	MailingCountry  *string `json:"mailing_country,omitempty"`
	CompanyName     *string `json:"company_name,omitempty"`
	CompanyWebsite  *string `json:"company_website,omitempty"`
	AttentionNeeded *string `json:"attention_needed,omitempty"`
	CriticalIssue   *string `json:"critical_issue,omitempty"`
}

func (r *updateClientRequest) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	set := func(col string, v *string) {
		if v != nil {
			changes[col] = *v
		}
	}
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("email", r.Email)
	set("mailing_address1", r.MailingAddress1)
	set("mailing_address2", r.MailingAddress2)
	set("mailing_city", r.MailingCity)
	set("mailing_state", r.MailingState)
	set("mailing_postcode", r.MailingPostcode)
	set("mailing_country", r.MailingCountry)
	set("company_name", r.CompanyName)
	set("company_website", r.CompanyWebsite)
	set("attention_needed", r.AttentionNeeded)
	set("critical_issue", r.CriticalIssue)
	return changes
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	changes := req.changes()
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no changes"})
		return
	}
	client, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, errs.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "client.updated", clientEventPayload(client))
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Archive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "client.archived", map[string]interface{}{"client_id": int64(id)})
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "client.deleted", map[string]interface{}{"client_id": int64(id)})
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// pagination parses limit/offset query params; zero means unpaginated.
func pagination(c *gin.Context) (limit, offset int) {
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
