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

type ProjectHandler struct {
	svc      service.ProjectServicer
	producer kafka.RecordEventProducer
}

func NewProjectHandler(svc service.ProjectServicer, producer kafka.RecordEventProducer) *ProjectHandler {
	return &ProjectHandler{svc: svc, producer: producer}
}

type createProjectRequest struct {
	ClientID           uint64  `json:"client_id" binding:"required"`
	ProjectName        string  `json:"project_name" binding:"required"`
	ProjectType        string  `json:"project_type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Status             string  `json:"status"`
	DevLink            string  `json:"dev_link"`
	LiveLink           string  `json:"live_link"`
	GDriveLink         string  `json:"gdrive_link"`
	TotalOneTimeCost   float64 `json:"total_one_time_cost"`
	MRR                float64 `json:"mrr"`
	ARR                float64 `json:"arr"`
	MonthlySupportTime float64 `json:"monthly_support_time"`
	Description        string  `json:"description"`
	ProjectUpdates     string  `json:"project_updates"`
	AttentionNeeded    string  `json:"attention_needed"`
	CriticalIssue      string  `json:"critical_issue"`
}

func projectEventPayload(p *model.Project) map[string]interface{} {
	return map[string]interface{}{
		"project_id":   int64(p.ID),
		"client_id":    int64(p.ClientID),
		"project_name": p.ProjectName,
		"status":       p.Status,
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	project := &model.Project{
		ClientID:           req.ClientID,
		ProjectName:        req.ProjectName,
		ProjectType:        req.ProjectType,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             req.Status,
		DevLink:            req.DevLink,
		LiveLink:           req.LiveLink,
		GDriveLink:         req.GDriveLink,
		TotalOneTimeCost:   req.TotalOneTimeCost,
		MRR:                req.MRR,
		ARR:                req.ARR,
		MonthlySupportTime: req.MonthlySupportTime,
		Description:        req.Description,
		ProjectUpdates:     req.ProjectUpdates,
		AttentionNeeded:    req.AttentionNeeded,
		CriticalIssue:      req.CriticalIssue,
	}
	if err := h.svc.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "project.created", projectEventPayload(project))
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects": items,
		"total":    total,
	})
}

type updateProjectRequest struct {
	ProjectName        *string  `json:"project_name,omitempty"`
	ProjectType        *string  `json:"project_type,omitempty"`
	StartDate          *string  `json:"start_date,omitempty"`
	EndDate            *string  `json:"end_date,omitempty"`
	Status             *string  `json:"status,omitempty"`
	DevLink            *string  `json:"dev_link,omitempty"`
	LiveLink           *string  `json:"live_link,omitempty"`
	GDriveLink         *string  `json:"gdrive_link,omitempty"`
	TotalOneTimeCost   *float64 `json:"total_one_time_cost,omitempty"`
	MRR                *float64 `json:"mrr,omitempty"`
	ARR                *float64 `json:"arr,omitempty"`
	MonthlySupportTime *float64 `json:"monthly_support_time,omitempty"`
	Description        *string  `json:"description,omitempty"`
	ProjectUpdates     *string  `json:"project_updates,omitempty"`
	AttentionNeeded    *string  `json:"attention_needed,omitempty"`
	CriticalIssue      *string  `json:"critical_issue,omitempty"`
}

func (r *updateProjectRequest) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	setS := func(col string, v *string) {
		if v != nil {
			changes[col] = *v
		}
	}
	setF := func(col string, v *float64) {
		if v != nil {
			changes[col] = *v
		}
	}
	setS("project_name", r.ProjectName)
	setS("project_type", r.ProjectType)
	setS("start_date", r.StartDate)
	setS("end_date", r.EndDate)
	setS("status", r.Status)
	setS("dev_link", r.DevLink)
	setS("live_link", r.LiveLink)
	setS("gdrive_link", r.GDriveLink)
	setF("total_one_time_cost", r.TotalOneTimeCost)
	setF("mrr", r.MRR)
	setF("arr", r.ARR)
	setF("monthly_support_time", r.MonthlySupportTime)
	setS("description", r.Description)
	setS("project_updates", r.ProjectUpdates)
	setS("attention_needed", r.AttentionNeeded)
	setS("critical_issue", r.CriticalIssue)
	return changes
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	changes := req.changes()
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no changes"})
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "project.updated", projectEventPayload(p))
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Archive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "project.archived", map[string]interface{}{"project_id": int64(id)})
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.producer.ProduceRecordEvent(c.Request.Context(), "project.deleted", map[string]interface{}{"project_id": int64(id)})
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
