package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-parser-api/internal/shared/server/middleware"
	"resume-parser-api/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.remove)
	rg.POST("/resumes/:id/match", h.match)
	rg.GET("/resumes/:id/classification", h.classification)
	rg.GET("/resumes/:id/bias", h.biasReport)
	rg.GET("/resumes/:id/anonymized", h.anonymized)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	c.Set("resumeId", resume.ID)
	c.Set("statusTransition", "pending->"+string(resume.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(resume, true))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume, true))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.respondError(c, err, "failed to list resumes")
		return
	}

	resp := make([]ResumeResponse, 0, len(items))
	for _, resume := range items {
		resp = append(resp, toResponse(resume, false))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete resume")
		return
	}

	c.Status(http.StatusNoContent)
}

type matchRequest struct {
	JobDescription string `json:"job_description"`
}

func (h *Handler) match(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Match(c.Request.Context(), userID, c.Param("id"), req.JobDescription)
	if err != nil {
		h.respondError(c, err, "failed to score resume")
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) classification(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	enrichment, err := h.Svc.Enrichment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to classify resume")
		return
	}

	respond.JSON(c, http.StatusOK, enrichment)
}

func (h *Handler) biasReport(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	detection, err := h.Svc.BiasReport(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to analyze resume")
		return
	}

	respond.JSON(c, http.StatusOK, detection)
}

func (h *Handler) anonymized(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	version, err := h.Svc.Anonymized(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to anonymize resume")
		return
	}

	respond.JSON(c, http.StatusOK, version)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNotParsed):
		respond.Error(c, http.StatusConflict, "not_parsed", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
