package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
	"github.com/ValenGrassi/cinerack/internal/domain/service"
)

// maxSpreadsheetBytes caps uploaded workbook size
const maxSpreadsheetBytes = 10 << 20 // 10MB

// Handler handles HTTP requests for the rack service
type Handler struct {
	rackService ports.RackService
	healthCheck func() error
}

// NewHandler creates a new HTTP handler. healthCheck probes the storage
// backend; pass nil when no backend check applies.
func NewHandler(rackService ports.RackService, healthCheck func() error) *Handler {
	return &Handler{
		rackService: rackService,
		healthCheck: healthCheck,
	}
}

// ListCinemas handles GET /api/cinemas
func (h *Handler) ListCinemas(c *gin.Context) {
	cinemas, err := h.rackService.ListCinemas(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list cinemas")
		return
	}
	c.JSON(http.StatusOK, cinemas)
}

// GetCinema handles GET /api/cinemas/:id
func (h *Handler) GetCinema(c *gin.Context) {
	cinema, err := h.rackService.GetCinema(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrCinemaNotFound) {
			h.notFound(c, "Cinema not found")
			return
		}
		h.internalError(c, "Failed to get cinema")
		return
	}
	c.JSON(http.StatusOK, cinema)
}

// GetRackMetrics handles GET /api/cinemas/:id/metrics
func (h *Handler) GetRackMetrics(c *gin.Context) {
	metrics, err := h.rackService.GetRackMetrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrCinemaNotFound) {
			h.notFound(c, "Cinema not found")
			return
		}
		h.internalError(c, "Failed to compute rack metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// ReplaceComponents handles PUT /api/cinemas/:id/components
func (h *Handler) ReplaceComponents(c *gin.Context) {
	var req ReplaceComponentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	cinema, err := h.rackService.ReplaceComponents(c.Request.Context(), c.Param("id"), req.Components)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCinemaNotFound):
			h.notFound(c, "Cinema not found")
		case errors.Is(err, models.ErrInvalidKind), errors.Is(err, models.ErrInvalidStatus):
			h.badRequest(c, err.Error())
		default:
			h.internalError(c, "Failed to replace components")
		}
		return
	}
	c.JSON(http.StatusOK, cinema)
}

// UpdateComponent handles PATCH /api/cinemas/:id/components/:componentId
func (h *Handler) UpdateComponent(c *gin.Context) {
	var component models.EquipmentRecord
	if err := c.ShouldBindJSON(&component); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	component.ID = c.Param("componentId")

	cinema, err := h.rackService.UpdateComponent(c.Request.Context(), c.Param("id"), component)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCinemaNotFound):
			h.notFound(c, "Cinema not found")
		case errors.Is(err, service.ErrComponentNotFound):
			h.notFound(c, "Component not found")
		case errors.Is(err, models.ErrInvalidKind), errors.Is(err, models.ErrInvalidStatus):
			h.badRequest(c, err.Error())
		default:
			h.internalError(c, "Failed to update component")
		}
		return
	}
	c.JSON(http.StatusOK, cinema)
}

// RemoveComponent handles DELETE /api/cinemas/:id/components/:componentId
func (h *Handler) RemoveComponent(c *gin.Context) {
	cinema, err := h.rackService.RemoveComponent(c.Request.Context(), c.Param("id"), c.Param("componentId"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCinemaNotFound):
			h.notFound(c, "Cinema not found")
		case errors.Is(err, service.ErrComponentNotFound):
			h.notFound(c, "Component not found")
		default:
			h.internalError(c, "Failed to remove component")
		}
		return
	}
	c.JSON(http.StatusOK, cinema)
}

// DeleteCinema handles DELETE /api/cinemas/:id
func (h *Handler) DeleteCinema(c *gin.Context) {
	if err := h.rackService.DeleteCinema(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrCinemaNotFound) {
			h.notFound(c, "Cinema not found")
			return
		}
		h.internalError(c, "Failed to delete cinema")
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportSpreadsheet handles POST /api/cinemas/import (multipart upload)
func (h *Handler) ImportSpreadsheet(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.badRequest(c, "Form field 'file' is required")
		return
	}
	if fileHeader.Size > maxSpreadsheetBytes {
		h.badRequest(c, "Spreadsheet exceeds the 10MB upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.internalError(c, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.rackService.ImportSpreadsheet(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, service.ErrEmptySpreadsheet) {
			h.badRequest(c, "Spreadsheet does not name a cinema")
			return
		}
		c.JSON(http.StatusUnprocessableEntity, ProblemDetails{
			Type:   "about:blank",
			Title:  "Unprocessable Entity",
			Status: http.StatusUnprocessableEntity,
			Detail: "Failed to decode spreadsheet: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListAuditLog handles GET /api/cinemas/:id/audit
func (h *Handler) ListAuditLog(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.rackService.ListAuditLog(c.Request.Context(), c.Param("id"), offset, limit)
	if err != nil {
		h.internalError(c, "Failed to list audit log")
		return
	}
	if entries == nil {
		entries = []*models.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "ok"}

	if h.healthCheck != nil {
		if err := h.healthCheck(); err != nil {
			resp.Status = "degraded"
			resp.Database = err.Error()
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:   "about:blank",
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	})
}

func (h *Handler) notFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, ProblemDetails{
		Type:   "about:blank",
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: detail,
	})
}

func (h *Handler) internalError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:   "about:blank",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detail,
	})
}
