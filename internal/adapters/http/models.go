package http

import "github.com/ValenGrassi/cinerack/internal/domain/models"

// ProblemDetails represents an error response following RFC 7807
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// ReplaceComponentsRequest carries a full replacement component list
type ReplaceComponentsRequest struct {
	Components []models.EquipmentRecord `json:"rackComponents" binding:"required"`
}

// HealthResponse reports service and storage health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
