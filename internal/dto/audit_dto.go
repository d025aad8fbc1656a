package dto

import (
	"time"

	"github.com/izakod/asn-api/internal/models"
)

// AuditListRequest narrows the admin audit log listing.
type AuditListRequest struct {
	Page       int    `query:"page" validate:"gte=0"`
	PageSize   int    `query:"page_size" validate:"gte=0,lte=100"`
	ActorID    *uint  `query:"actor_id"`
	Action     string `query:"action"`
	EntityType string `query:"entity_type"`
}

// AuditResponse serializes one audit trail entry.
type AuditResponse struct {
	ID         uint                   `json:"id"`
	ActorID    uint                   `json:"actor_id"`
	ActorRole  string                 `json:"actor_role"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   *uint                  `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
}

// AuditListResponse wraps a page of audit entries.
type AuditListResponse struct {
	Entries []AuditResponse `json:"entries"`
	Total   int64           `json:"total"`
}

// NewAuditResponse converts an AuditLog model into a DTO.
func NewAuditResponse(model models.AuditLog) AuditResponse {
	return AuditResponse{
		ID:         model.ID,
		ActorID:    model.ActorID,
		ActorRole:  model.ActorRole,
		Action:     model.Action,
		EntityType: model.EntityType,
		EntityID:   model.EntityID,
		Metadata:   model.Metadata,
		CreatedAt:  model.CreatedAt,
	}
}
