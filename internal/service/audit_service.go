package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
)

// AuditEntry captures the details required to persist an audit trail event.
type AuditEntry struct {
	ActorID    uint
	ActorRole  string
	Action     string
	EntityType string
	EntityID   *uint
	Metadata   map[string]interface{}
}

// AuditRecorder defines behaviour for recording audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// AuditService exposes methods to persist and query the audit trail.
type AuditService interface {
	AuditRecorder
	List(ctx context.Context, session Session, req dto.AuditListRequest) (dto.AuditListResponse, error)
}

type auditService struct {
	repo   repository.AuditLogRepository
	logger zerolog.Logger
}

// NewAuditService constructs the audit trail service.
func NewAuditService(repo repository.AuditLogRepository, logger zerolog.Logger) AuditService {
	return &auditService{
		repo:   repo,
		logger: logger.With().Str("component", "audit_service").Logger(),
	}
}

func (s *auditService) Record(ctx context.Context, entry AuditEntry) error {
	if strings.TrimSpace(entry.Action) == "" {
		return fmt.Errorf("action is required")
	}
	if strings.TrimSpace(entry.EntityType) == "" {
		return fmt.Errorf("entity type is required")
	}

	model := models.AuditLog{
		ActorID:    entry.ActorID,
		ActorRole:  strings.ToLower(strings.TrimSpace(entry.ActorRole)),
		Action:     strings.ToLower(strings.TrimSpace(entry.Action)),
		EntityType: strings.ToLower(strings.TrimSpace(entry.EntityType)),
		EntityID:   entry.EntityID,
		Metadata:   entry.Metadata,
	}

	if err := s.repo.Create(ctx, &model); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist audit entry")
		return err
	}

	return nil
}

func (s *auditService) List(ctx context.Context, session Session, req dto.AuditListRequest) (dto.AuditListResponse, error) {
	if !session.IsAdmin() {
		return dto.AuditListResponse{}, ErrNotAuthorized
	}

	filter := repository.AuditLogFilter{
		Page:       req.Page,
		PageSize:   req.PageSize,
		ActorID:    req.ActorID,
		Action:     strings.ToLower(strings.TrimSpace(req.Action)),
		EntityType: strings.ToLower(strings.TrimSpace(req.EntityType)),
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.AuditListResponse{}, err
	}

	responses := make([]dto.AuditResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewAuditResponse(entry))
	}

	return dto.AuditListResponse{Entries: responses, Total: total}, nil
}
