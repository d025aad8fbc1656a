package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/repository"
)

var bulanRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// StatistikService produces monthly report aggregates per employee.
type StatistikService interface {
	Bulanan(ctx context.Context, session Session, pegawaiID uint, bulan string) (dto.StatistikBulananResponse, error)
}

type statistikService struct {
	statistik repository.StatistikRepository
	pegawai   repository.PegawaiRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStatistikService builds the statistics aggregator.
func NewStatistikService(statistikRepo repository.StatistikRepository, pegawaiRepo repository.PegawaiRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) StatistikService {
	return &statistikService{
		statistik: statistikRepo,
		pegawai:   pegawaiRepo,
		cache:     cache,
		cacheTTL:  ttl,
		logger:    logger.With().Str("component", "statistik_service").Logger(),
		now:       time.Now,
	}
}

func (s *statistikService) Bulanan(ctx context.Context, session Session, pegawaiID uint, bulan string) (dto.StatistikBulananResponse, error) {
	if pegawaiID == 0 {
		pegawaiID = session.PegawaiID
	}
	if bulan == "" {
		bulan = s.now().Format("2006-01")
	}
	if !bulanRe.MatchString(bulan) {
		return dto.StatistikBulananResponse{}, NewValidationError(map[string]string{"bulan": "format bulan harus YYYY-MM"})
	}

	if err := s.authorize(ctx, session, pegawaiID); err != nil {
		return dto.StatistikBulananResponse{}, err
	}

	cacheKey := fmt.Sprintf("statistik:bulanan:%d:%s", pegawaiID, bulan)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.StatistikBulananResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("pegawai_id", pegawaiID).Str("bulan", bulan).Msg("statistik cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read statistik cache")
		}
	}

	stats, err := s.statistik.Bulanan(ctx, pegawaiID, bulan)
	if err != nil {
		return dto.StatistikBulananResponse{}, err
	}

	response := dto.NewStatistikBulananResponse(stats)

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store statistik cache")
			}
		}
	}

	return response, nil
}

func (s *statistikService) authorize(ctx context.Context, session Session, pegawaiID uint) error {
	if pegawaiID == session.PegawaiID || session.IsAdmin() {
		return nil
	}

	owner, err := s.pegawai.GetByID(ctx, pegawaiID)
	if err != nil {
		return err
	}

	allowed, err := isAtasanOf(ctx, s.pegawai, session, owner, s.now())
	if err != nil {
		return err
	}
	if !allowed {
		return ErrNotAuthorized
	}

	return nil
}
