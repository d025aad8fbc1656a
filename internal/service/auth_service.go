package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/repository"
)

// ErrLoginGagal indicates the NIP/PIN pair did not match an active account.
var ErrLoginGagal = errors.New("nip atau pin salah")

// ErrPegawaiNotFound indicates an employee record could not be found.
var ErrPegawaiNotFound = errors.New("pegawai not found")

// AuthService authenticates employees and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
	RegisterDevice(ctx context.Context, session Session, payload dto.DeviceTokenRequest) error
	Logout(ctx context.Context, session Session) error
}

type authService struct {
	pegawai   repository.PegawaiRepository
	validator *validator.Validate
	secret    string
	expiry    time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(pegawaiRepo repository.PegawaiRepository, validate *validator.Validate, secret string, expiry time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		pegawai:   pegawaiRepo,
		validator: validate,
		secret:    secret,
		expiry:    expiry,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	pegawai, err := s.pegawai.GetByNIP(ctx, payload.NIP)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrLoginGagal
		}
		return dto.LoginResponse{}, err
	}

	if !pegawai.Aktif {
		return dto.LoginResponse{}, ErrLoginGagal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pegawai.PINHash), []byte(payload.PIN)); err != nil {
		return dto.LoginResponse{}, ErrLoginGagal
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":     pegawai.ID,
		"nip":     pegawai.NIP,
		"role":    pegawai.Role,
		"unit_id": pegawai.UnitID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiry).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Str("nip", pegawai.NIP).Msg("login succeeded")

	return dto.LoginResponse{
		Token:   token,
		Pegawai: dto.NewPegawaiResponse(pegawai),
	}, nil
}

func (s *authService) RegisterDevice(ctx context.Context, session Session, payload dto.DeviceTokenRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	return s.pegawai.UpdateDeviceToken(ctx, session.PegawaiID, payload.Token)
}

// Logout clears the registered device token. Token invalidation itself is
// client-side: tokens are short-lived and never stored server-side.
func (s *authService) Logout(ctx context.Context, session Session) error {
	return s.pegawai.UpdateDeviceToken(ctx, session.PegawaiID, "")
}
