package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"finboard/internal/common"
	"finboard/internal/repositories"
)

// ErrInvalidCredentials signals a failed credential check. It is the only
// authentication failure surfaced to the caller; everything else propagates.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

type AuthService interface {
	// Authenticate verifies the submitted credentials and returns a signed
	// session token.
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	log       zerolog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, log zerolog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		log:       log,
	}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("database error fetching user")
		return "", common.NewFetchError("user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}
	return signed, nil
}
