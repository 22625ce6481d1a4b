package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/utils"
	"github.com/MKhiriev/go-wellness/models"
)

// tokenService issues HS256 session tokens and classifies verification
// failures into the three token errors of this package.
type tokenService struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService signing with cfg.TokenSignKey.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Issue implements [TokenService]. The token carries sub=userID, the
// configured issuer, iat=now and exp=now+duration.
func (s *tokenService) Issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify implements [TokenService]. The signature is checked before any
// claim, so a forged token is reported as ErrTokenInvalidSignature even when
// it is also expired. A wrong algorithm, issuer or subject is
// ErrTokenMalformed.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now())
	if err == nil {
		return token.UserID, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return 0, fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return 0, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
