package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/utils"
	"github.com/MKhiriev/go-wellness/models"
)

type sessionResolver struct {
	tokens         TokenService
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewSessionResolver(tokens TokenService, userRepository store.UserRepository, logger *logger.Logger) SessionResolver {
	return &sessionResolver{
		tokens:         tokens,
		userRepository: userRepository,
		logger:         logger,
	}
}

// Resolve implements [SessionResolver].
//
// Failures, in the order they are checked:
//   - ErrMissingCredential: the header is absent or blank.
//   - ErrMalformedHeader: the header is not "Bearer <token>".
//   - ErrUnauthenticated: the token failed verification; the token error is
//     wrapped.
//   - ErrUnknownUser: the token's subject no longer exists.
//   - ErrAccountDisabled: the account was deactivated.
//
// Storage failures are returned wrapped and are none of the above.
func (s *sessionResolver) Resolve(ctx context.Context, authorizationHeader string) (models.User, error) {
	if strings.TrimSpace(authorizationHeader) == "" {
		return models.User{}, ErrMissingCredential
	}

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	userID, err := s.tokens.Verify(ctx, tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: id %d", ErrUnknownUser, userID)
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed during session resolution")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrAccountDisabled
	}

	return user, nil
}
