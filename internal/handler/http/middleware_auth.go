package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wellness/internal/app"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/service"
	"github.com/MKhiriev/go-wellness/internal/utils"
)

// Reasons recorded by the auth failure counter.
const (
	authFailureMissing   = "missing"
	authFailureMalformed = "malformed"
	authFailureExpired   = "expired"
	authFailureSignature = "invalid_signature"
	authFailureInvalid   = "invalid"
	authFailureUnknown   = "unknown_user"
	authFailureDisabled  = "disabled"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The "Authorization" header is resolved to an active user by
// [service.SessionResolver]. On success the user is stored in the request
// context with [utils.WithUser]. Every authentication failure is answered
// with 401, a generic body and a "WWW-Authenticate: Bearer" challenge; a
// storage failure during resolution is a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, err := h.services.SessionResolver.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			reason, ok := authFailureReason(err)
			if !ok {
				writeError(w, r, err)
				return
			}

			log.Debug().Err(err).Str("reason", reason).Msg("request is not authenticated")
			h.metrics.ObserveAuthFailure(reason)

			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.WriteError(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// authFailureReason classifies a session resolution error. ok is false for
// errors that are not authentication failures.
func authFailureReason(err error) (reason string, ok bool) {
	switch {
	case errors.Is(err, service.ErrMissingCredential):
		return authFailureMissing, true
	case errors.Is(err, service.ErrMalformedHeader):
		return authFailureMalformed, true
	case errors.Is(err, service.ErrTokenExpired):
		return authFailureExpired, true
	case errors.Is(err, service.ErrTokenInvalidSignature):
		return authFailureSignature, true
	case errors.Is(err, service.ErrUnauthenticated):
		return authFailureInvalid, true
	case errors.Is(err, service.ErrUnknownUser):
		return authFailureUnknown, true
	case errors.Is(err, service.ErrAccountDisabled):
		return authFailureDisabled, true
	default:
		return "", false
	}
}
