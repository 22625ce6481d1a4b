package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wellness/internal/app"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/service"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/utils"
)

type errorResponse struct {
	status int
	// detail is the body sent to the client; empty means the error text.
	detail string
}

// errorStatuses is checked in order; the first target err wraps wins.
var errorStatuses = []struct {
	target error
	resp   errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, ""}},
	{ErrInvalidLimit, errorResponse{http.StatusUnprocessableEntity, ""}},
	{service.ErrValidation, errorResponse{http.StatusUnprocessableEntity, ""}},

	{ErrNoUserInContext, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{service.ErrUnknownUser, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{service.ErrMissingCredential, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{service.ErrMalformedHeader, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},

	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrAccountDisabled, errorResponse{http.StatusForbidden, app.MsgAccountDisabled}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyRegistered}},
	{store.ErrCheckInNotFound, errorResponse{http.StatusNotFound, app.MsgCheckInNotFound}},
}

// responseFromError resolves err to a status code and a client-facing
// detail. Unknown errors become 500 without leaking their text.
func responseFromError(err error) (int, string) {
	for _, entry := range errorStatuses {
		if !errors.Is(err, entry.target) {
			continue
		}
		if entry.resp.detail == "" {
			return entry.resp.status, err.Error()
		}
		return entry.resp.status, entry.resp.detail
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, detail, status)
}
