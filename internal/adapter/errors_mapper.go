package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusServiceUnavailable:  ErrModelLoading,
}

// backendError is the error envelope inference backends answer with,
// e.g. {"error":"Model gpt2 is currently loading","estimated_time":20}.
type backendError struct {
	Error string `json:"error"`
}

// mapHTTPError turns a non-2xx response into one of the package sentinels.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := backendReason(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}
	if reason == "" {
		reason = http.StatusText(status)
	}
	return fmt.Errorf("%w: http %d: %s", ErrGeneratorUnavailable, status, reason)
}

func backendReason(body []byte) string {
	var envelope backendError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}
