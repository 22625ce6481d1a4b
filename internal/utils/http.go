package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-wellness/internal/app"
	"github.com/MKhiriev/go-wellness/models"
)

const contentTypeJSON = "application/json"

// WriteJSON encodes data as the JSON body of a response with statusCode
// and returns the number of body bytes written.
//
// Encoding happens before any header is sent. When data cannot be
// encoded the client gets a 500 with a generic detail instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		writeRaw(w, []byte(`{"detail":"`+app.MsgInternalServerError+`"}`), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeRaw(w, body, statusCode)
}

// WriteError writes {"detail": detail} with statusCode.
func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

// WriteNoContent answers 204 with an empty body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeRaw(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	return w.Write(body)
}
