package http

import (
	"net/http"

	"github.com/MKhiriev/go-wellness/internal/utils"
)

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Info(r.Context()), http.StatusOK)
}

// health always answers 200; a failing database shows up in the status
// field only.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
