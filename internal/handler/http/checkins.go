package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/utils"
	"github.com/MKhiriev/go-wellness/models"
)

func (h *Handler) createCheckIn(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateCheckInRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	checkIn, err := h.services.CheckInService.Create(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, checkIn, http.StatusCreated)
}

func (h *Handler) listCheckIns(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	checkIns, err := h.services.CheckInService.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if checkIns == nil {
		checkIns = []models.CheckIn{}
	}

	utils.WriteJSON(w, models.CheckInListResponse{
		Count:    len(checkIns),
		CheckIns: checkIns,
	}, http.StatusOK)
}

func (h *Handler) getCheckIn(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	checkInID, err := checkInIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	checkIn, err := h.services.CheckInService.Get(r.Context(), user.ID, checkInID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, checkIn, http.StatusOK)
}

func (h *Handler) deleteCheckIn(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	checkInID, err := checkInIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CheckInService.Delete(r.Context(), user.ID, checkInID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.services.StatsService.Stats(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// checkInIDParam parses the {id} URL parameter. An id that is not a number
// cannot name any check-in, so it is reported as not found.
func checkInIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, store.ErrCheckInNotFound
	}
	return id, nil
}
