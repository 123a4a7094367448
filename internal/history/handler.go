package history

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/respond"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListEntries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, HistoryListResponse{History: entries, Count: len(entries)})
}

func (h *Handler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListByPatient(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, HistoryListResponse{History: entries, Count: len(entries)})
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	entry, err := h.service.CreateEntry(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, entry)
}

func writeError(w http.ResponseWriter, err error) {
	var missing *validation.MissingFieldsError
	if errors.As(err, &missing) {
		respond.Error(w, http.StatusBadRequest, missing.Error())
		return
	}
	respond.Error(w, http.StatusInternalServerError, "internal server error")
}
