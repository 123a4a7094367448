package consultation

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/reference"
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

func (h *Handler) ListConsultations(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.service.ListConsultations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, ConsultationListResponse{
		Consultations: consultations,
		Count:         len(consultations),
	})
}

func (h *Handler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req CreateConsultationRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	consultation, err := h.service.CreateConsultation(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, consultation)
}

func (h *Handler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	consultation, err := h.service.GetConsultation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, consultation)
}

func (h *Handler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	var req UpdateConsultationRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	consultation, err := h.service.UpdateConsultation(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, consultation)
}

func (h *Handler) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	consultation, err := h.service.DeleteConsultation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, consultation)
}

func writeError(w http.ResponseWriter, err error) {
	var missing *validation.MissingFieldsError
	var invalid *validation.InvalidValueError
	switch {
	case errors.As(err, &missing):
		respond.Error(w, http.StatusBadRequest, missing.Error())
	case errors.As(err, &invalid):
		respond.Error(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, reference.ErrReferenceNotFound):
		respond.Error(w, http.StatusNotFound, "Patient or doctor not found")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Consultation not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
