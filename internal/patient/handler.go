package patient

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

func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.ListPatients(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, PatientListResponse{
		Patients: patients,
		Count:    len(patients),
	})
}

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	patient, err := h.service.CreatePatient(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, patient)
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.service.GetPatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, patient)
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	var req UpdatePatientRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	patient, err := h.service.UpdatePatient(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, patient)
}

func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.service.DeletePatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, patient)
}

func writeError(w http.ResponseWriter, err error) {
	var missing *validation.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		respond.Error(w, http.StatusBadRequest, missing.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Patient not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
