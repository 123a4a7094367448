package appointment

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

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListAppointments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, AppointmentListResponse{
		Appointments: appointments,
		Count:        len(appointments),
	})
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	appointment, err := h.service.CreateAppointment(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, appointment)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.service.GetAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, appointment)
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req UpdateAppointmentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	appointment, err := h.service.UpdateAppointment(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, appointment)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.service.DeleteAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, appointment)
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
		respond.Error(w, http.StatusNotFound, "Appointment not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
