package doctor

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/respond"
	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.ListDoctors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, DoctorListResponse{Doctors: doctors, Count: len(doctors)})
}

func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.service.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, doctor)
}

// ListBySpecialty reads the term from the specialty query parameter and falls
// back to the path segment.
func (h *Handler) ListBySpecialty(w http.ResponseWriter, r *http.Request) {
	term, ok := r.URL.Query()["specialty"]
	specialty := mux.Vars(r)["specialty"]
	if ok && len(term) > 0 {
		specialty = term[0]
	}

	doctors, err := h.service.ListBySpecialty(r.Context(), specialty)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, DoctorListResponse{Doctors: doctors, Count: len(doctors)})
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Doctor not found")
		return
	}
	respond.Error(w, http.StatusInternalServerError, "internal server error")
}
