package dashboard

import (
	"context"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/respond"
)

type SummaryProvider interface {
	Summary(ctx context.Context) (*Summary, error)
}

type Handler struct {
	service SummaryProvider
}

func NewHandler(service SummaryProvider) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}
