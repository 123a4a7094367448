package http

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/consultation"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/dashboard"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/history"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/respond"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const serviceName = "clinic-office-service"

// Handlers groups the resource handlers mounted under /api.
type Handlers struct {
	Patients      *patient.Handler
	Doctors       *doctor.Handler
	Appointments  *appointment.Handler
	History       *history.Handler
	Consultations *consultation.Handler
	Dashboard     *dashboard.Handler
}

type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	PingMessage    string
	// Metrics may be nil.
	Metrics RequestRecorder
}

// SetupRouter initializes all routes for the application and wraps them in
// the global middleware chain.
func SetupRouter(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Use(otelmux.Middleware(serviceName))
	if opts.Metrics != nil {
		r.Use(MetricsMiddleware(opts.Metrics))
	}

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	}).Methods(http.MethodGet)

	// Routes hang directly off r so method mismatches reach
	// MethodNotAllowedHandler.
	api := route{r: r, prefix: "/api"}

	ping := opts.PingMessage
	if ping == "" {
		ping = "ping"
	}
	api.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"message": ping})
	}).Methods(http.MethodGet)

	api.HandleFunc("/dashboard", h.Dashboard.GetSummary).Methods(http.MethodGet)

	// Patient routes
	api.HandleFunc("/patients", h.Patients.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", h.Patients.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", h.Patients.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", h.Patients.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", h.Patients.DeletePatient).Methods(http.MethodDelete)

	// Doctor routes (read-only); specialty routes go first so "specialty" is
	// not taken as an id.
	api.HandleFunc("/doctors", h.Doctors.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialty", h.Doctors.ListBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialty/{specialty}", h.Doctors.ListBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", h.Doctors.GetDoctor).Methods(http.MethodGet)

	// Appointment routes
	api.HandleFunc("/appointments", h.Appointments.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.Appointments.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", h.Appointments.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", h.Appointments.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", h.Appointments.DeleteAppointment).Methods(http.MethodDelete)

	// Clinical history routes (append-only)
	api.HandleFunc("/history", h.History.ListEntries).Methods(http.MethodGet)
	api.HandleFunc("/history", h.History.CreateEntry).Methods(http.MethodPost)
	api.HandleFunc("/history/patient/{patientId}", h.History.ListByPatient).Methods(http.MethodGet)

	// Quick consultation routes
	api.HandleFunc("/consultations", h.Consultations.ListConsultations).Methods(http.MethodGet)
	api.HandleFunc("/consultations", h.Consultations.CreateConsultation).Methods(http.MethodPost)
	api.HandleFunc("/consultations/{id}", h.Consultations.GetConsultation).Methods(http.MethodGet)
	api.HandleFunc("/consultations/{id}", h.Consultations.UpdateConsultation).Methods(http.MethodPut)
	api.HandleFunc("/consultations/{id}", h.Consultations.DeleteConsultation).Methods(http.MethodDelete)

	return withGlobalMiddleware(r, opts)
}

// withGlobalMiddleware wraps h, innermost first, in CORS, panic recovery,
// request logging and request ids. CORS sits outside the router so preflight
// requests never reach route matching.
func withGlobalMiddleware(h http.Handler, opts Options) http.Handler {
	h = CORSMiddleware(opts.AllowedOrigins)(h)
	h = RecoveryMiddleware(opts.Logger)(h)
	h = LoggingMiddleware(opts.Logger)(h)
	h = RequestIDMiddleware(h)
	return h
}

// route registers paths on a router under a fixed prefix.
type route struct {
	r      *mux.Router
	prefix string
}

func (rt route) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return rt.r.HandleFunc(rt.prefix+path, f)
}
