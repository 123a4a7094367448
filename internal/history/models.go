package history

import (
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

// UnknownDoctor is recorded when an entry is created without a doctor name.
const UnknownDoctor = "Dr. Unknown"

// Entry is one record of a patient's clinical history. Entries are
// append-only and only loosely linked to the patient.
type Entry struct {
	store.Meta
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName"`
	Date        time.Time `json:"date"`
	Diagnosis   string    `json:"diagnosis"`
	Treatment   string    `json:"treatment"`
	Notes       string    `json:"notes"`
	DoctorName  string    `json:"doctorName"`
}

type CreateEntryRequest struct {
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	Diagnosis   string `json:"diagnosis"`
	Treatment   string `json:"treatment"`
	Notes       string `json:"notes"`
	DoctorName  string `json:"doctorName"`
}

type HistoryListResponse struct {
	History []Entry `json:"history"`
	Count   int     `json:"count"`
}
