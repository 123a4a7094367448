// Package reference resolves the patient and doctor a dependent record points
// at and produces the display names copied into it.
package reference

import (
	"context"
	"errors"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/patient"
)

// ErrReferenceNotFound is returned when either referenced record is missing.
var ErrReferenceNotFound = errors.New("patient or doctor not found")

type PatientGetter interface {
	GetPatient(ctx context.Context, id string) (*patient.Patient, error)
}

type DoctorGetter interface {
	GetDoctor(ctx context.Context, id string) (*doctor.Doctor, error)
}

// Names is a snapshot taken at creation time. It is never refreshed when the
// source patient or doctor changes later.
type Names struct {
	PatientName string
	DoctorName  string
}

type Resolver struct {
	patients PatientGetter
	doctors  DoctorGetter
}

func NewResolver(patients PatientGetter, doctors DoctorGetter) *Resolver {
	return &Resolver{patients: patients, doctors: doctors}
}

// Resolve looks up both ids. Any lookup failure other than a missing record
// is returned as is.
func (r *Resolver) Resolve(ctx context.Context, patientID, doctorID string) (Names, error) {
	p, err := r.patients.GetPatient(ctx, patientID)
	if err != nil {
		return Names{}, classify(err)
	}
	d, err := r.doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		return Names{}, classify(err)
	}

	return Names{
		PatientName: p.FullName(),
		DoctorName:  d.DisplayName(),
	}, nil
}

// PatientName returns the full name of the patient, or false when no patient
// has the id.
func (r *Resolver) PatientName(ctx context.Context, patientID string) (string, bool) {
	p, err := r.patients.GetPatient(ctx, patientID)
	if err != nil {
		return "", false
	}
	return p.FullName(), true
}

func classify(err error) error {
	if errors.Is(err, patient.ErrNotFound) || errors.Is(err, doctor.ErrNotFound) {
		return ErrReferenceNotFound
	}
	return err
}
