// Package seed loads the demo fixture the service starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/consultation"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/history"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// Offset is a duration relative to the seeding time, written in YAML as a Go
// duration string such as "48h" or "-2h".
type Offset time.Duration

func (o Offset) MarshalYAML() (interface{}, error) {
	return time.Duration(o).String(), nil
}

func (o *Offset) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid offset %q: %w", value.Line, raw, err)
	}
	*o = Offset(d)
	return nil
}

type Patient struct {
	FirstName   string `yaml:"firstName"`
	LastName    string `yaml:"lastName"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	DateOfBirth string `yaml:"dateOfBirth,omitempty"`
	Gender      string `yaml:"gender,omitempty"`
	Address     string `yaml:"address,omitempty"`
	MedicalID   string `yaml:"medicalId,omitempty"`
}

type Doctor struct {
	FirstName         string `yaml:"firstName"`
	LastName          string `yaml:"lastName"`
	Email             string `yaml:"email"`
	Specialty         string `yaml:"specialty"`
	Phone             string `yaml:"phone"`
	LicenseNumber     string `yaml:"licenseNumber"`
	YearsOfExperience int    `yaml:"yearsOfExperience"`
}

type Appointment struct {
	PatientID   string `yaml:"patientId"`
	DoctorID    string `yaml:"doctorId"`
	PatientName string `yaml:"patientName"`
	DoctorName  string `yaml:"doctorName"`
	Offset      Offset `yaml:"offset"`
	Reason      string `yaml:"reason"`
	Status      string `yaml:"status"`
	Notes       string `yaml:"notes,omitempty"`
}

type HistoryEntry struct {
	PatientID   string `yaml:"patientId"`
	PatientName string `yaml:"patientName"`
	Offset      Offset `yaml:"offset"`
	Diagnosis   string `yaml:"diagnosis"`
	Treatment   string `yaml:"treatment"`
	Notes       string `yaml:"notes"`
	DoctorName  string `yaml:"doctorName"`
}

type Consultation struct {
	PatientID   string `yaml:"patientId"`
	DoctorID    string `yaml:"doctorId"`
	PatientName string `yaml:"patientName"`
	DoctorName  string `yaml:"doctorName"`
	Offset      Offset `yaml:"offset"`
	Notes       string `yaml:"notes"`
	Status      string `yaml:"status"`
}

// Fixture is the full seed document.
type Fixture struct {
	Patients      []Patient      `yaml:"patients"`
	Doctors       []Doctor       `yaml:"doctors"`
	Appointments  []Appointment  `yaml:"appointments"`
	History       []HistoryEntry `yaml:"history"`
	Consultations []Consultation `yaml:"consultations"`
}

// Load parses the fixture at path, or the embedded default when path is empty.
func Load(path string) (*Fixture, error) {
	data := defaultFixture
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks status values, which the API would reject on update.
func (f *Fixture) Validate() error {
	for i, a := range f.Appointments {
		if err := validation.OneOf("status", a.Status, appointment.Statuses...); err != nil {
			return fmt.Errorf("appointments[%d]: %w", i, err)
		}
	}
	for i, c := range f.Consultations {
		if err := validation.OneOf("status", c.Status, consultation.Statuses...); err != nil {
			return fmt.Errorf("consultations[%d]: %w", i, err)
		}
	}
	return nil
}

// Marshal renders the fixture back to YAML.
func (f *Fixture) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Targets are the repositories the fixture is written into.
type Targets struct {
	Patients      interface{ CreatePatient(context.Context, patient.Patient) (*patient.Patient, error) }
	Doctors       interface{ CreateDoctor(context.Context, doctor.Doctor) (*doctor.Doctor, error) }
	Appointments  interface{ CreateAppointment(context.Context, appointment.Appointment) (*appointment.Appointment, error) }
	History       interface{ CreateEntry(context.Context, history.Entry) (*history.Entry, error) }
	Consultations interface{ CreateConsultation(context.Context, consultation.Consultation) (*consultation.Consultation, error) }
}

// Apply appends every fixture record to the targets in document order, so
// the n-th record of each kind gets id n in an empty store. Offsets are
// resolved against now.
func (f *Fixture) Apply(ctx context.Context, t Targets, now time.Time) error {
	at := func(o Offset) time.Time { return now.Add(time.Duration(o)).UTC() }

	for _, p := range f.Patients {
		if _, err := t.Patients.CreatePatient(ctx, patient.Patient{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			Phone:       p.Phone,
			DateOfBirth: p.DateOfBirth,
			Gender:      p.Gender,
			Address:     p.Address,
			MedicalID:   p.MedicalID,
		}); err != nil {
			return fmt.Errorf("failed to seed patient: %w", err)
		}
	}

	for _, d := range f.Doctors {
		if _, err := t.Doctors.CreateDoctor(ctx, doctor.Doctor{
			FirstName:         d.FirstName,
			LastName:          d.LastName,
			Email:             d.Email,
			Specialty:         d.Specialty,
			Phone:             d.Phone,
			LicenseNumber:     d.LicenseNumber,
			YearsOfExperience: d.YearsOfExperience,
		}); err != nil {
			return fmt.Errorf("failed to seed doctor: %w", err)
		}
	}

	for _, a := range f.Appointments {
		if _, err := t.Appointments.CreateAppointment(ctx, appointment.Appointment{
			PatientID:   a.PatientID,
			DoctorID:    a.DoctorID,
			PatientName: a.PatientName,
			DoctorName:  a.DoctorName,
			DateTime:    at(a.Offset).Format(time.RFC3339),
			Reason:      a.Reason,
			Status:      a.Status,
			Notes:       a.Notes,
		}); err != nil {
			return fmt.Errorf("failed to seed appointment: %w", err)
		}
	}

	for _, h := range f.History {
		if _, err := t.History.CreateEntry(ctx, history.Entry{
			PatientID:   h.PatientID,
			PatientName: h.PatientName,
			Date:        at(h.Offset),
			Diagnosis:   h.Diagnosis,
			Treatment:   h.Treatment,
			Notes:       h.Notes,
			DoctorName:  h.DoctorName,
		}); err != nil {
			return fmt.Errorf("failed to seed history entry: %w", err)
		}
	}

	for _, c := range f.Consultations {
		if _, err := t.Consultations.CreateConsultation(ctx, consultation.Consultation{
			PatientID:   c.PatientID,
			DoctorID:    c.DoctorID,
			PatientName: c.PatientName,
			DoctorName:  c.DoctorName,
			Date:        at(c.Offset),
			Notes:       c.Notes,
			Status:      c.Status,
		}); err != nil {
			return fmt.Errorf("failed to seed consultation: %w", err)
		}
	}

	return nil
}
