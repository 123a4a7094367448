package doctor

import "github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"

// Doctor is a member of the office staff. Doctors are seeded at start and
// are read-only through the API.
type Doctor struct {
	store.Meta
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Specialty         string `json:"specialty"`
	Phone             string `json:"phone"`
	LicenseNumber     string `json:"licenseNumber"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

// DisplayName is the form denormalized into appointments and consultations.
func (d Doctor) DisplayName() string {
	return "Dr. " + d.LastName
}

type DoctorListResponse struct {
	Doctors []Doctor `json:"doctors"`
	Count   int      `json:"count"`
}
