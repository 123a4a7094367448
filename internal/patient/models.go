package patient

import "github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"

// Patient is a registered patient of the office.
type Patient struct {
	store.Meta
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth,omitempty"` // Format: YYYY-MM-DD
	Gender      string `json:"gender,omitempty"`
	Address     string `json:"address,omitempty"`
	MedicalID   string `json:"medicalId,omitempty"`
}

// FullName is the display name denormalized into dependent records.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// CreatePatientRequest represents the request to create a new patient
type CreatePatientRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	MedicalID   string `json:"medicalId"`
}

// UpdatePatientRequest represents the request to update a patient.
// Only the fields listed here can change; id and createdAt are not updatable.
type UpdatePatientRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Address     *string `json:"address,omitempty"`
	MedicalID   *string `json:"medicalId,omitempty"`
}

// Apply merges the provided fields over p.
func (req UpdatePatientRequest) Apply(p *Patient) {
	setIfPresent(&p.FirstName, req.FirstName)
	setIfPresent(&p.LastName, req.LastName)
	setIfPresent(&p.Email, req.Email)
	setIfPresent(&p.Phone, req.Phone)
	setIfPresent(&p.DateOfBirth, req.DateOfBirth)
	setIfPresent(&p.Gender, req.Gender)
	setIfPresent(&p.Address, req.Address)
	setIfPresent(&p.MedicalID, req.MedicalID)
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// PatientListResponse is the list envelope.
type PatientListResponse struct {
	Patients []Patient `json:"patients"`
	Count    int       `json:"count"`
}
