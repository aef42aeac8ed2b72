package prescription

import "github.com/meditrack/console/internal/workflow"

// Person is the abbreviated patient or staff reference embedded in a
// prescription record.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Prescription mirrors the hospital API's prescription record.
type Prescription struct {
	ID                 int64           `json:"id"`
	Patient            Person          `json:"patient"`
	PrescribedByDoctor Person          `json:"prescribedByDoctor"`
	AssignedNurse      *Person         `json:"assignedNurse,omitempty"`
	MedicationName     string          `json:"medicationName"`
	Dosage             string          `json:"dosage,omitempty"`
	Frequency          string          `json:"frequency,omitempty"`
	StartDate          string          `json:"startDate,omitempty"`
	EndDate            string          `json:"endDate,omitempty"`
	Status             workflow.Status `json:"status"`
}

// CreateInput is the prescribing form. The doctor is the signed-in user.
type CreateInput struct {
	PatientID      int64  `json:"patientId"`
	NurseID        int64  `json:"nurseId,omitempty"`
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage,omitempty"`
	Frequency      string `json:"frequency,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
}

// Row is one prescription plus the controls the viewer may use.
type Row struct {
	Prescription
	Transitions []workflow.Status `json:"transitions"`
}

// ScreenData is the prescriptions screen payload.
type ScreenData struct {
	Prescriptions []Row `json:"prescriptions"`
	CanPrescribe  bool  `json:"canPrescribe"`
	CanSearch     bool  `json:"canSearch"`
}

func emptyScreen() ScreenData {
	return ScreenData{Prescriptions: []Row{}}
}
