package patient

import "github.com/meditrack/console/internal/workflow"

// Patient mirrors the hospital API's patient record.
type Patient struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Age              int             `json:"age"`
	Gender           string          `json:"gender"`
	BloodGroup       string          `json:"bloodGroup,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Email            string          `json:"email,omitempty"`
	AdmissionDate    string          `json:"admissionDate,omitempty"`
	ConditionSummary string          `json:"conditionSummary,omitempty"`
	Status           workflow.Status `json:"status"`
}

// RegisterInput is the direct patient registration form.
type RegisterInput struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	BloodGroup       string `json:"bloodGroup,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	ConditionSummary string `json:"conditionSummary,omitempty"`
}

// Row is one patient as rendered on the patients screen: the record plus
// the status transitions the viewing role may trigger. An empty
// transitions list means the row shows no controls.
type Row struct {
	Patient
	Transitions []workflow.Status `json:"transitions"`
}

// ScreenData is the patients screen payload.
type ScreenData struct {
	Patients    []Row `json:"patients"`
	CanRegister bool  `json:"canRegister"`
}

func emptyScreen() ScreenData {
	return ScreenData{Patients: []Row{}}
}
