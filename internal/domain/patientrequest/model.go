package patientrequest

import "github.com/meditrack/console/internal/workflow"

// Request is a doctor's admission request awaiting front-desk processing.
type Request struct {
	ID                  int64           `json:"id"`
	PatientName         string          `json:"patientName"`
	Age                 int             `json:"age"`
	Gender              string          `json:"gender"`
	ConditionSummary    string          `json:"conditionSummary,omitempty"`
	Reason              string          `json:"reason,omitempty"`
	RequestedByDoctorID int64           `json:"requestedByDoctorId"`
	ProcessedByUserID   int64           `json:"processedByUserId,omitempty"`
	Remarks             string          `json:"remarks,omitempty"`
	Status              workflow.Status `json:"status"`
}

// FileInput is the request form a doctor submits.
type FileInput struct {
	PatientName      string `json:"patientName"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	ConditionSummary string `json:"conditionSummary,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// Row is one request plus the transitions the viewing role may trigger.
type Row struct {
	Request
	Transitions []workflow.Status `json:"transitions"`
}

// ScreenData is the request queue as shown on the patients screen.
type ScreenData struct {
	Requests []Row `json:"requests"`
	CanFile  bool  `json:"canFile"`
}

func emptyScreen() ScreenData {
	return ScreenData{Requests: []Row{}}
}
