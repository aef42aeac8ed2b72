package alert

import "github.com/meditrack/console/internal/workflow"

// Alert types raised by the hospital system.
const (
	TypeStaffShortage   = "STAFF_SHORTAGE"
	TypeBedFull         = "BED_FULL"
	TypeNoShowRisk      = "NO_SHOW_RISK"
	TypeCriticalPatient = "CRITICAL_PATIENT"
)

// Severities in ascending order of urgency.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

// Alert mirrors the hospital API's alert record.
type Alert struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Resolved  bool   `json:"resolved"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Status maps the resolved flag onto the alert workflow's two states.
func (a Alert) Status() workflow.Status {
	if a.Resolved {
		return workflow.AlertResolved
	}
	return workflow.AlertOpen
}

// CreateInput is the new-alert form.
type CreateInput struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Row is one alert plus whether the viewer may resolve it.
type Row struct {
	Alert
	CanResolve bool `json:"canResolve"`
}

// ScreenData is the alerts screen payload.
type ScreenData struct {
	Alerts    []Row `json:"alerts"`
	Open      int   `json:"open"`
	CanCreate bool  `json:"canCreate"`
}

func emptyScreen() ScreenData {
	return ScreenData{Alerts: []Row{}}
}

// Types lists the known alert types.
func Types() []string {
	return []string{TypeStaffShortage, TypeBedFull, TypeNoShowRisk, TypeCriticalPatient}
}

// Severities lists the known severities.
func Severities() []string {
	return []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}
