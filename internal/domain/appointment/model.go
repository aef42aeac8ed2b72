package appointment

import "github.com/meditrack/console/internal/workflow"

// Person is the abbreviated patient or staff reference embedded in an
// appointment record.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Appointment mirrors the hospital API's appointment record.
type Appointment struct {
	ID              int64           `json:"id"`
	Patient         Person          `json:"patient"`
	Doctor          Person          `json:"doctor"`
	AppointmentDate string          `json:"appointmentDate"`
	AppointmentTime string          `json:"appointmentTime"`
	Reason          string          `json:"reason,omitempty"`
	Status          workflow.Status `json:"status"`
}

// BookInput is the booking form.
type BookInput struct {
	PatientID       int64  `json:"patientId"`
	DoctorID        int64  `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason,omitempty"`
}

// Row is one appointment plus the status controls the viewer may use.
type Row struct {
	Appointment
	Transitions []workflow.Status `json:"transitions"`
}

// ScreenData is the appointments screen payload.
type ScreenData struct {
	Appointments []Row `json:"appointments"`
	CanBook      bool  `json:"canBook"`
}

func emptyScreen() ScreenData {
	return ScreenData{Appointments: []Row{}}
}
