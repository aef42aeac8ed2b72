package workflow

import "github.com/meditrack/console/internal/policy"

// Patient statuses.
const (
	PatientAdmitted   Status = "ADMITTED"
	PatientCritical   Status = "CRITICAL"
	PatientDischarged Status = "DISCHARGED"
)

// PatientRequest statuses.
const (
	RequestPending    Status = "PENDING"
	RequestApproved   Status = "APPROVED"
	RequestRejected   Status = "REJECTED"
	RequestRegistered Status = "REGISTERED"
)

// Appointment statuses.
const (
	AppointmentScheduled Status = "SCHEDULED"
	AppointmentCompleted Status = "COMPLETED"
	AppointmentCancelled Status = "CANCELLED"
	AppointmentNoShow    Status = "NO_SHOW"
)

// Bed statuses.
const (
	BedAvailable   Status = "AVAILABLE"
	BedOccupied    Status = "OCCUPIED"
	BedMaintenance Status = "MAINTENANCE"
)

// Prescription statuses.
const (
	PrescriptionActive    Status = "ACTIVE"
	PrescriptionCompleted Status = "COMPLETED"
	PrescriptionStopped   Status = "STOPPED"
)

// Alert resolution, modelled as a two-state machine so the one-way resolve
// is queried like every other transition.
const (
	AlertOpen     Status = "OPEN"
	AlertResolved Status = "RESOLVED"
)

var (
	dischargers  = []policy.Role{policy.RoleAdmin, policy.RoleDoctor}
	processors   = []policy.Role{policy.RoleAdmin, policy.RoleReceptionist}
	apptMutators = []policy.Role{policy.RoleAdmin, policy.RoleReceptionist, policy.RoleDoctor}
	bedViewers   = []policy.Role{policy.RoleAdmin, policy.RoleReceptionist, policy.RoleNurse}
	prescribers  = []policy.Role{policy.RoleDoctor}
	alertOwners  = []policy.Role{policy.RoleAdmin}
)

// NewPatient: ADMITTED at creation, DISCHARGED terminal. Discharge is
// available from either admitted acuity; acuity itself is set by the
// hospital system, not the console.
func NewPatient() *Machine {
	return New("patient", PatientAdmitted,
		[]Status{PatientAdmitted, PatientCritical, PatientDischarged},
		[]Edge{
			{PatientAdmitted, PatientDischarged, dischargers},
			{PatientCritical, PatientDischarged, dischargers},
		})
}

// NewPatientRequest: filed PENDING by a doctor, processed by reception or
// admin. REJECTED and REGISTERED are terminal.
func NewPatientRequest() *Machine {
	return New("patient_request", RequestPending,
		[]Status{RequestPending, RequestApproved, RequestRejected, RequestRegistered},
		[]Edge{
			{RequestPending, RequestApproved, processors},
			{RequestPending, RequestRejected, processors},
			{RequestApproved, RequestRegistered, processors},
		})
}

// NewAppointment: SCHEDULED may move to any of the three terminal outcomes.
func NewAppointment() *Machine {
	return New("appointment", AppointmentScheduled,
		[]Status{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
		[]Edge{
			{AppointmentScheduled, AppointmentCompleted, apptMutators},
			{AppointmentScheduled, AppointmentCancelled, apptMutators},
			{AppointmentScheduled, AppointmentNoShow, apptMutators},
		})
}

// NewBed: the three states are freely interchangeable by any role whose
// menu includes the beds screen.
func NewBed() *Machine {
	return New("bed", BedAvailable,
		[]Status{BedAvailable, BedOccupied, BedMaintenance},
		[]Edge{
			{BedAvailable, BedOccupied, bedViewers},
			{BedAvailable, BedMaintenance, bedViewers},
			{BedOccupied, BedAvailable, bedViewers},
			{BedOccupied, BedMaintenance, bedViewers},
			{BedMaintenance, BedAvailable, bedViewers},
			{BedMaintenance, BedOccupied, bedViewers},
		})
}

// NewPrescription: ACTIVE until the prescribing doctor completes or stops it.
func NewPrescription() *Machine {
	return New("prescription", PrescriptionActive,
		[]Status{PrescriptionActive, PrescriptionCompleted, PrescriptionStopped},
		[]Edge{
			{PrescriptionActive, PrescriptionCompleted, prescribers},
			{PrescriptionActive, PrescriptionStopped, prescribers},
		})
}

// NewAlert: resolve is one-way.
func NewAlert() *Machine {
	return New("alert", AlertOpen,
		[]Status{AlertOpen, AlertResolved},
		[]Edge{
			{AlertOpen, AlertResolved, alertOwners},
		})
}
