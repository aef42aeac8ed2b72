package policy

import "errors"

// ErrNotAllowed is returned by services when a role attempts an action the
// policy table does not grant it.
var ErrNotAllowed = errors.New("action not permitted for role")

// Screen identifies one console screen.
type Screen string

const (
	ScreenHome          Screen = "home"
	ScreenPatients      Screen = "patients"
	ScreenBeds          Screen = "beds"
	ScreenAppointments  Screen = "appointments"
	ScreenAttendance    Screen = "attendance"
	ScreenAlerts        Screen = "alerts"
	ScreenPrescriptions Screen = "prescriptions"
)

// Action identifies one mutating or privileged operation a screen can offer.
type Action string

const (
	BookAppointment         Action = "appointment.book"
	ChangeAppointmentStatus Action = "appointment.status"
	RegisterPatient         Action = "patient.register"
	DischargePatient        Action = "patient.discharge"
	FilePatientRequest      Action = "patient_request.file"
	ProcessPatientRequest   Action = "patient_request.process"
	MarkRequestRegistered   Action = "patient_request.registered"
	CreatePrescription      Action = "prescription.create"
	UpdatePrescription      Action = "prescription.update"
	SearchPrescriptions     Action = "prescription.search"
	MarkAttendance          Action = "attendance.mark"
	CreateBed               Action = "bed.create"
	ChangeBedStatus         Action = "bed.status"
	CreateAlert             Action = "alert.create"
	ResolveAlert            Action = "alert.resolve"
)

// menuByRole is the single source of truth for screen visibility. Adding a
// role or screen is a one-place change here.
var menuByRole = map[Role][]Screen{
	RoleAdmin:         {ScreenHome, ScreenPatients, ScreenBeds, ScreenAppointments, ScreenAttendance, ScreenAlerts},
	RoleReceptionist:  {ScreenHome, ScreenPatients, ScreenAppointments, ScreenBeds},
	RoleDoctor:        {ScreenHome, ScreenPatients, ScreenAppointments, ScreenAttendance, ScreenPrescriptions},
	RoleNurse:         {ScreenHome, ScreenPatients, ScreenBeds, ScreenAttendance},
	RoleLabTechnician: {ScreenHome, ScreenAttendance},
}

// actionRoles maps each action to the roles permitted to perform it.
// Bed status changes follow beds-screen visibility rather than a dedicated
// grant, so that entry mirrors the menu table.
var actionRoles = map[Action][]Role{
	BookAppointment:         {RoleAdmin, RoleReceptionist},
	ChangeAppointmentStatus: {RoleAdmin, RoleReceptionist, RoleDoctor},
	RegisterPatient:         {RoleAdmin, RoleReceptionist},
	DischargePatient:        {RoleAdmin, RoleDoctor},
	FilePatientRequest:      {RoleDoctor},
	ProcessPatientRequest:   {RoleAdmin, RoleReceptionist},
	MarkRequestRegistered:   {RoleAdmin, RoleReceptionist},
	CreatePrescription:      {RoleDoctor},
	UpdatePrescription:      {RoleDoctor},
	SearchPrescriptions:     {RoleAdmin},
	MarkAttendance:          {RoleDoctor, RoleNurse, RoleLabTechnician},
	CreateBed:               {RoleAdmin},
	ChangeBedStatus:         {RoleAdmin, RoleReceptionist, RoleNurse},
	CreateAlert:             {RoleAdmin},
	ResolveAlert:            {RoleAdmin},
}

// MenuFor returns the ordered screens visible to a role. Unknown roles see
// only the home screen.
func MenuFor(r Role) []Screen {
	menu, ok := menuByRole[r]
	if !ok {
		return []Screen{ScreenHome}
	}
	out := make([]Screen, len(menu))
	copy(out, menu)
	return out
}

// CanView reports whether a role's menu includes the screen.
func CanView(r Role, s Screen) bool {
	for _, m := range MenuFor(r) {
		if m == s {
			return true
		}
	}
	return false
}

// CanPerform is a pure lookup: no side effects, deterministic for a given
// (role, action) pair.
func CanPerform(r Role, a Action) bool {
	for _, allowed := range actionRoles[a] {
		if allowed == r {
			return true
		}
	}
	return false
}

// RolesFor returns the roles granted an action, primarily for the policy
// inspection command.
func RolesFor(a Action) []Role {
	out := make([]Role, len(actionRoles[a]))
	copy(out, actionRoles[a])
	return out
}

// Actions lists every action in the table, in a stable order.
func Actions() []Action {
	return []Action{
		BookAppointment, ChangeAppointmentStatus,
		RegisterPatient, DischargePatient,
		FilePatientRequest, ProcessPatientRequest, MarkRequestRegistered,
		CreatePrescription, UpdatePrescription, SearchPrescriptions,
		MarkAttendance,
		CreateBed, ChangeBedStatus,
		CreateAlert, ResolveAlert,
	}
}
