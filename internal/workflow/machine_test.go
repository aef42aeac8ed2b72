package workflow

import (
	"errors"
	"reflect"
	"testing"

	"github.com/meditrack/console/internal/policy"
)

// edgeCase enumerates one expected edge for the grid tests below.
type edgeCase struct {
	from, to Status
	roles    []policy.Role
}

func assertEdges(t *testing.T, m *Machine, want []edgeCase) {
	t.Helper()
	allRoles := policy.Roles()

	allowed := map[[2]Status]map[policy.Role]bool{}
	for _, e := range want {
		key := [2]Status{e.from, e.to}
		allowed[key] = map[policy.Role]bool{}
		for _, r := range e.roles {
			allowed[key][r] = true
		}
	}

	var states []Status
	for s := range m.states {
		states = append(states, s)
	}
	for _, from := range states {
		for _, to := range states {
			for _, r := range allRoles {
				want := allowed[[2]Status{from, to}][r]
				if got := m.CanTransition(from, to, r); got != want {
					t.Errorf("%s: CanTransition(%s, %s, %s) = %v, want %v",
						m.Entity(), from, to, r, got, want)
				}
			}
		}
	}
}

func TestPatientMachine(t *testing.T) {
	m := NewPatient()
	assertEdges(t, m, []edgeCase{
		{PatientAdmitted, PatientDischarged, []policy.Role{policy.RoleAdmin, policy.RoleDoctor}},
		{PatientCritical, PatientDischarged, []policy.Role{policy.RoleAdmin, policy.RoleDoctor}},
	})
	if m.Initial() != PatientAdmitted {
		t.Errorf("initial = %s", m.Initial())
	}
	if !m.Terminal(PatientDischarged) {
		t.Error("DISCHARGED must be terminal")
	}
	if m.Terminal(PatientAdmitted) {
		t.Error("ADMITTED is not terminal")
	}
}

func TestPatientRequestMachine(t *testing.T) {
	m := NewPatientRequest()
	procs := []policy.Role{policy.RoleAdmin, policy.RoleReceptionist}
	assertEdges(t, m, []edgeCase{
		{RequestPending, RequestApproved, procs},
		{RequestPending, RequestRejected, procs},
		{RequestApproved, RequestRegistered, procs},
	})
	if m.Initial() != RequestPending {
		t.Errorf("initial = %s", m.Initial())
	}
	for _, s := range []Status{RequestRejected, RequestRegistered} {
		if !m.Terminal(s) {
			t.Errorf("%s must be terminal", s)
		}
	}
}

func TestAppointmentMachine(t *testing.T) {
	m := NewAppointment()
	mutators := []policy.Role{policy.RoleAdmin, policy.RoleReceptionist, policy.RoleDoctor}
	assertEdges(t, m, []edgeCase{
		{AppointmentScheduled, AppointmentCompleted, mutators},
		{AppointmentScheduled, AppointmentCancelled, mutators},
		{AppointmentScheduled, AppointmentNoShow, mutators},
	})
	for _, s := range []Status{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		if !m.Terminal(s) {
			t.Errorf("%s must be terminal", s)
		}
		if got := m.Transitions(s, policy.RoleAdmin); len(got) != 0 {
			t.Errorf("no controls may be offered from terminal %s, got %v", s, got)
		}
	}
}

func TestBedMachine(t *testing.T) {
	m := NewBed()
	viewers := []policy.Role{policy.RoleAdmin, policy.RoleReceptionist, policy.RoleNurse}
	assertEdges(t, m, []edgeCase{
		{BedAvailable, BedOccupied, viewers},
		{BedAvailable, BedMaintenance, viewers},
		{BedOccupied, BedAvailable, viewers},
		{BedOccupied, BedMaintenance, viewers},
		{BedMaintenance, BedAvailable, viewers},
		{BedMaintenance, BedOccupied, viewers},
	})
	for _, s := range []Status{BedAvailable, BedOccupied, BedMaintenance} {
		if m.Terminal(s) {
			t.Errorf("bed state %s must not be terminal", s)
		}
	}
}

func TestPrescriptionMachine(t *testing.T) {
	m := NewPrescription()
	assertEdges(t, m, []edgeCase{
		{PrescriptionActive, PrescriptionCompleted, []policy.Role{policy.RoleDoctor}},
		{PrescriptionActive, PrescriptionStopped, []policy.Role{policy.RoleDoctor}},
	})
	for _, s := range []Status{PrescriptionCompleted, PrescriptionStopped} {
		if !m.Terminal(s) {
			t.Errorf("%s must be terminal", s)
		}
	}
}

func TestAlertMachine(t *testing.T) {
	m := NewAlert()
	assertEdges(t, m, []edgeCase{
		{AlertOpen, AlertResolved, []policy.Role{policy.RoleAdmin}},
	})
	if !m.Terminal(AlertResolved) {
		t.Error("RESOLVED must be terminal")
	}
}

func TestTransitions_RoleScoped(t *testing.T) {
	m := NewAppointment()
	got := m.Transitions(AppointmentScheduled, policy.RoleDoctor)
	want := []Status{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("doctor transitions from SCHEDULED = %v, want %v", got, want)
	}
	if got := m.Transitions(AppointmentScheduled, policy.RoleNurse); len(got) != 0 {
		t.Errorf("nurse may not move appointments, got %v", got)
	}
}

func TestCheck_WrapsIllegalTransition(t *testing.T) {
	m := NewAppointment()
	err := m.Check(AppointmentNoShow, AppointmentScheduled, policy.RoleAdmin)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if err := m.Check(AppointmentScheduled, AppointmentNoShow, policy.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOnEnterHook(t *testing.T) {
	m := NewPatientRequest()
	fired := 0
	m.OnEnter(RequestRegistered, func() { fired++ })
	m.NotifyEnter(RequestApproved)
	if fired != 0 {
		t.Error("hook must not fire for other statuses")
	}
	m.NotifyEnter(RequestRegistered)
	m.NotifyEnter(RequestRegistered)
	if fired != 2 {
		t.Errorf("hook fired %d times, want 2", fired)
	}
}

func TestNew_PanicsOnBadTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undeclared edge state")
		}
	}()
	New("broken", "A", []Status{"A"}, []Edge{{"A", "B", nil}})
}
