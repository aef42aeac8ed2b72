package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// Service drives the appointments screen. Booking is a front-desk action;
// status changes are shared with doctors, and a scheduled appointment may
// move to exactly one of its three terminal outcomes.
type Service struct {
	repo    Repository
	machine *workflow.Machine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, machine: workflow.NewAppointment()}
}

// Screen builds the appointments screen. Doctors see their own schedule.
func (s *Service) Screen(ctx context.Context, ident session.Identity) (ScreenData, error) {
	appointments, err := s.list(ctx, ident)
	if err != nil {
		return emptyScreen(), err
	}

	rows := make([]Row, len(appointments))
	for i, a := range appointments {
		rows[i] = Row{Appointment: a, Transitions: s.machine.Transitions(a.Status, ident.Role)}
	}
	return ScreenData{
		Appointments: rows,
		CanBook:      policy.CanPerform(ident.Role, policy.BookAppointment),
	}, nil
}

// Book schedules an appointment. The hospital API assigns SCHEDULED.
func (s *Service) Book(ctx context.Context, ident session.Identity, in BookInput) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.BookAppointment) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if in.PatientID <= 0 || in.DoctorID <= 0 {
		return emptyScreen(), fmt.Errorf("%w: patient and doctor are required", gateway.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", in.AppointmentDate); err != nil {
		return emptyScreen(), fmt.Errorf("%w: date must be YYYY-MM-DD", gateway.ErrValidation)
	}
	if _, err := time.Parse("15:04", in.AppointmentTime); err != nil {
		return emptyScreen(), fmt.Errorf("%w: time must be HH:MM", gateway.ErrValidation)
	}

	if _, err := s.repo.Create(ctx, in); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

// SetStatus moves an appointment along the workflow. The target must be a
// legal edge from the current status for the caller's role; once an
// appointment has completed, cancelled or no-showed it cannot move again.
func (s *Service) SetStatus(ctx context.Context, ident session.Identity, id int64, to workflow.Status) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.ChangeAppointmentStatus) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if !s.machine.Valid(to) {
		return emptyScreen(), fmt.Errorf("%w: unknown appointment status %q", gateway.ErrValidation, to)
	}

	current, err := s.find(ctx, ident, id)
	if err != nil {
		return emptyScreen(), err
	}
	if err := s.machine.Check(current.Status, to, ident.Role); err != nil {
		return emptyScreen(), err
	}

	if err := s.repo.SetStatus(ctx, id, to); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

func (s *Service) list(ctx context.Context, ident session.Identity) ([]Appointment, error) {
	if ident.Role == policy.RoleDoctor {
		return s.repo.ListByDoctor(ctx, ident.ID)
	}
	return s.repo.List(ctx)
}

func (s *Service) find(ctx context.Context, ident session.Identity, id int64) (*Appointment, error) {
	appointments, err := s.list(ctx, ident)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, fmt.Errorf("%w: appointment %d not found", gateway.ErrValidation, id)
}
