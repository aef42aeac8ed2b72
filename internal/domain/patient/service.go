package patient

import (
	"context"
	"fmt"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// Service composes the patient list with the viewer's policy grants and
// the patient workflow, so each row already names the transitions the
// viewer may trigger.
type Service struct {
	repo    Repository
	machine *workflow.Machine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, machine: workflow.NewPatient()}
}

// Screen builds the patients screen for the viewer. Doctors see only
// their own patients; every other role with the screen sees all.
func (s *Service) Screen(ctx context.Context, ident session.Identity) (ScreenData, error) {
	patients, err := s.list(ctx, ident)
	if err != nil {
		return emptyScreen(), err
	}

	rows := make([]Row, len(patients))
	for i, p := range patients {
		rows[i] = Row{Patient: p, Transitions: s.machine.Transitions(p.Status, ident.Role)}
	}
	return ScreenData{
		Patients:    rows,
		CanRegister: policy.CanPerform(ident.Role, policy.RegisterPatient),
	}, nil
}

// Register admits a patient directly, bypassing the request workflow.
func (s *Service) Register(ctx context.Context, ident session.Identity, in RegisterInput) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.RegisterPatient) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if in.Name == "" || in.Age <= 0 {
		return emptyScreen(), fmt.Errorf("%w: name and a positive age are required", gateway.ErrValidation)
	}
	if _, err := s.repo.Create(ctx, in); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

// Discharge moves a patient to DISCHARGED and returns the refreshed
// screen. The current status is re-read first so a row that went stale in
// another tab cannot ride through an edge that no longer exists.
func (s *Service) Discharge(ctx context.Context, ident session.Identity, id int64) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.DischargePatient) {
		return emptyScreen(), policy.ErrNotAllowed
	}

	current, err := s.find(ctx, ident, id)
	if err != nil {
		return emptyScreen(), err
	}
	if err := s.machine.Check(current.Status, workflow.PatientDischarged, ident.Role); err != nil {
		return emptyScreen(), err
	}

	if err := s.repo.Discharge(ctx, id); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

func (s *Service) list(ctx context.Context, ident session.Identity) ([]Patient, error) {
	if ident.Role == policy.RoleDoctor {
		return s.repo.ListByDoctor(ctx, ident.ID)
	}
	return s.repo.List(ctx)
}

func (s *Service) find(ctx context.Context, ident session.Identity, id int64) (*Patient, error) {
	patients, err := s.list(ctx, ident)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, fmt.Errorf("%w: patient %d not found", gateway.ErrValidation, id)
}
