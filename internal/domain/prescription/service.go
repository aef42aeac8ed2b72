package prescription

import (
	"context"
	"fmt"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// Service drives the prescriptions screen. Doctors see and manage their
// own prescriptions, nurses see what is assigned to them, and admins look
// up a patient's history by ID.
type Service struct {
	repo    Repository
	machine *workflow.Machine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, machine: workflow.NewPrescription()}
}

// Screen builds the viewer's default prescription list.
func (s *Service) Screen(ctx context.Context, ident session.Identity) (ScreenData, error) {
	var (
		prescriptions []Prescription
		err           error
	)
	switch ident.Role {
	case policy.RoleDoctor:
		prescriptions, err = s.repo.ListByDoctor(ctx, ident.ID)
	case policy.RoleNurse:
		prescriptions, err = s.repo.ListByNurse(ctx, ident.ID)
	default:
		// No personal feed; admins reach records via patient search.
	}
	if err != nil {
		return emptyScreen(), err
	}
	return s.screenData(prescriptions, ident), nil
}

// SearchByPatient returns one patient's prescription history.
func (s *Service) SearchByPatient(ctx context.Context, ident session.Identity, patientID int64) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.SearchPrescriptions) && ident.Role != policy.RoleDoctor {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if patientID <= 0 {
		return emptyScreen(), fmt.Errorf("%w: a patient id is required", gateway.ErrValidation)
	}
	prescriptions, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return emptyScreen(), err
	}
	return s.screenData(prescriptions, ident), nil
}

// Create writes a prescription in the signed-in doctor's name.
func (s *Service) Create(ctx context.Context, ident session.Identity, in CreateInput) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.CreatePrescription) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if in.PatientID <= 0 || in.MedicationName == "" {
		return emptyScreen(), fmt.Errorf("%w: patient and medication name are required", gateway.ErrValidation)
	}
	if _, err := s.repo.Create(ctx, in, ident.ID); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

// Complete closes out a finished course.
func (s *Service) Complete(ctx context.Context, ident session.Identity, id int64) (ScreenData, error) {
	return s.transition(ctx, ident, id, workflow.PrescriptionCompleted, s.repo.Complete)
}

// Stop discontinues an active prescription.
func (s *Service) Stop(ctx context.Context, ident session.Identity, id int64) (ScreenData, error) {
	return s.transition(ctx, ident, id, workflow.PrescriptionStopped, s.repo.Stop)
}

func (s *Service) transition(ctx context.Context, ident session.Identity, id int64, to workflow.Status, apply func(context.Context, int64) error) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.UpdatePrescription) {
		return emptyScreen(), policy.ErrNotAllowed
	}

	current, err := s.find(ctx, ident, id)
	if err != nil {
		return emptyScreen(), err
	}
	if err := s.machine.Check(current.Status, to, ident.Role); err != nil {
		return emptyScreen(), err
	}

	if err := apply(ctx, id); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

func (s *Service) find(ctx context.Context, ident session.Identity, id int64) (*Prescription, error) {
	prescriptions, err := s.repo.ListByDoctor(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	for i := range prescriptions {
		if prescriptions[i].ID == id {
			return &prescriptions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: prescription %d not found", gateway.ErrValidation, id)
}

func (s *Service) screenData(prescriptions []Prescription, ident session.Identity) ScreenData {
	rows := make([]Row, len(prescriptions))
	for i, p := range prescriptions {
		rows[i] = Row{Prescription: p, Transitions: s.machine.Transitions(p.Status, ident.Role)}
	}
	return ScreenData{
		Prescriptions: rows,
		CanPrescribe:  policy.CanPerform(ident.Role, policy.CreatePrescription),
		CanSearch:     policy.CanPerform(ident.Role, policy.SearchPrescriptions) || ident.Role == policy.RoleDoctor,
	}
}
