package patientrequest

import (
	"context"
	"fmt"
	"strings"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// Service drives the admission request queue. Doctors file requests, the
// front desk approves or rejects them, and an approved request marked
// REGISTERED produces a patient on the hospital side. That last
// transition is the one cross-entity effect in the console; OnRegistered
// lets the caller refresh the patient roster when it fires.
type Service struct {
	repo    Repository
	machine *workflow.Machine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, machine: workflow.NewPatientRequest()}
}

// OnRegistered registers fn to run after a request reaches REGISTERED.
func (s *Service) OnRegistered(fn func()) {
	s.machine.OnEnter(workflow.RequestRegistered, fn)
}

// Screen builds the request queue for the viewer. Doctors see only their
// own requests; a status filter narrows the queue for the front desk.
func (s *Service) Screen(ctx context.Context, ident session.Identity, status string) (ScreenData, error) {
	f := Filter{Status: status}
	if ident.Role == policy.RoleDoctor {
		f.DoctorID = ident.ID
	}

	requests, err := s.repo.List(ctx, f)
	if err != nil {
		return emptyScreen(), err
	}

	rows := make([]Row, len(requests))
	for i, req := range requests {
		rows[i] = Row{Request: req, Transitions: s.machine.Transitions(req.Status, ident.Role)}
	}
	return ScreenData{
		Requests: rows,
		CanFile:  policy.CanPerform(ident.Role, policy.FilePatientRequest),
	}, nil
}

// File submits an admission request on behalf of the signed-in doctor.
func (s *Service) File(ctx context.Context, ident session.Identity, in FileInput) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.FilePatientRequest) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if in.PatientName == "" || in.Age <= 0 {
		return emptyScreen(), fmt.Errorf("%w: patient name and a positive age are required", gateway.ErrValidation)
	}
	if _, err := s.repo.Create(ctx, in, ident.ID); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident, "")
}

// Approve moves a pending request to APPROVED.
func (s *Service) Approve(ctx context.Context, ident session.Identity, id int64) (ScreenData, error) {
	if err := s.transition(ctx, ident, id, policy.ProcessPatientRequest, workflow.RequestApproved, func(ctx context.Context) error {
		return s.repo.Approve(ctx, id)
	}); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident, "")
}

// Reject moves a pending request to REJECTED. Remarks are mandatory: the
// requesting doctor must be able to see why.
func (s *Service) Reject(ctx context.Context, ident session.Identity, id int64, remarks string) (ScreenData, error) {
	if strings.TrimSpace(remarks) == "" {
		return emptyScreen(), fmt.Errorf("%w: remarks are required to reject a request", gateway.ErrValidation)
	}
	if err := s.transition(ctx, ident, id, policy.ProcessPatientRequest, workflow.RequestRejected, func(ctx context.Context) error {
		return s.repo.Reject(ctx, id, remarks)
	}); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident, "")
}

// MarkRegistered completes an approved request. The hospital API creates
// the patient record; the registered hook tells interested screens to
// refetch.
func (s *Service) MarkRegistered(ctx context.Context, ident session.Identity, id int64) (ScreenData, error) {
	if err := s.transition(ctx, ident, id, policy.MarkRequestRegistered, workflow.RequestRegistered, func(ctx context.Context) error {
		return s.repo.MarkRegistered(ctx, id)
	}); err != nil {
		return emptyScreen(), err
	}
	s.machine.NotifyEnter(workflow.RequestRegistered)
	return s.Screen(ctx, ident, "")
}

func (s *Service) transition(ctx context.Context, ident session.Identity, id int64, action policy.Action, to workflow.Status, apply func(context.Context) error) error {
	if !policy.CanPerform(ident.Role, action) {
		return policy.ErrNotAllowed
	}

	current, err := s.find(ctx, ident, id)
	if err != nil {
		return err
	}
	if err := s.machine.Check(current.Status, to, ident.Role); err != nil {
		return err
	}
	return apply(ctx)
}

func (s *Service) find(ctx context.Context, ident session.Identity, id int64) (*Request, error) {
	f := Filter{}
	if ident.Role == policy.RoleDoctor {
		f.DoctorID = ident.ID
	}
	requests, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, fmt.Errorf("%w: request %d not found", gateway.ErrValidation, id)
}
