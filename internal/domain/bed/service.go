package bed

import (
	"context"
	"fmt"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// Service drives the beds screen. Bed status moves freely among its three
// states for any role that can open the screen; only creating new beds is
// an admin action.
type Service struct {
	repo    Repository
	machine *workflow.Machine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, machine: workflow.NewBed()}
}

// Screen builds the beds screen with per-status counts.
func (s *Service) Screen(ctx context.Context, ident session.Identity) (ScreenData, error) {
	beds, err := s.repo.List(ctx)
	if err != nil {
		return emptyScreen(), err
	}

	var summary Summary
	rows := make([]Row, len(beds))
	for i, b := range beds {
		rows[i] = Row{Bed: b, Transitions: s.machine.Transitions(b.Status, ident.Role)}
		switch b.Status {
		case workflow.BedAvailable:
			summary.Available++
		case workflow.BedOccupied:
			summary.Occupied++
		case workflow.BedMaintenance:
			summary.Maintenance++
		}
	}
	return ScreenData{
		Beds:      rows,
		Summary:   summary,
		CanCreate: policy.CanPerform(ident.Role, policy.CreateBed),
	}, nil
}

// Create adds a bed to the ward.
func (s *Service) Create(ctx context.Context, ident session.Identity, in CreateInput) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.CreateBed) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if in.BedNumber == "" || in.Ward == "" {
		return emptyScreen(), fmt.Errorf("%w: bed number and ward are required", gateway.ErrValidation)
	}
	if _, err := s.repo.Create(ctx, in); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

// SetStatus moves a bed between AVAILABLE, OCCUPIED and MAINTENANCE.
func (s *Service) SetStatus(ctx context.Context, ident session.Identity, id int64, to workflow.Status) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.ChangeBedStatus) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if !s.machine.Valid(to) {
		return emptyScreen(), fmt.Errorf("%w: unknown bed status %q", gateway.ErrValidation, to)
	}

	current, err := s.find(ctx, id)
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

func (s *Service) find(ctx context.Context, id int64) (*Bed, error) {
	beds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range beds {
		if beds[i].ID == id {
			return &beds[i], nil
		}
	}
	return nil, fmt.Errorf("%w: bed %d not found", gateway.ErrValidation, id)
}
