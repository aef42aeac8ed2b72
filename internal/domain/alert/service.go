package alert

import (
	"context"
	"fmt"
	"slices"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

// Service drives the alerts screen. Alerts belong to the admin: creation
// and the one-way resolve are both admin actions.
type Service struct {
	repo    Repository
	machine *workflow.Machine
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, machine: workflow.NewAlert()}
}

// Screen builds the alerts screen with the open-alert count.
func (s *Service) Screen(ctx context.Context, ident session.Identity) (ScreenData, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		return emptyScreen(), err
	}

	open := 0
	rows := make([]Row, len(alerts))
	for i, a := range alerts {
		if !a.Resolved {
			open++
		}
		rows[i] = Row{
			Alert:      a,
			CanResolve: s.machine.CanTransition(a.Status(), workflow.AlertResolved, ident.Role),
		}
	}
	return ScreenData{
		Alerts:    rows,
		Open:      open,
		CanCreate: policy.CanPerform(ident.Role, policy.CreateAlert),
	}, nil
}

// Create raises a manual alert.
func (s *Service) Create(ctx context.Context, ident session.Identity, in CreateInput) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.CreateAlert) {
		return emptyScreen(), policy.ErrNotAllowed
	}
	if !slices.Contains(Types(), in.Type) {
		return emptyScreen(), fmt.Errorf("%w: unknown alert type %q", gateway.ErrValidation, in.Type)
	}
	if !slices.Contains(Severities(), in.Severity) {
		return emptyScreen(), fmt.Errorf("%w: unknown severity %q", gateway.ErrValidation, in.Severity)
	}
	if in.Message == "" {
		return emptyScreen(), fmt.Errorf("%w: a message is required", gateway.ErrValidation)
	}

	if _, err := s.repo.Create(ctx, in); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

// Resolve closes an open alert. Resolving twice is an illegal transition,
// so a double-clicked resolve button sends one call to the hospital API.
func (s *Service) Resolve(ctx context.Context, ident session.Identity, id int64) (ScreenData, error) {
	if !policy.CanPerform(ident.Role, policy.ResolveAlert) {
		return emptyScreen(), policy.ErrNotAllowed
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return emptyScreen(), err
	}
	if err := s.machine.Check(current.Status(), workflow.AlertResolved, ident.Role); err != nil {
		return emptyScreen(), err
	}

	if err := s.repo.Resolve(ctx, id); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

func (s *Service) find(ctx context.Context, id int64) (*Alert, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range alerts {
		if alerts[i].ID == id {
			return &alerts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: alert %d not found", gateway.ErrValidation, id)
}
