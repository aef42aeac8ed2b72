package directory

import (
	"context"
	"fmt"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/policy"
)

// Service serves the lookup lists behind form pickers. These are plain
// reads with no workflow; the only validation is on the role filter.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Departments(ctx context.Context) ([]Department, error) {
	departments, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []Department{}
	}
	return departments, nil
}

func (s *Service) Users(ctx context.Context, role string) ([]User, error) {
	if role != "" {
		if _, err := policy.ParseRole(role); err != nil {
			return nil, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
		}
	}
	users, err := s.repo.Users(ctx, role)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}
