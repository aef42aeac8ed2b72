package attendance

import (
	"context"

	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
)

// Service drives the attendance screen. Admins read the full staff
// report; everyone else sees their own records, and check-in and
// check-out are strictly self service.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Screen builds the attendance report for the viewer.
func (s *Service) Screen(ctx context.Context, ident session.Identity) (ScreenData, error) {
	userID := ident.ID
	if ident.Role == policy.RoleAdmin {
		userID = 0
	}

	records, err := s.repo.Report(ctx, userID)
	if err != nil {
		return emptyScreen(), err
	}

	var summary Summary
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			summary.Present++
		case StatusAbsent:
			summary.Absent++
		case StatusLate:
			summary.Late++
		case StatusHalfDay:
			summary.HalfDay++
		}
	}
	if records == nil {
		records = []Record{}
	}
	return ScreenData{
		Records: records,
		Summary: summary,
		CanMark: policy.CanPerform(ident.Role, policy.MarkAttendance),
	}, nil
}

// CheckIn records the start of the caller's shift. Marking attendance for
// anyone else is rejected regardless of role.
func (s *Service) CheckIn(ctx context.Context, ident session.Identity, userID int64) (ScreenData, error) {
	if err := s.authorizeSelf(ident, userID); err != nil {
		return emptyScreen(), err
	}
	if err := s.repo.CheckIn(ctx, userID); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

// CheckOut records the end of the caller's shift.
func (s *Service) CheckOut(ctx context.Context, ident session.Identity, userID int64) (ScreenData, error) {
	if err := s.authorizeSelf(ident, userID); err != nil {
		return emptyScreen(), err
	}
	if err := s.repo.CheckOut(ctx, userID); err != nil {
		return emptyScreen(), err
	}
	return s.Screen(ctx, ident)
}

func (s *Service) authorizeSelf(ident session.Identity, userID int64) error {
	if !policy.CanPerform(ident.Role, policy.MarkAttendance) {
		return policy.ErrNotAllowed
	}
	if userID != ident.ID {
		return policy.ErrNotAllowed
	}
	return nil
}
