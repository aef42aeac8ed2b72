package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
)

type mockRepo struct {
	records   map[int64][]Record
	all       []Record
	checkIns  []int64
	checkOuts []int64
}

func (m *mockRepo) Report(ctx context.Context, userID int64) ([]Record, error) {
	if userID == 0 {
		return m.all, nil
	}
	return m.records[userID], nil
}

func (m *mockRepo) CheckIn(ctx context.Context, userID int64) error {
	m.checkIns = append(m.checkIns, userID)
	return nil
}

func (m *mockRepo) CheckOut(ctx context.Context, userID int64) error {
	m.checkOuts = append(m.checkOuts, userID)
	return nil
}

func nurse() session.Identity        { return session.Identity{ID: 7, Role: policy.RoleNurse} }
func admin() session.Identity        { return session.Identity{ID: 1, Role: policy.RoleAdmin} }
func receptionist() session.Identity { return session.Identity{ID: 4, Role: policy.RoleReceptionist} }

func TestScreen_AdminSeesFullReportWithSummary(t *testing.T) {
	repo := &mockRepo{all: []Record{
		{ID: 1, Status: StatusPresent},
		{ID: 2, Status: StatusPresent},
		{ID: 3, Status: StatusLate},
		{ID: 4, Status: StatusAbsent},
		{ID: 5, Status: StatusHalfDay},
	}}
	svc := NewService(repo)

	data, err := svc.Screen(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Summary{Present: 2, Absent: 1, Late: 1, HalfDay: 1}
	if data.Summary != want {
		t.Errorf("expected %+v, got %+v", want, data.Summary)
	}
	if data.CanMark {
		t.Error("admin does not check in through the console")
	}
}

func TestScreen_NurseSeesOwnRecordsOnly(t *testing.T) {
	repo := &mockRepo{
		all:     []Record{{ID: 1}, {ID: 2}, {ID: 3}},
		records: map[int64][]Record{7: {{ID: 3, User: Person{ID: 7}, Status: StatusPresent}}},
	}
	svc := NewService(repo)

	data, err := svc.Screen(context.Background(), nurse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Records) != 1 || data.Records[0].User.ID != 7 {
		t.Errorf("expected own records only, got %+v", data.Records)
	}
	if !data.CanMark {
		t.Error("nurse checks in through the console")
	}
}

func TestCheckIn_SelfSucceeds(t *testing.T) {
	repo := &mockRepo{records: map[int64][]Record{7: {{ID: 1, User: Person{ID: 7}, Status: StatusPresent}}}}
	svc := NewService(repo)

	data, err := svc.CheckIn(context.Background(), nurse(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.checkIns) != 1 || repo.checkIns[0] != 7 {
		t.Errorf("expected check-in for user 7, got %v", repo.checkIns)
	}
	if len(data.Records) != 1 {
		t.Errorf("expected refreshed report, got %+v", data.Records)
	}
}

func TestCheckIn_OtherUserRejected(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.CheckIn(context.Background(), nurse(), 8)
	if !errors.Is(err, policy.ErrNotAllowed) {
		t.Fatalf("check-in is self only, got %v", err)
	}
	if len(repo.checkIns) != 0 {
		t.Error("rejected check-in must not reach the hospital API")
	}
}

func TestCheckIn_DeniedForReceptionist(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.CheckIn(context.Background(), receptionist(), 4)
	if !errors.Is(err, policy.ErrNotAllowed) {
		t.Fatalf("receptionist does not mark attendance, got %v", err)
	}
}

func TestCheckOut_SelfOnly(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	if _, err := svc.CheckOut(context.Background(), nurse(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CheckOut(context.Background(), nurse(), 9); !errors.Is(err, policy.ErrNotAllowed) {
		t.Fatalf("check-out is self only, got %v", err)
	}
	if len(repo.checkOuts) != 1 || repo.checkOuts[0] != 7 {
		t.Errorf("expected one check-out for user 7, got %v", repo.checkOuts)
	}
}

func TestScreen_EmptyReportKeepsShape(t *testing.T) {
	svc := NewService(&mockRepo{})
	data, err := svc.Screen(context.Background(), nurse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Records == nil {
		t.Error("records must be an empty slice, not nil")
	}
}
