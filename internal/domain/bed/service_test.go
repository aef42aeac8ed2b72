package bed

import (
	"context"
	"errors"
	"testing"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
	"github.com/meditrack/console/internal/workflow"
)

type mockRepo struct {
	beds   []Bed
	nextID int64
}

func (m *mockRepo) List(ctx context.Context) ([]Bed, error) {
	return m.beds, nil
}

func (m *mockRepo) Create(ctx context.Context, in CreateInput) (*Bed, error) {
	m.nextID++
	b := Bed{ID: m.nextID, BedNumber: in.BedNumber, Ward: in.Ward, Status: workflow.BedAvailable}
	m.beds = append(m.beds, b)
	return &b, nil
}

func (m *mockRepo) SetStatus(ctx context.Context, id int64, status workflow.Status) error {
	for i := range m.beds {
		if m.beds[i].ID == id {
			m.beds[i].Status = status
		}
	}
	return nil
}

func admin() session.Identity { return session.Identity{ID: 1, Role: policy.RoleAdmin} }
func nurse() session.Identity { return session.Identity{ID: 7, Role: policy.RoleNurse} }

func wardBeds() []Bed {
	return []Bed{
		{ID: 1, BedNumber: "A-101", Ward: "ICU", Status: workflow.BedAvailable},
		{ID: 2, BedNumber: "A-102", Ward: "ICU", Status: workflow.BedOccupied},
		{ID: 3, BedNumber: "B-201", Ward: "General", Status: workflow.BedMaintenance},
		{ID: 4, BedNumber: "B-202", Ward: "General", Status: workflow.BedOccupied},
	}
}

func TestScreen_SummaryCounts(t *testing.T) {
	svc := NewService(&mockRepo{beds: wardBeds()})

	data, err := svc.Screen(context.Background(), nurse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Summary{Available: 1, Occupied: 2, Maintenance: 1}
	if data.Summary != want {
		t.Errorf("expected %+v, got %+v", want, data.Summary)
	}
}

func TestScreen_EveryRowOffersTheOtherTwoStates(t *testing.T) {
	svc := NewService(&mockRepo{beds: wardBeds()})

	data, err := svc.Screen(context.Background(), nurse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range data.Beds {
		if len(row.Transitions) != 2 {
			t.Errorf("bed %s in %s: expected 2 controls, got %v", row.BedNumber, row.Status, row.Transitions)
		}
		for _, target := range row.Transitions {
			if target == row.Status {
				t.Errorf("bed %s: self transition offered", row.BedNumber)
			}
		}
	}
}

func TestScreen_OnlyAdminCanCreate(t *testing.T) {
	svc := NewService(&mockRepo{})

	if data, _ := svc.Screen(context.Background(), admin()); !data.CanCreate {
		t.Error("admin can add beds")
	}
	if data, _ := svc.Screen(context.Background(), nurse()); data.CanCreate {
		t.Error("nurse cannot add beds")
	}
}

func TestCreate_DeniedForNurse(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Create(context.Background(), nurse(), CreateInput{BedNumber: "C-1", Ward: "ICU"})
	if !errors.Is(err, policy.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
}

func TestCreate_NewBedStartsAvailable(t *testing.T) {
	svc := NewService(&mockRepo{})

	data, err := svc.Create(context.Background(), admin(), CreateInput{BedNumber: "C-1", Ward: "ICU"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Beds) != 1 || data.Beds[0].Status != workflow.BedAvailable {
		t.Errorf("unexpected screen: %+v", data.Beds)
	}
	if data.Summary.Available != 1 {
		t.Errorf("summary not refreshed: %+v", data.Summary)
	}
}

func TestCreate_RequiresNumberAndWard(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Create(context.Background(), admin(), CreateInput{BedNumber: "C-1"})
	if !errors.Is(err, gateway.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSetStatus_NurseMayMoveBeds(t *testing.T) {
	svc := NewService(&mockRepo{beds: wardBeds()})

	data, err := svc.SetStatus(context.Background(), nurse(), 1, workflow.BedOccupied)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Beds[0].Status != workflow.BedOccupied {
		t.Errorf("expected occupied, got %s", data.Beds[0].Status)
	}
	if data.Summary.Occupied != 3 || data.Summary.Available != 0 {
		t.Errorf("summary not refreshed: %+v", data.Summary)
	}
}

func TestSetStatus_DeniedForDoctor(t *testing.T) {
	svc := NewService(&mockRepo{beds: wardBeds()})

	// The doctor's menu has no beds screen; bed status follows that.
	doctor := session.Identity{ID: 2, Role: policy.RoleDoctor}
	_, err := svc.SetStatus(context.Background(), doctor, 1, workflow.BedOccupied)
	if !errors.Is(err, policy.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&mockRepo{beds: wardBeds()})
	_, err := svc.SetStatus(context.Background(), admin(), 1, workflow.Status("RESERVED"))
	if !errors.Is(err, gateway.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSetStatus_SelfTransitionRejected(t *testing.T) {
	svc := NewService(&mockRepo{beds: wardBeds()})
	_, err := svc.SetStatus(context.Background(), admin(), 2, workflow.BedOccupied)
	if !errors.Is(err, workflow.ErrIllegalTransition) {
		t.Fatalf("occupied to occupied is not an edge, got %v", err)
	}
}
