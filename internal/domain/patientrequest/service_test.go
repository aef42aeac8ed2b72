package patientrequest

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
	requests []Request
	nextID   int64
}

func (m *mockRepo) List(ctx context.Context, f Filter) ([]Request, error) {
	var out []Request
	for _, r := range m.requests {
		if f.Status != "" && string(r.Status) != f.Status {
			continue
		}
		if f.DoctorID != 0 && r.RequestedByDoctorID != f.DoctorID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) Create(ctx context.Context, in FileInput, doctorID int64) (*Request, error) {
	m.nextID++
	r := Request{
		ID: m.nextID, PatientName: in.PatientName, Age: in.Age, Gender: in.Gender,
		RequestedByDoctorID: doctorID, Status: workflow.RequestPending,
	}
	m.requests = append(m.requests, r)
	return &r, nil
}

func (m *mockRepo) setStatus(id int64, status workflow.Status) {
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
		}
	}
}

func (m *mockRepo) Approve(ctx context.Context, id int64) error {
	m.setStatus(id, workflow.RequestApproved)
	return nil
}

func (m *mockRepo) Reject(ctx context.Context, id int64, remarks string) error {
	m.setStatus(id, workflow.RequestRejected)
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Remarks = remarks
		}
	}
	return nil
}

func (m *mockRepo) MarkRegistered(ctx context.Context, id int64) error {
	m.setStatus(id, workflow.RequestRegistered)
	return nil
}

func receptionist() session.Identity { return session.Identity{ID: 4, Role: policy.RoleReceptionist} }
func doctor() session.Identity       { return session.Identity{ID: 2, Role: policy.RoleDoctor} }

func pendingRequest(doctorID int64) Request {
	return Request{ID: 1, PatientName: "P", Age: 50, RequestedByDoctorID: doctorID, Status: workflow.RequestPending}
}

func TestScreen_DoctorSeesOwnRequestsWithoutProcessingControls(t *testing.T) {
	repo := &mockRepo{requests: []Request{
		pendingRequest(2),
		{ID: 2, PatientName: "Q", RequestedByDoctorID: 9, Status: workflow.RequestPending},
	}}
	svc := NewService(repo)

	data, err := svc.Screen(context.Background(), doctor(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Requests) != 1 || data.Requests[0].RequestedByDoctorID != 2 {
		t.Errorf("doctor must only see own requests, got %+v", data.Requests)
	}
	if !data.CanFile {
		t.Error("doctor can file requests")
	}
	if len(data.Requests[0].Transitions) != 0 {
		t.Errorf("doctor cannot process requests, got controls %v", data.Requests[0].Transitions)
	}
}

func TestScreen_ReceptionistSeesProcessingControls(t *testing.T) {
	repo := &mockRepo{requests: []Request{pendingRequest(2)}}
	svc := NewService(repo)

	data, err := svc.Screen(context.Background(), receptionist(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.CanFile {
		t.Error("receptionist cannot file requests")
	}
	got := data.Requests[0].Transitions
	if len(got) != 2 || got[0] != workflow.RequestApproved || got[1] != workflow.RequestRejected {
		t.Errorf("pending request: expected approve and reject controls, got %v", got)
	}
}

func TestScreen_StatusFilter(t *testing.T) {
	repo := &mockRepo{requests: []Request{
		pendingRequest(2),
		{ID: 2, Status: workflow.RequestApproved, RequestedByDoctorID: 2},
	}}
	svc := NewService(repo)

	data, err := svc.Screen(context.Background(), receptionist(), "APPROVED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Requests) != 1 || data.Requests[0].Status != workflow.RequestApproved {
		t.Errorf("expected only approved requests, got %+v", data.Requests)
	}
}

func TestFile_DeniedForReceptionist(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.File(context.Background(), receptionist(), FileInput{PatientName: "P", Age: 30})
	if !errors.Is(err, policy.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
}

func TestFile_StampsRequestingDoctor(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	data, err := svc.File(context.Background(), doctor(), FileInput{PatientName: "P", Age: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Requests) != 1 {
		t.Fatalf("expected refreshed queue with one request, got %+v", data.Requests)
	}
	req := data.Requests[0]
	if req.RequestedByDoctorID != 2 || req.Status != workflow.RequestPending {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestApprove_PendingRequest(t *testing.T) {
	repo := &mockRepo{requests: []Request{pendingRequest(2)}}
	svc := NewService(repo)

	data, err := svc.Approve(context.Background(), receptionist(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := data.Requests[0]
	if req.Status != workflow.RequestApproved {
		t.Errorf("expected approved, got %s", req.Status)
	}
	if got := req.Transitions; len(got) != 1 || got[0] != workflow.RequestRegistered {
		t.Errorf("approved request: expected registered control only, got %v", got)
	}
}

func TestReject_RequiresRemarks(t *testing.T) {
	repo := &mockRepo{requests: []Request{pendingRequest(2)}}
	svc := NewService(repo)

	_, err := svc.Reject(context.Background(), receptionist(), 1, "   ")
	if !errors.Is(err, gateway.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.requests[0].Status != workflow.RequestPending {
		t.Error("request must stay pending when remarks are missing")
	}
}

func TestReject_RecordsRemarks(t *testing.T) {
	repo := &mockRepo{requests: []Request{pendingRequest(2)}}
	svc := NewService(repo)

	data, err := svc.Reject(context.Background(), receptionist(), 1, "duplicate of request 12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := data.Requests[0]
	if req.Status != workflow.RequestRejected || req.Remarks != "duplicate of request 12" {
		t.Errorf("unexpected request: %+v", req)
	}
	if len(req.Transitions) != 0 {
		t.Error("rejected is terminal, expected no controls")
	}
}

func TestMarkRegistered_OnlyFromApproved(t *testing.T) {
	repo := &mockRepo{requests: []Request{pendingRequest(2)}}
	svc := NewService(repo)

	if _, err := svc.MarkRegistered(context.Background(), receptionist(), 1); !errors.Is(err, workflow.ErrIllegalTransition) {
		t.Fatalf("pending request cannot skip to registered, got %v", err)
	}

	repo.setStatus(1, workflow.RequestApproved)
	data, err := svc.MarkRegistered(context.Background(), receptionist(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Requests[0].Status != workflow.RequestRegistered {
		t.Errorf("expected registered, got %s", data.Requests[0].Status)
	}
}

func TestMarkRegistered_FiresRegisteredHook(t *testing.T) {
	repo := &mockRepo{requests: []Request{{ID: 1, PatientName: "P", Status: workflow.RequestApproved}}}
	svc := NewService(repo)

	fired := 0
	svc.OnRegistered(func() { fired++ })

	if _, err := svc.MarkRegistered(context.Background(), receptionist(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fired != 1 {
		t.Errorf("expected registered hook to fire once, fired %d times", fired)
	}
}

func TestMarkRegistered_FailedTransitionDoesNotFireHook(t *testing.T) {
	repo := &mockRepo{requests: []Request{{ID: 1, Status: workflow.RequestRejected}}}
	svc := NewService(repo)

	fired := 0
	svc.OnRegistered(func() { fired++ })

	if _, err := svc.MarkRegistered(context.Background(), receptionist(), 1); !errors.Is(err, workflow.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if fired != 0 {
		t.Error("hook must not fire on a rejected transition")
	}
}
