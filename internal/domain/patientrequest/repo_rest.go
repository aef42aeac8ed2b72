package patientrequest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/meditrack/console/internal/platform/gateway"
)

type restRepository struct {
	gw *gateway.Client
}

func NewRepository(gw *gateway.Client) Repository {
	return &restRepository{gw: gw}
}

func (r *restRepository) List(ctx context.Context, f Filter) ([]Request, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DoctorID != 0 {
		q.Set("doctorId", strconv.FormatInt(f.DoctorID, 10))
	}
	path := "/patient-requests"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Request
	if err := r.gw.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Create(ctx context.Context, in FileInput, doctorID int64) (*Request, error) {
	payload := struct {
		FileInput
		RequestedByDoctorID int64 `json:"requestedByDoctorId"`
	}{FileInput: in, RequestedByDoctorID: doctorID}

	var created Request
	if err := r.gw.Post(ctx, "/patient-requests", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRepository) Approve(ctx context.Context, id int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/patient-requests/%d/approve", id), nil, nil)
}

func (r *restRepository) Reject(ctx context.Context, id int64, remarks string) error {
	payload := map[string]string{"remarks": remarks}
	return r.gw.Put(ctx, fmt.Sprintf("/patient-requests/%d/reject", id), payload, nil)
}

func (r *restRepository) MarkRegistered(ctx context.Context, id int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/patient-requests/%d/registered", id), nil, nil)
}
