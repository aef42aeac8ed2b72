package appointment

import (
	"context"
	"fmt"
	"net/url"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/workflow"
)

type restRepository struct {
	gw *gateway.Client
}

func NewRepository(gw *gateway.Client) Repository {
	return &restRepository{gw: gw}
}

func (r *restRepository) List(ctx context.Context) ([]Appointment, error) {
	var out []Appointment
	if err := r.gw.Get(ctx, "/appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]Appointment, error) {
	var out []Appointment
	if err := r.gw.Get(ctx, fmt.Sprintf("/appointments/doctor/%d", doctorID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Create(ctx context.Context, in BookInput) (*Appointment, error) {
	var created Appointment
	if err := r.gw.Post(ctx, "/appointments", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRepository) SetStatus(ctx context.Context, id int64, status workflow.Status) error {
	q := url.Values{"status": []string{string(status)}}
	return r.gw.Put(ctx, fmt.Sprintf("/appointments/%d/status?%s", id, q.Encode()), nil, nil)
}
