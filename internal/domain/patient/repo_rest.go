package patient

import (
	"context"
	"fmt"

	"github.com/meditrack/console/internal/platform/gateway"
)

type restRepository struct {
	gw *gateway.Client
}

func NewRepository(gw *gateway.Client) Repository {
	return &restRepository{gw: gw}
}

func (r *restRepository) List(ctx context.Context) ([]Patient, error) {
	var out []Patient
	if err := r.gw.Get(ctx, "/patients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]Patient, error) {
	var out []Patient
	if err := r.gw.Get(ctx, fmt.Sprintf("/patients/doctor/%d", doctorID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Create(ctx context.Context, in RegisterInput) (*Patient, error) {
	var created Patient
	if err := r.gw.Post(ctx, "/patients", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRepository) Discharge(ctx context.Context, id int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/patients/%d/discharge", id), nil, nil)
}
