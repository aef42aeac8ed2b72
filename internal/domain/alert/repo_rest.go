package alert

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

func (r *restRepository) List(ctx context.Context) ([]Alert, error) {
	var out []Alert
	if err := r.gw.Get(ctx, "/alerts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Create(ctx context.Context, in CreateInput) (*Alert, error) {
	var created Alert
	if err := r.gw.Post(ctx, "/alerts", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRepository) Resolve(ctx context.Context, id int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/alerts/%d/resolve", id), nil, nil)
}
