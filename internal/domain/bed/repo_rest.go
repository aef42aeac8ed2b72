package bed

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

func (r *restRepository) List(ctx context.Context) ([]Bed, error) {
	var out []Bed
	if err := r.gw.Get(ctx, "/beds", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Create(ctx context.Context, in CreateInput) (*Bed, error) {
	var created Bed
	if err := r.gw.Post(ctx, "/beds", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRepository) SetStatus(ctx context.Context, id int64, status workflow.Status) error {
	q := url.Values{"status": []string{string(status)}}
	return r.gw.Put(ctx, fmt.Sprintf("/beds/%d/status?%s", id, q.Encode()), nil, nil)
}
