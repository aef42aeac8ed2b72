package attendance

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

func (r *restRepository) Report(ctx context.Context, userID int64) ([]Record, error) {
	path := "/attendance/report"
	if userID != 0 {
		path = fmt.Sprintf("/attendance/report?userId=%d", userID)
	}
	var out []Record
	if err := r.gw.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) CheckIn(ctx context.Context, userID int64) error {
	return r.gw.Post(ctx, fmt.Sprintf("/attendance/checkin/%d", userID), nil, nil)
}

func (r *restRepository) CheckOut(ctx context.Context, userID int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/attendance/checkout/%d", userID), nil, nil)
}
