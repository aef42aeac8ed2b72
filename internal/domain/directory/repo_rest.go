package directory

import (
	"context"
	"net/url"

	"github.com/meditrack/console/internal/platform/gateway"
)

type restRepository struct {
	gw *gateway.Client
}

func NewRepository(gw *gateway.Client) Repository {
	return &restRepository{gw: gw}
}

func (r *restRepository) Departments(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := r.gw.Get(ctx, "/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Users(ctx context.Context, role string) ([]User, error) {
	path := "/users"
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}
	var out []User
	if err := r.gw.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
