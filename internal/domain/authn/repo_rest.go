package authn

import (
	"context"

	"github.com/meditrack/console/internal/platform/gateway"
)

type restRepository struct {
	gw *gateway.Client
}

// NewRepository builds the REST-backed auth repository.
func NewRepository(gw *gateway.Client) Repository {
	return &restRepository{gw: gw}
}

func (r *restRepository) Login(ctx context.Context, creds Credentials) (*LoginReply, error) {
	var reply LoginReply
	if err := r.gw.Post(ctx, "/auth/login", creds, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *restRepository) Register(ctx context.Context, in RegisterInput) (*RegisteredUser, error) {
	var user RegisteredUser
	if err := r.gw.Post(ctx, "/auth/register", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
