package authn

import "context"

// Repository is the hospital API's auth surface. Neither call carries a
// bearer token; these are the only unauthenticated operations.
type Repository interface {
	Login(ctx context.Context, creds Credentials) (*LoginReply, error)
	Register(ctx context.Context, in RegisterInput) (*RegisteredUser, error)
}
