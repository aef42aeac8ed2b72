package gateway

import "context"

type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a context carrying the hospital API bearer token of
// the signed-in user. The session middleware attaches it once per request
// so repositories stay context-first.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the bearer token stored in ctx, or "" when the
// request is unauthenticated (login and register).
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
