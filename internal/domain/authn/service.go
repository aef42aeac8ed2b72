package authn

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/meditrack/console/internal/platform/gateway"
	"github.com/meditrack/console/internal/platform/session"
	"github.com/meditrack/console/internal/policy"
)

// Service handles the session lifecycle: login exchanges credentials for
// a hospital API token and materializes a console session, logout drops
// it wholly. Sessions are replaced, never mutated in place.
type Service struct {
	repo  Repository
	store session.Store
	ttl   time.Duration
}

func NewService(repo Repository, store session.Store, ttl time.Duration) *Service {
	return &Service{repo: repo, store: store, ttl: ttl}
}

// Login authenticates against the hospital API and stores a new session.
func (s *Service) Login(ctx context.Context, creds Credentials) (*session.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", gateway.ErrValidation)
	}

	reply, err := s.repo.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	role, err := policy.ParseRole(reply.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
	}

	sess := session.New(session.Identity{
		ID:         reply.ID,
		Name:       reply.Name,
		Email:      reply.Email,
		Role:       role,
		Department: reply.Department,
		Shift:      reply.Shift,
	}, reply.Token, s.ttl)

	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

// Logout deletes the session. Idempotent: logging out twice is not an
// error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// Register creates a staff account through the hospital API. The form is
// validated here so obvious mistakes never leave the console.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisteredUser, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", gateway.ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", gateway.ErrValidation)
	}
	if _, err := policy.ParseRole(in.Role); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
	}
	return s.repo.Register(ctx, in)
}

// Profile is the shape of GET /auth/me: the identity plus the screens its
// role may open, so the shell renders the menu without a second call.
type Profile struct {
	User session.Identity `json:"user"`
	Menu []policy.Screen  `json:"menu"`
}

// Me returns the profile for the resolved session.
func (s *Service) Me(sess *session.Session) Profile {
	return Profile{
		User: sess.User,
		Menu: policy.MenuFor(sess.User.Role),
	}
}
