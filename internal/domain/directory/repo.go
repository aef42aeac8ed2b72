package directory

import "context"

// Repository is the hospital API's lookup surface. An empty role on
// Users returns the full staff list.
type Repository interface {
	Departments(ctx context.Context) ([]Department, error)
	Users(ctx context.Context, role string) ([]User, error)
}
