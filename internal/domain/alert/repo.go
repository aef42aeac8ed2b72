package alert

import "context"

// Repository is the hospital API's alert surface.
type Repository interface {
	List(ctx context.Context) ([]Alert, error)
	Create(ctx context.Context, in CreateInput) (*Alert, error)
	Resolve(ctx context.Context, id int64) error
}
