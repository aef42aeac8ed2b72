package attendance

import "context"

// Repository is the hospital API's attendance surface. A zero userID on
// Report means the full staff report.
type Repository interface {
	Report(ctx context.Context, userID int64) ([]Record, error)
	CheckIn(ctx context.Context, userID int64) error
	CheckOut(ctx context.Context, userID int64) error
}
