package bed

import (
	"context"

	"github.com/meditrack/console/internal/workflow"
)

// Repository is the hospital API's bed surface.
type Repository interface {
	List(ctx context.Context) ([]Bed, error)
	Create(ctx context.Context, in CreateInput) (*Bed, error)
	SetStatus(ctx context.Context, id int64, status workflow.Status) error
}
