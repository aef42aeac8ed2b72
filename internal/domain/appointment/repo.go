package appointment

import (
	"context"

	"github.com/meditrack/console/internal/workflow"
)

// Repository is the hospital API's appointment surface.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]Appointment, error)
	Create(ctx context.Context, in BookInput) (*Appointment, error)
	SetStatus(ctx context.Context, id int64, status workflow.Status) error
}
