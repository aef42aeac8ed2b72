package patient

import "context"

// Repository is the hospital API's patient surface.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]Patient, error)
	Create(ctx context.Context, in RegisterInput) (*Patient, error)
	Discharge(ctx context.Context, id int64) error
}
