package prescription

import "context"

// Repository is the hospital API's prescription surface. Lists are always
// scoped to a person; there is no unscoped prescription feed.
type Repository interface {
	ListByDoctor(ctx context.Context, doctorID int64) ([]Prescription, error)
	ListByNurse(ctx context.Context, nurseID int64) ([]Prescription, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Prescription, error)
	Create(ctx context.Context, in CreateInput, doctorID int64) (*Prescription, error)
	Complete(ctx context.Context, id int64) error
	Stop(ctx context.Context, id int64) error
}
