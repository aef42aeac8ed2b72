package patientrequest

import "context"

// Filter narrows the request list. Zero values mean no filtering.
type Filter struct {
	Status   string
	DoctorID int64
}

// Repository is the hospital API's patient-request surface.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Request, error)
	Create(ctx context.Context, in FileInput, doctorID int64) (*Request, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, remarks string) error
	MarkRegistered(ctx context.Context, id int64) error
}
