package prescription

import (
	"context"
	"fmt"

	"github.com/meditrack/console/internal/platform/gateway"
)

type restRepository struct {
	gw *gateway.Client
}

func NewRepository(gw *gateway.Client) Repository {
	return &restRepository{gw: gw}
}

func (r *restRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]Prescription, error) {
	return r.list(ctx, fmt.Sprintf("/prescriptions/doctor/%d", doctorID))
}

func (r *restRepository) ListByNurse(ctx context.Context, nurseID int64) ([]Prescription, error) {
	return r.list(ctx, fmt.Sprintf("/prescriptions/nurse/%d", nurseID))
}

func (r *restRepository) ListByPatient(ctx context.Context, patientID int64) ([]Prescription, error) {
	return r.list(ctx, fmt.Sprintf("/prescriptions/patient/%d", patientID))
}

func (r *restRepository) list(ctx context.Context, path string) ([]Prescription, error) {
	var out []Prescription
	if err := r.gw.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepository) Create(ctx context.Context, in CreateInput, doctorID int64) (*Prescription, error) {
	payload := struct {
		CreateInput
		DoctorID int64 `json:"doctorId"`
	}{CreateInput: in, DoctorID: doctorID}

	var created Prescription
	if err := r.gw.Post(ctx, "/prescriptions", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRepository) Complete(ctx context.Context, id int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/prescriptions/%d/complete", id), nil, nil)
}

func (r *restRepository) Stop(ctx context.Context, id int64) error {
	return r.gw.Put(ctx, fmt.Sprintf("/prescriptions/%d/stop", id), nil, nil)
}
