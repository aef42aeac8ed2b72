package bed

import "github.com/meditrack/console/internal/workflow"

// Bed mirrors the hospital API's bed record.
type Bed struct {
	ID        int64           `json:"id"`
	BedNumber string          `json:"bedNumber"`
	Ward      string          `json:"ward"`
	Status    workflow.Status `json:"status"`
}

// CreateInput is the new-bed form.
type CreateInput struct {
	BedNumber string `json:"bedNumber"`
	Ward      string `json:"ward"`
}

// Row is one bed plus the status controls the viewer may use.
type Row struct {
	Bed
	Transitions []workflow.Status `json:"transitions"`
}

// Summary counts beds per status for the header cards.
type Summary struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

// ScreenData is the beds screen payload.
type ScreenData struct {
	Beds      []Row   `json:"beds"`
	Summary   Summary `json:"summary"`
	CanCreate bool    `json:"canCreate"`
}

func emptyScreen() ScreenData {
	return ScreenData{Beds: []Row{}}
}
