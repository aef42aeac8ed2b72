package attendance

// Attendance statuses are derived by the hospital API from check-in and
// check-out times; the console never sets them directly, so there is no
// workflow machine here.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
)

// Person is the staff member a record belongs to.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Record mirrors the hospital API's attendance record.
type Record struct {
	ID       int64  `json:"id"`
	User     Person `json:"user"`
	Date     string `json:"date"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Status   string `json:"status"`
}

// Summary counts records per status for the header cards.
type Summary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
}

// ScreenData is the attendance screen payload.
type ScreenData struct {
	Records []Record `json:"records"`
	Summary Summary  `json:"summary"`
	CanMark bool     `json:"canMark"`
}

func emptyScreen() ScreenData {
	return ScreenData{Records: []Record{}}
}
