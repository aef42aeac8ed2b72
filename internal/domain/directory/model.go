package directory

// Department is a hospital department as offered in registration and
// booking forms.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is the abbreviated staff record used to fill doctor and nurse
// pickers.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	DepartmentID int64  `json:"departmentId,omitempty"`
}
