package authn

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput mirrors the hospital API's staff registration payload.
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
	DepartmentID int64  `json:"departmentId"`
	Shift        string `json:"shift"`
}

// LoginReply is what the hospital API returns on a successful login.
type LoginReply struct {
	Token      string `json:"token"`
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Shift      string `json:"shift,omitempty"`
}

// RegisteredUser is the created staff record echoed back by register.
type RegisteredUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
