package policy

import "fmt"

// Role is the closed set of staff roles recognised by the console. The
// hospital API transmits roles as upper-case strings; anything outside this
// set is rejected at login.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleDoctor        Role = "DOCTOR"
	RoleNurse         Role = "NURSE"
	RoleReceptionist  Role = "RECEPTIONIST"
	RoleLabTechnician Role = "LAB_TECHNICIAN"
)

// Roles lists every known role, in registration-form order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RoleLabTechnician}
}

// ParseRole validates a wire-format role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RoleLabTechnician:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}
