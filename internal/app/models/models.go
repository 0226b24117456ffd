package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin     RoleType = "ADMIN"
	RoleCounselor RoleType = "COUNSELOR"
	RoleStudent   RoleType = "STUDENT"
)

// Label returns the lowercase role string used on the login wire format.
func (r RoleType) Label() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleCounselor:
		return "counselor"
	case RoleStudent:
		return "student"
	}
	return ""
}
