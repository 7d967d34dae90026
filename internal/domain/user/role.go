package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role distinguishes plain guests from venue managers. Managers can inspect
// the booking schedule of venues; everything else is open to any
// authenticated user.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleManager Role = "venue_manager"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleManager:
		return true
	default:
		return false
	}
}
