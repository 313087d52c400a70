package services

import "garagepro-backend/models"

// ActingUser is the authenticated identity performing an operation. It is
// passed explicitly into every service call; nothing reads identity from
// ambient request state.
type ActingUser struct {
	ID    uint
	Role  string
	Email string
}

func (a ActingUser) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
