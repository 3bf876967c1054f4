package models

import "time"

// Account roles. Admins manage the approval queue; department accounts
// submit booking requests.
const (
	RoleAdmin      = "ADMIN"
	RoleDepartment = "DEPARTMENT"
)

// User is an admin or department account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "ADMIN" or department name
	Department   string    `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
