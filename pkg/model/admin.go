package model

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminProfile marks a user as a back-office administrator. The presence
// of a profile for a uid is the sole authorization signal; there is no
// separate permission model.
type AdminProfile struct {
	UID         string    `json:"uid" bson:"_id" validate:"required"`
	Email       string    `json:"email" bson:"email" validate:"required,email"`
	DisplayName string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	Role        string    `json:"role" bson:"role" validate:"required,oneof=admin super_admin"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// AdminUser is an identity credential record. It is distinct from
// AdminProfile: holding a credential does not grant admin access.
type AdminUser struct {
	UID          string    `json:"uid" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	DisplayName  string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	Disabled     bool      `json:"disabled" bson:"disabled"`
	Verified     bool      `json:"verified" bson:"verified"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
