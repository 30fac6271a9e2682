package model

import "time"

// Role controls access to the staff surfaces.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleKitchen  Role = "kitchen"
	RoleManager  Role = "manager"
)

// User describes a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// DisplayName is the customer name stamped onto orders; accounts without
// a name fall back to their email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
