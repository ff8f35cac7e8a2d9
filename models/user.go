package models

import "time"

// DefaultRole is assigned to accounts whose record carries no role.
const DefaultRole = "USER"

// User represents an account record of the lunch-ordering platform.
// It contains identity attributes and the stored credential digest.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the account.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is carried in issued tokens. It is not enforced by the API.
	Role string `json:"role"`

	// CompanyID links the user to the company ordering lunches.
	CompanyID *int64 `json:"companyId"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal returns the authenticated identity view of the account.
func (u User) Principal() Principal {
	role := u.Role
	if role == "" {
		role = DefaultRole
	}

	return Principal{UserID: u.ID, Role: role}
}
