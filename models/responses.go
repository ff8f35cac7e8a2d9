package models

import "time"

// RegisterResponse is returned by POST /register. It never contains the
// password or its digest.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginUser is the account summary embedded in [LoginResponse].
type LoginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
	Token   string    `json:"token"`
}

// UserDetails is the account record as exposed by GET /profile.
type UserDetails struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CompanyID *int64    `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileResponse is returned by GET /profile.
type ProfileResponse struct {
	Message       string      `json:"message"`
	UserFromToken Principal   `json:"userFromToken"`
	UserDetails   UserDetails `json:"userDetails"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewRegisterResponse builds the registration reply from a stored account.
func NewRegisterResponse(u User) RegisterResponse {
	return RegisterResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewUserDetails builds the profile view of a stored account.
func NewUserDetails(u User) UserDetails {
	return UserDetails{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Principal().Role,
		CompanyID: u.CompanyID,
		CreatedAt: u.CreatedAt,
	}
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
