package model

import "time"

// User represents a registered account in the database.
// PasswordHash never appears in API responses; use ToResponse.
type User struct {
	UserID       string    `json:"userId"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	PhoneNo      string    `json:"phoneNo"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignupRequest represents a registration request.
type SignupRequest struct {
	UserID          string `json:"userId"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNo         string `json:"phoneNo"`
	Email           string `json:"email"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// ModifyUserRequest represents a profile update request. Password is the
// current password and is always required for verification. The remaining
// fields are optional: blank or omitted values leave the stored value
// untouched.
type ModifyUserRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
	Username    string `json:"username"`
	PhoneNo     string `json:"phoneNo"`
	Email       string `json:"email"`
}

// PasswordRequest carries the password confirmation for account deletion.
type PasswordRequest struct {
	Password string `json:"password"`
}

// UserResponse represents account data safe for API responses.
type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	PhoneNo   string    `json:"phoneNo"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse strips the password hash from a User.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		PhoneNo:   u.PhoneNo,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
