package dto

import "ticketdesk/internal/domain/user"

// UserResponse is the public account representation.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func NewUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email().String(),
		Role:     u.Role().String(),
	}
}

// LoginResponse carries the minted access token alongside the account.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}
