package domain

import "errors"

var (
	MessageSuccessLogin = "login successful"
	MessageSuccessGetMe = "success get user"

	MessageFailedLogin = "failed to login"
	MessageFailedGetMe = "failed to get user"

	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrOAuthExchange      = errors.New("failed to exchange authorization code")
	ErrOAuthProfile       = errors.New("failed to fetch user profile")
	ErrEmailNotVerified   = errors.New("email address is not verified")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	GoogleProfile struct {
		Subject       string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url,omitempty"`
		Role      string `json:"role"`
	}
)
