package user

import "time"

type Credentials struct {
	Email    string `json:"email" format:"email" doc:"Электронная почта"`
	Password string `json:"password" minLength:"1" doc:"Пароль"`
}

type credentialsInput struct {
	Body Credentials
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// SessionResponse - выданная сессия вместе с её владельцем.
type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type sessionOutput struct {
	Body SessionResponse
}

type userOutput struct {
	Body UserResponse
}

type logoutOutput struct{}
