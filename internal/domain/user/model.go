package user

import "time"

type User struct {
	ID        string
	Email     string
	Password  string // хэш
	AvatarURL string
	CreatedAt time.Time
}
