package model

type UserRegistered struct {
	UserID   int64
	Username string
	Role     Role
}

func (e UserRegistered) Type() string { return "UserRegistered" }
