package model

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	Role           Role
}

type UserRepository interface {
	NextID() (int64, error)
	Store(user *User) error
	Find(id int64) (*User, error)
	// FindByLogin matches either username or email.
	FindByLogin(login string) (*User, error)
}

type PasswordManager interface {
	Hash(plainTextPassword string) (string, error)
	Compare(hashedPassword, plainTextPassword string) error
}
