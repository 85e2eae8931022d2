package service

import (
	"errors"

	"storefront/pkg/common/domain"
	"storefront/pkg/user/domain/model"
)

var ErrMissingFields = errors.New("username, email and password are required")

type UserService interface {
	Register(username, email, password string, role model.Role) (*model.User, error)
	Authenticate(login, password string) (*model.User, error)
}

func NewUserService(repo model.UserRepository, passwords model.PasswordManager, dispatcher domain.EventDispatcher) UserService {
	return &userService{repo: repo, passwords: passwords, dispatcher: dispatcher}
}

type userService struct {
	repo       model.UserRepository
	passwords  model.PasswordManager
	dispatcher domain.EventDispatcher
}

func (s *userService) Register(username, email, password string, role model.Role) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	switch role {
	case "":
		role = model.RoleCustomer
	case model.RoleAdmin, model.RoleCustomer:
	default:
		return nil, model.ErrInvalidRole
	}

	if _, err := s.repo.FindByLogin(username); err == nil {
		return nil, model.ErrUserAlreadyExists
	}
	if _, err := s.repo.FindByLogin(email); err == nil {
		return nil, model.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwords.Hash(password)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:             id,
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           role,
	}

	if err := s.repo.Store(user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserRegistered{UserID: id, Username: username, Role: role})
	return user, nil
}

func (s *userService) Authenticate(login, password string) (*model.User, error) {
	user, err := s.repo.FindByLogin(login)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}
