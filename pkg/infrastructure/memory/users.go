package memory

import (
	"sync"

	"github.com/pkg/errors"

	"storefront/pkg/user/domain/model"
)

type UserStore struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]*model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]*model.User)}
}

func (s *UserStore) NextID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}

func (s *UserStore) Store(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *UserStore) Find(id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrUserNotFound, "user %d", id)
	}
	clone := *user
	return &clone, nil
}

func (s *UserStore) FindByLogin(login string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == login || user.Email == login {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.Wrapf(model.ErrUserNotFound, "user %q", login)
}
