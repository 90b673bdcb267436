package session

import (
	"context"
	"crypto/subtle"
	"errors"

	"myshop/internal/storage"
)

var ErrWrongPassword = errors.New("wrong password")

// Manager gates access to the shop data behind a single shared secret.
// A successful login persists the auth flag; absence or falsity of the
// flag means the data must not be served.
type Manager struct {
	storage  storage.Storage
	password string
}

func NewManager(storage storage.Storage, password string) *Manager {
	return &Manager{
		storage:  storage,
		password: password,
	}
}

func (m *Manager) Login(ctx context.Context, password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return ErrWrongPassword
	}

	return m.storage.Save(ctx, storage.KeyAuth, []byte("true"))
}

func (m *Manager) Logout(ctx context.Context) error {
	return m.storage.Delete(ctx, storage.KeyAuth)
}

func (m *Manager) Active(ctx context.Context) (bool, error) {
	data, err := m.storage.Load(ctx, storage.KeyAuth)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return string(data) == "true", nil
}
