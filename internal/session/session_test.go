package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myshop/internal/storage"
)

func TestLogin(t *testing.T) {
	memStorage := storage.NewMemStorage()
	manager := NewManager(memStorage, "easyshop25")

	active, err := manager.Active(context.Background())
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, manager.Login(context.Background(), "easyshop25"))

	active, err = manager.Active(context.Background())
	require.NoError(t, err)
	assert.True(t, active)

	data, err := memStorage.Load(context.Background(), storage.KeyAuth)
	require.NoError(t, err)
	assert.Equal(t, "true", string(data))
}

func TestLoginWrongPassword(t *testing.T) {
	manager := NewManager(storage.NewMemStorage(), "easyshop25")

	err := manager.Login(context.Background(), "guess")
	assert.ErrorIs(t, err, ErrWrongPassword)

	active, err := manager.Active(context.Background())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLogout(t *testing.T) {
	memStorage := storage.NewMemStorage()
	manager := NewManager(memStorage, "easyshop25")

	require.NoError(t, manager.Login(context.Background(), "easyshop25"))
	require.NoError(t, manager.Logout(context.Background()))

	active, err := manager.Active(context.Background())
	require.NoError(t, err)
	assert.False(t, active)

	_, err = memStorage.Load(context.Background(), storage.KeyAuth)
	assert.ErrorIs(t, err, storage.ErrNoRows)
}
