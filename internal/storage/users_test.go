package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wurt83ow/maintracker/internal/models"
)

func TestCreateUser(t *testing.T) {
	k := &memKeeper{}
	s := newTestStorage(k)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "  Maria ", "secret", " Technician ")
	require.NoError(t, err)
	assert.Equal(t, "maria", u.Username)
	assert.Equal(t, "technician", u.Role)

	_, err = s.CreateUser(ctx, "MARIA", "other", "viewer")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateUser(ctx, "", "", "")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"username", "password", "role"}, verr.Fields)

	assert.Len(t, k.users, 1)
}

func TestAuthenticate(t *testing.T) {
	k := &memKeeper{users: []models.User{{Username: "Pedro", Password: "Pw", Role: "ADMIN"}}}
	s := newTestStorage(k)
	ctx := context.Background()

	u, err := s.Authenticate(ctx, "pedro ", "Pw")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	_, err = s.Authenticate(ctx, "pedro", "pw")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Authenticate(ctx, "nobody", "Pw")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	k := &memKeeper{users: []models.User{
		{Username: "admin", Password: "x", Role: "admin"},
		{Username: "luis", Password: "y", Role: "viewer"},
	}}
	s := newTestStorage(k)
	ctx := context.Background()

	assert.ErrorIs(t, s.DeleteUser(ctx, " ADMIN"), ErrProtected)
	assert.ErrorIs(t, s.DeleteUser(ctx, "ghost"), ErrNotFound)
	require.NoError(t, s.DeleteUser(ctx, "Luis"))

	require.Len(t, k.users, 1)
	assert.Equal(t, "admin", k.users[0].Username)
}

func TestEnsureAdmin(t *testing.T) {
	k := &memKeeper{}
	s := newTestStorage(k)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "changeme"))
	require.Len(t, k.users, 1)
	assert.Equal(t, models.RoleAdmin, k.users[0].Role)

	require.NoError(t, s.EnsureAdmin(ctx, "other"))
	assert.Len(t, k.users, 1)
}
