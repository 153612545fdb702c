package usecase

import (
	"context"
	"testing"
	"time"

	"pet-grooming/internal/data/entity"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService() (UserService, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}
	return NewUserService(repo, zap.NewNop()), users, sessions
}

func seedUser(t *testing.T, users *fakeUserRepo) *entity.User {
	t.Helper()
	u := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "biscuit_owner",
		Email:    "owner@example.com",
		PetName:  "Biscuit",
		PetType:  entity.PetTypeDog,
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUserService_GetProfile(t *testing.T) {
	svc, users, _ := newTestUserService()
	u := seedUser(t, users)

	t.Run("returns the profile", func(t *testing.T) {
		resp, err := svc.GetProfile(context.Background(), u.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "biscuit_owner", resp.Username)
		assert.Equal(t, "Biscuit", resp.PetName)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GetProfile(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed ID", func(t *testing.T) {
		_, err := svc.GetProfile(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	svc, users, _ := newTestUserService()
	seedUser(t, users)

	resp, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalItems)
	assert.Len(t, resp.Items, 1)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("revokes every live session", func(t *testing.T) {
		svc, users, sessions := newTestUserService()
		u := seedUser(t, users)

		token := uuid.New()
		require.NoError(t, sessions.Create(context.Background(), &entity.Session{
			UserID:    u.ID,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		require.NoError(t, svc.DeleteUser(context.Background(), u.ID.String()))

		gone, err := users.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		live, err := sessions.FindValidSession(context.Background(), token.String())
		require.NoError(t, err)
		assert.Nil(t, live)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newTestUserService()
		err := svc.DeleteUser(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
