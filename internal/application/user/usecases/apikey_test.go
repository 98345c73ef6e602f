package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

func userWithKey(t *testing.T, apiKey *string) *user.User {
	t.Helper()
	now := biztime.NowUTC()
	u, err := user.ReconstructUser("u1", "Ada", "ada@example.com", "hash", apiKey, now, now)
	require.NoError(t, err)
	return u
}

func TestGetAPIKeyUseCase_Execute(t *testing.T) {
	t.Run("returns the stored key", func(t *testing.T) {
		key := "tk_abc123"
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID string) (*user.User, error) {
				return userWithKey(t, &key), nil
			},
		}

		uc := NewGetAPIKeyUseCase(repo, newMockLogger())
		result, err := uc.Execute(context.Background(), GetAPIKeyQuery{UserID: "u1"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, key, *result)
	})

	t.Run("returns nil when no key is issued", func(t *testing.T) {
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID string) (*user.User, error) {
				return userWithKey(t, nil), nil
			},
		}

		uc := NewGetAPIKeyUseCase(repo, newMockLogger())
		result, err := uc.Execute(context.Background(), GetAPIKeyQuery{UserID: "u1"})

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestGenerateAPIKeyUseCase_Execute(t *testing.T) {
	t.Run("mints a prefixed key and stores it", func(t *testing.T) {
		var stored *string
		repo := &mockUserRepository{
			UpdateAPIKeyFunc: func(ctx context.Context, userID string, apiKey *string) error {
				assert.Equal(t, "u1", userID)
				stored = apiKey
				return nil
			},
		}

		uc := NewGenerateAPIKeyUseCase(repo, newMockLogger())
		key, err := uc.Execute(context.Background(), GenerateAPIKeyCommand{UserID: "u1"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "tk_"))
		assert.Len(t, key, len("tk_")+32)
		require.NotNil(t, stored)
		assert.Equal(t, key, *stored)
	})

	t.Run("successive keys differ", func(t *testing.T) {
		repo := &mockUserRepository{}
		uc := NewGenerateAPIKeyUseCase(repo, newMockLogger())

		first, err := uc.Execute(context.Background(), GenerateAPIKeyCommand{UserID: "u1"})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), GenerateAPIKeyCommand{UserID: "u1"})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateAPIKeyFunc: func(ctx context.Context, userID string, apiKey *string) error {
				return errors.NewInternalError("db down")
			},
		}

		uc := NewGenerateAPIKeyUseCase(repo, newMockLogger())
		_, err := uc.Execute(context.Background(), GenerateAPIKeyCommand{UserID: "u1"})

		require.Error(t, err)
	})
}

func TestRevokeAPIKeyUseCase_Execute(t *testing.T) {
	t.Run("clears the key", func(t *testing.T) {
		var cleared bool
		repo := &mockUserRepository{
			UpdateAPIKeyFunc: func(ctx context.Context, userID string, apiKey *string) error {
				assert.Nil(t, apiKey)
				cleared = true
				return nil
			},
		}

		uc := NewRevokeAPIKeyUseCase(repo, newMockLogger())
		err := uc.Execute(context.Background(), RevokeAPIKeyCommand{UserID: "u1"})

		require.NoError(t, err)
		assert.True(t, cleared)
	})
}
