package user

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
)

type mockRegisterExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error)
}

func (m *mockRegisterExecutor) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLoginExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

func (m *mockLoginExecutor) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockRefreshExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.TokenPair, error)
}

func (m *mockRefreshExecutor) Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.TokenPair, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLogoutExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.LogoutCommand) error
}

func (m *mockLogoutExecutor) Execute(ctx context.Context, cmd usecases.LogoutCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockMeExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetCurrentUserQuery) (*dto.UserDTO, error)
}

func (m *mockMeExecutor) Execute(ctx context.Context, query usecases.GetCurrentUserQuery) (*dto.UserDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockGetAPIKeyExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetAPIKeyQuery) (*string, error)
}

func (m *mockGetAPIKeyExecutor) Execute(ctx context.Context, query usecases.GetAPIKeyQuery) (*string, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockGenerateAPIKeyExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.GenerateAPIKeyCommand) (string, error)
}

func (m *mockGenerateAPIKeyExecutor) Execute(ctx context.Context, cmd usecases.GenerateAPIKeyCommand) (string, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockRevokeAPIKeyExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.RevokeAPIKeyCommand) error
}

func (m *mockRevokeAPIKeyExecutor) Execute(ctx context.Context, cmd usecases.RevokeAPIKeyCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			AccessExpMinutes: 15,
			RefreshExpDays:   7,
		},
		Cookie: config.CookieConfig{
			Path:     "/",
			SameSite: "Lax",
		},
	}
}

func sampleUser() *dto.UserDTO {
	return &dto.UserDTO{
		ID:        "u1",
		Name:      "Ada",
		Email:     "ada@example.com",
		CreatedAt: time.Now().UTC(),
	}
}

func newAuthHandler(register *mockRegisterExecutor, login *mockLoginExecutor, refresh *mockRefreshExecutor, logout *mockLogoutExecutor, me *mockMeExecutor) *AuthHandler {
	if register == nil {
		register = &mockRegisterExecutor{}
	}
	if login == nil {
		login = &mockLoginExecutor{}
	}
	if refresh == nil {
		refresh = &mockRefreshExecutor{}
	}
	if logout == nil {
		logout = &mockLogoutExecutor{}
	}
	if me == nil {
		me = &mockMeExecutor{}
	}
	return NewAuthHandler(register, login, refresh, logout, me, testAuthConfig(), testutil.NewMockLogger())
}

func cookieValues(header []string) map[string]string {
	out := make(map[string]string)
	for _, raw := range header {
		parts := strings.SplitN(raw, ";", 2)
		kv := strings.SplitN(parts[0], "=", 2)
		if len(kv) == 2 {
			out[kv[0]] = kv[1]
		}
	}
	return out
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		register := &mockRegisterExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error) {
				assert.Equal(t, "Ada", cmd.Name)
				assert.Equal(t, "ada@example.com", cmd.Email)
				return sampleUser(), nil
			},
		}
		h := newAuthHandler(register, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]any{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "secret123",
		})

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"user"`)
	})

	t.Run("duplicate email", func(t *testing.T) {
		register := &mockRegisterExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error) {
				return nil, errors.NewConflictError("Email already registered")
			},
		}
		h := newAuthHandler(register, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]any{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "secret123",
		})

		h.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Email already registered"}`, w.Body.String())
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets auth cookies", func(t *testing.T) {
		login := &mockLoginExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
				return &usecases.LoginResult{
					User: sampleUser(),
					Tokens: &usecases.TokenPair{
						AccessToken:  "access-jwt",
						RefreshToken: "refresh-jwt",
						ExpiresIn:    900,
					},
				}, nil
			},
		}
		h := newAuthHandler(nil, login, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]any{
			"email":    "ada@example.com",
			"password": "secret123",
		})

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := cookieValues(w.Header().Values("Set-Cookie"))
		assert.Equal(t, "access-jwt", cookies["access_token"])
		assert.Equal(t, "refresh-jwt", cookies["refresh_token"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		login := &mockLoginExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
				return nil, errors.NewUnauthorizedError("Invalid email or password")
			},
		}
		h := newAuthHandler(nil, login, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]any{
			"email":    "ada@example.com",
			"password": "wrong",
		})

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
		assert.Empty(t, w.Header().Values("Set-Cookie"))
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("rotates cookies", func(t *testing.T) {
		refresh := &mockRefreshExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.TokenPair, error) {
				assert.Equal(t, "old-refresh", cmd.RefreshToken)
				return &usecases.TokenPair{
					AccessToken:  "new-access",
					RefreshToken: "new-refresh",
					ExpiresIn:    900,
				}, nil
			},
		}
		h := newAuthHandler(nil, nil, refresh, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)
		c.Request.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})

		h.Refresh(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Token refreshed successfully"}`, w.Body.String())

		cookies := cookieValues(w.Header().Values("Set-Cookie"))
		assert.Equal(t, "new-access", cookies["access_token"])
		assert.Equal(t, "new-refresh", cookies["refresh_token"])
	})

	t.Run("missing cookie clears session cookies", func(t *testing.T) {
		refresh := &mockRefreshExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.TokenPair, error) {
				return nil, errors.NewUnauthorizedError("Refresh token required")
			},
		}
		h := newAuthHandler(nil, nil, refresh, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)

		h.Refresh(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		cookies := cookieValues(w.Header().Values("Set-Cookie"))
		assert.Equal(t, "", cookies["access_token"])
		assert.Equal(t, "", cookies["refresh_token"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	logout := &mockLogoutExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.LogoutCommand) error {
			assert.Equal(t, "test-session-id", cmd.SessionID)
			return nil
		},
	}
	h := newAuthHandler(nil, nil, nil, logout, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	testutil.SetPrincipal(c, "u1")

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	cookies := cookieValues(w.Header().Values("Set-Cookie"))
	assert.Equal(t, "", cookies["access_token"])
	assert.Equal(t, "", cookies["refresh_token"])
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("session principal", func(t *testing.T) {
		me := &mockMeExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetCurrentUserQuery) (*dto.UserDTO, error) {
				assert.Equal(t, "u1", query.UserID)
				return sampleUser(), nil
			},
		}
		h := newAuthHandler(nil, nil, nil, nil, me)

		c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
		testutil.SetPrincipal(c, "u1")

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"ada@example.com"`)
	})

	t.Run("api key principal gets user echo", func(t *testing.T) {
		me := &mockMeExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetCurrentUserQuery) (*dto.UserDTO, error) {
				return sampleUser(), nil
			},
		}
		h := newAuthHandler(nil, nil, nil, nil, me)

		c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
		testutil.SetAPIKeyPrincipal(c, "u1", "Ada", "ada@example.com")

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Contains(t, body, "user")
	})
}

func TestAPIKeyHandler(t *testing.T) {
	t.Run("get returns null when unset", func(t *testing.T) {
		get := &mockGetAPIKeyExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetAPIKeyQuery) (*string, error) {
				return nil, nil
			},
		}
		h := NewAPIKeyHandler(get, &mockGenerateAPIKeyExecutor{}, &mockRevokeAPIKeyExecutor{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/user/api-key", nil)
		testutil.SetPrincipal(c, "u1")

		h.GetAPIKey(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"apiKey":null}`, w.Body.String())
	})

	t.Run("get returns current key", func(t *testing.T) {
		key := "tk_abcdefabcdefabcdefabcdefabcdefab"
		get := &mockGetAPIKeyExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetAPIKeyQuery) (*string, error) {
				return &key, nil
			},
		}
		h := NewAPIKeyHandler(get, &mockGenerateAPIKeyExecutor{}, &mockRevokeAPIKeyExecutor{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/user/api-key", nil)
		testutil.SetPrincipal(c, "u1")

		h.GetAPIKey(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"apiKey":"tk_abcdefabcdefabcdefabcdefabcdefab"}`, w.Body.String())
	})

	t.Run("generate returns new key", func(t *testing.T) {
		generate := &mockGenerateAPIKeyExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.GenerateAPIKeyCommand) (string, error) {
				assert.Equal(t, "u1", cmd.UserID)
				return "tk_newkeynewkeynewkeynewkeynewkeyne", nil
			},
		}
		h := NewAPIKeyHandler(&mockGetAPIKeyExecutor{}, generate, &mockRevokeAPIKeyExecutor{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/user/api-key", nil)
		testutil.SetPrincipal(c, "u1")

		h.GenerateAPIKey(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"apiKey":"tk_newkeynewkeynewkeynewkeynewkeyne"}`, w.Body.String())
	})

	t.Run("revoke", func(t *testing.T) {
		revoke := &mockRevokeAPIKeyExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RevokeAPIKeyCommand) error {
				return nil
			},
		}
		h := NewAPIKeyHandler(&mockGetAPIKeyExecutor{}, &mockGenerateAPIKeyExecutor{}, revoke, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/user/api-key", nil)
		testutil.SetPrincipal(c, "u1")

		h.RevokeAPIKey(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"API key revoked successfully"}`, w.Body.String())
	})
}
