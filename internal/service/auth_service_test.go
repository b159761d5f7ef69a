package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(users *fakeUserRepo) *authService {
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", TTL: time.Hour}}
	return NewAuthService(users, cfg).(*authService)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo(model.User{Username: "admin1", Name: "Ada", Password: "pw", Department: "IT", Role: model.RoleAdmin})
	auth := newTestAuth(users)

	t.Run("success issues a token with the role", func(t *testing.T) {
		resp, err := auth.Login(context.Background(), dto.LoginRequest{Username: "admin1", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.User.Role)
		assert.Equal(t, "Ada", resp.User.Name)

		claims, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin1", claims.Username)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := auth.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "pw"})
		assert.ErrorIs(t, err, apperror.ErrUnknownUser)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), dto.LoginRequest{Username: "admin1", Password: "nope"})
		assert.ErrorIs(t, err, apperror.ErrWrongPassword)
	})

	t.Run("repository failure is not an auth error", func(t *testing.T) {
		broken := newTestAuth(&fakeUserRepo{err: apperror.Repository("find user", errors.New("boom"))})
		_, err := broken.Login(context.Background(), dto.LoginRequest{Username: "admin1", Password: "pw"})
		assert.ErrorIs(t, err, apperror.ErrRepository)
		assert.NotErrorIs(t, err, apperror.ErrUnknownUser)
	})
}

func TestParseToken_Rejects(t *testing.T) {
	users := newFakeUserRepo(model.User{Username: "s1", Password: "pw", Role: model.RoleStudent})
	auth := newTestAuth(users)
	resp, err := auth.Login(context.Background(), dto.LoginRequest{Username: "s1", Password: "pw"})
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other := NewAuthService(users, &config.Config{JWT: config.JWT{Secret: "other", TTL: time.Hour}})
		_, err := other.ParseToken(resp.Token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := auth.ParseToken(resp.Token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.ParseToken("not-a-token")
		assert.Error(t, err)
	})
}
