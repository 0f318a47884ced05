package auth

import (
	"context"
	"testing"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type memUserRepo struct {
	users map[string]user.User
}

func (r *memUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func newTestService(t *testing.T) (Service, *memUserRepo) {
	t.Helper()
	repo := &memUserRepo{users: make(map[string]user.User)}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewService(repo, jwtService), repo
}

func addUser(t *testing.T, repo *memUserRepo, username, password string, active bool) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashed := string(hash)

	u := user.User{
		Draft: user.Draft{
			Username:    username,
			Name:        "Test",
			Surname:     "User",
			Role:        user.RoleEmployee,
			HoursPerDay: 8,
			Active:      active,
		},
		ID:           "user-" + username,
		PasswordHash: &hashed,
	}
	repo.users[u.ID] = u
	return u
}

func TestLoginSuccess(t *testing.T) {
	svc, repo := newTestService(t)
	addUser(t, repo, "mario.rossi", "password123", true)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newTestService(t)
	addUser(t, repo, "mario.rossi", "password123", true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mario.rossi",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, repo := newTestService(t)
	addUser(t, repo, "mario.rossi", "password123", false)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestLoginMachineAccountHasNoPassword(t *testing.T) {
	svc, repo := newTestService(t)
	repo.users["machine-1"] = user.User{
		Draft: user.Draft{
			Username: "press-01",
			Machine:  true,
			Active:   true,
		},
		ID: "machine-1",
	}

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "press-01",
		Password: "anything",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, repo := newTestService(t)
	addUser(t, repo, "mario.rossi", "password123", true)

	first, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)

	// the presented token is revoked on use
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, repo := newTestService(t)
	addUser(t, repo, "mario.rossi", "password123", true)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshAfterLogout(t *testing.T) {
	svc, repo := newTestService(t)
	addUser(t, repo, "mario.rossi", "password123", true)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mario.rossi",
		Password: "password123",
	})
	require.NoError(t, err)

	svc.Logout(resp.RefreshToken)

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
