package service

import (
	"context"
	"testing"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/config"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(users *mockUserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "dear-diary-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(users, cfg, logger.Nop())
}

// ─────────────────────────────────────────────
// Registration
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	var stored models.User
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 42
			return user, nil
		},
	}
	svc := newAuthService(users)

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "reenu", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Empty(t, stored.Password, "plaintext must not reach the repository")
	require.NotEmpty(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	for _, user := range []models.User{
		{},
		{Login: "reenu"},
		{Password: "s3cret"},
	} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newAuthService(users)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "reenu", Password: "s3cret"})

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, login string) (models.User, error) {
			assert.Equal(t, "reenu", login)
			return models.User{UserID: 42, Login: "reenu", PasswordHash: string(hash)}, nil
		},
	}
	svc := newAuthService(users)

	user, err := svc.Login(context.Background(), models.User{Login: "reenu", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Empty(t, user.Password)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 42, Login: "reenu", PasswordHash: string(hash)}, nil
		},
	}
	svc := newAuthService(users)

	_, err = svc.Login(context.Background(), models.User{Login: "reenu", Password: "not-it"})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newAuthService(users)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "s3cret"})

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	otherIssuer := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := otherIssuer.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	svc := newAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// Emergency contact
// ─────────────────────────────────────────────

func TestAuthService_UpdateEmergencyContact(t *testing.T) {
	var savedEmail string
	users := &mockUserRepository{
		updateEmergencyContactFn: func(_ context.Context, userID int64, email string) error {
			assert.Equal(t, testUserID, userID)
			savedEmail = email
			return nil
		},
	}
	svc := newAuthService(users)

	err := svc.UpdateEmergencyContact(context.Background(), testUserID, "friend@example.com")

	require.NoError(t, err)
	assert.Equal(t, "friend@example.com", savedEmail)
}

func TestAuthService_UpdateEmergencyContact_ClearsWithEmptyEmail(t *testing.T) {
	called := false
	users := &mockUserRepository{
		updateEmergencyContactFn: func(_ context.Context, _ int64, email string) error {
			called = true
			assert.Empty(t, email)
			return nil
		},
	}
	svc := newAuthService(users)

	err := svc.UpdateEmergencyContact(context.Background(), testUserID, "")

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthService_UpdateEmergencyContact_InvalidEmail(t *testing.T) {
	called := false
	users := &mockUserRepository{
		updateEmergencyContactFn: func(_ context.Context, _ int64, _ string) error {
			called = true
			return nil
		},
	}
	svc := newAuthService(users)

	err := svc.UpdateEmergencyContact(context.Background(), testUserID, "not-an-email")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, called)
}
