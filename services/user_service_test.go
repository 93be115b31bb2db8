package services

import (
	"context"
	"testing"

	apperrors "github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, name string) *UserService {
	t.Helper()
	db := openSeededDB(t, name)
	return NewUserService(UserServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestGetUserByEmail_Found(t *testing.T) {
	svc := newUserService(t, "user_found")

	user, err := svc.GetUserByEmail(context.Background(), "user@nextmail.com")
	require.NoError(t, err)
	require.Equal(t, "410544b2-4001-4271-9855-fec4b6a6442a", user.ID)
	require.Equal(t, "User", user.Name)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	svc := newUserService(t, "user_not_found")

	_, err := svc.GetUserByEmail(context.Background(), "ghost@nextmail.com")
	require.Error(t, err)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestHashPassword_VerifiableWithBcrypt(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	require.NotEqual(t, "123456", hash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("123456")))
	require.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
