package services

import (
	"context"
	"testing"

	apperrors "github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeCredentialStore ghi lại từng lần lookup để test khẳng định được
// store có bị chạm tới hay không.
type fakeCredentialStore struct {
	users   map[string]*models.User
	failErr error
	lookups []string
}

func (f *fakeCredentialStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.lookups = append(f.lookups, email)
	if f.failErr != nil {
		return nil, f.failErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "user not found", nil)
	}
	return user, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeCredentialStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeCredentialStore{
		users: map[string]*models.User{
			"user@nextmail.com": {
				ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
				Name:     "User",
				Email:    "user@nextmail.com",
				Password: string(hash),
			},
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Store:  store,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
	return svc, store
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _ := newAuthFixture(t)

	principal, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")
	require.NoError(t, err)
	require.Equal(t, "410544b2-4001-4271-9855-fec4b6a6442a", principal.ID)
	require.Equal(t, "User", principal.Name)
	require.Equal(t, "user@nextmail.com", principal.Email)
}

func TestAuthenticate_LowercasesEmailBeforeLookup(t *testing.T) {
	svc, store := newAuthFixture(t)

	_, err := svc.Authenticate(context.Background(), "User@NextMail.com", "123456")
	require.NoError(t, err)
	require.Equal(t, []string{"user@nextmail.com"}, store.lookups)
}

func TestAuthenticate_InvalidShapeNeverTouchesStore(t *testing.T) {
	svc, store := newAuthFixture(t)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "123456"},
		{"short password", "user@nextmail.com", "12345"},
		{"empty both", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tc.email, tc.password)
			require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
	require.Empty(t, store.lookups)
}

// Ba lý do từ chối khác nhau phải trả về đúng cùng một giá trị lỗi,
// caller không phân biệt được "user không tồn tại" với "sai mật khẩu".
func TestAuthenticate_RejectionsIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, errBadShape := svc.Authenticate(ctx, "bad", "123456")
	_, errUnknownUser := svc.Authenticate(ctx, "ghost@nextmail.com", "123456")
	_, errWrongPassword := svc.Authenticate(ctx, "user@nextmail.com", "wrong-password")

	require.Equal(t, apperrors.ErrInvalidCredentials, errBadShape)
	require.Equal(t, apperrors.ErrInvalidCredentials, errUnknownUser)
	require.Equal(t, apperrors.ErrInvalidCredentials, errWrongPassword)
}

func TestAuthenticate_StoreErrorPropagates(t *testing.T) {
	svc, store := newAuthFixture(t)
	store.failErr = apperrors.NewAppError(apperrors.ErrCodeStore, "failed to fetch user", nil)

	_, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")
	require.Error(t, err)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))
	require.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthenticate_PrincipalCarriesNoHash(t *testing.T) {
	svc, store := newAuthFixture(t)

	principal, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")
	require.NoError(t, err)

	hash := store.users["user@nextmail.com"].Password
	require.NotContains(t, []string{principal.ID, principal.Name, principal.Email}, hash)
}
