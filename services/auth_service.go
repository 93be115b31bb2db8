package services

import (
	"context"
	"strings"

	apperrors "github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"
	"github.com/LigeronAhill/nextjs-dashboard/validator"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore tìm user record theo email.
type CredentialStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Principal là danh tính trả về sau khi xác thực thành công.
// Không bao giờ chứa password hash.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthService struct {
	store  CredentialStore
	logger logger.Logger
}

type AuthServiceOptions struct {
	Store  CredentialStore
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		store:  opts.Store,
		logger: opts.Logger,
	}
}

// Authenticate biến cặp email/mật khẩu chưa tin cậy thành Principal hoặc từ chối.
// Sai định dạng, không có user, sai mật khẩu đều trả về cùng một
// ErrInvalidCredentials để caller không suy ra được tài khoản có tồn tại hay không.
// Chỉ lỗi store (AppError STORE_ERROR) được nổi lên riêng.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*Principal, error) {
	// Input sai định dạng bị chặn trước khi chạm tới store.
	if err := validator.ValidateCredentials(email, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeStore) {
			return nil, err
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &Principal{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
