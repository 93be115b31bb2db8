package services

import (
	"context"
	"errors"

	apperrors "github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService đọc bảng users. Email là unique ở store nên một email
// khớp tối đa một dòng.
type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// GetUserByEmail tìm user theo email. "Không tìm thấy" trả về AppError NOT_FOUND,
// lỗi store trả về AppError STORE_ERROR sau khi đã log; caller phân biệt hai
// trường hợp qua error code, không bao giờ nhận raw error của store.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "user not found", result.Error)
	}

	if result.Error != nil {
		s.logger.Error("Lỗi khi truy vấn user theo email: %v", result.Error)
		return nil, apperrors.NewAppError(apperrors.ErrCodeStore, "failed to fetch user", result.Error)
	}

	return &user, nil
}

// HashPassword hash mật khẩu bằng bcrypt. Seed dùng cùng cost với bước verify
// của luồng đăng nhập, nếu lệch thì login với dữ liệu seed không bao giờ thành công.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
