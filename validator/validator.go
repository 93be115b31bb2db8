package validator

import (
	"regexp"

	"github.com/LigeronAhill/nextjs-dashboard/errors"
)

// MinPasswordLength là độ dài mật khẩu tối thiểu khi đăng nhập.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateCredentials kiểm tra định dạng email/mật khẩu trước khi truy cập store.
// Input sai định dạng bị từ chối ngay, không tốn một lần lookup.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Email không được để trống", nil)
	}

	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeValidation, "Email không hợp lệ", nil)
	}

	if password == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu không được để trống", nil)
	}

	if len(password) < MinPasswordLength {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeValidation, "Email không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
