package models

// User là tài khoản đăng nhập dashboard. Chỉ Seed tạo user, không có self-registration.
// Password luôn là bcrypt hash, không bao giờ serialize ra ngoài.
type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
