package services

import (
	"context"

	"github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedService đưa schema và dữ liệu mẫu của store về baseline đã biết.
// Toàn bộ chạy trong một transaction duy nhất: hoặc tất cả DDL + insert
// commit cùng nhau, hoặc rollback hết.
type SeedService struct {
	db       *gorm.DB
	logger   logger.Logger
	fixtures models.FixtureSet
}

type SeedServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	// Fixtures nil thì dùng bộ placeholder mặc định.
	Fixtures *models.FixtureSet
}

func NewSeedService(opts SeedServiceOptions) *SeedService {
	fixtures := models.Placeholder()
	if opts.Fixtures != nil {
		fixtures = *opts.Fixtures
	}
	return &SeedService{
		db:       opts.DB,
		logger:   opts.Logger,
		fixtures: fixtures,
	}
}

// Run tạo schema (create-if-missing) và insert fixture (skip-on-conflict),
// nên chạy lại nhiều lần vẫn an toàn: không duplicate, không lỗi.
// Connection của transaction được trả về pool trên mọi đường thoát,
// kể cả panic giữa chừng.
func (s *SeedService) Run(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.NewAppError(errors.ErrCodeTransaction, "failed to begin seed transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.AutoMigrate(&models.User{}, &models.Customer{}, &models.Invoice{}, &models.Revenue{}); err != nil {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeTransaction, "failed to create schema", err)
	}

	if err := s.seedUsers(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.seedCustomers(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.seedInvoices(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.seedRevenue(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeTransaction, "failed to commit seed transaction", err)
	}

	s.logger.Info("Seed dữ liệu hoàn tất: %d users, %d customers, %d invoices, %d revenue rows",
		len(s.fixtures.Users), len(s.fixtures.Customers), len(s.fixtures.Invoices), len(s.fixtures.Revenue))
	return nil
}

// seedUsers hash mật khẩu plaintext của fixture bằng đúng thuật toán mà bước
// verify đăng nhập dùng, rồi insert skip-on-conflict.
func (s *SeedService) seedUsers(tx *gorm.DB) error {
	for _, user := range s.fixtures.Users {
		hashedPassword, err := HashPassword(user.Password)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeTransaction, "failed to hash fixture password", err)
		}

		row := models.User{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Password: hashedPassword,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeTransaction, "failed to seed users", err)
		}
	}
	return nil
}

func (s *SeedService) seedCustomers(tx *gorm.DB) error {
	for _, customer := range s.fixtures.Customers {
		row := customer
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeTransaction, "failed to seed customers", err)
		}
	}
	return nil
}

func (s *SeedService) seedInvoices(tx *gorm.DB) error {
	for _, invoice := range s.fixtures.Invoices {
		row := invoice
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeTransaction, "failed to seed invoices", err)
		}
	}
	return nil
}

func (s *SeedService) seedRevenue(tx *gorm.DB) error {
	for _, rev := range s.fixtures.Revenue {
		row := rev
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeTransaction, "failed to seed revenue", err)
		}
	}
	return nil
}
