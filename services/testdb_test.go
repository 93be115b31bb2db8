package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB mở một database sqlite in-memory riêng cho từng test.
// cache=shared để mọi connection trong pool nhìn thấy cùng một database.
func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// openSeededDB mở database test và chạy seed với bộ fixture mặc định.
func openSeededDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db := openTestDB(t, name)
	seeder := NewSeedService(SeedServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
	require.NoError(t, seeder.Run(context.Background()))
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
