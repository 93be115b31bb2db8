package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DashboardCacheWarmer định nghĩa interface cho việc warm cache dashboard.
type DashboardCacheWarmer interface {
	WarmDashboardCache() error
}

var dashboardCacheWarmer DashboardCacheWarmer

// SetDashboardCacheWarmer thiết lập implementation cho DashboardCacheWarmer.
func SetDashboardCacheWarmer(warmer DashboardCacheWarmer) {
	dashboardCacheWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs.
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang warm cache dashboard lúc: %v", now)
		if dashboardCacheWarmer == nil {
			log.Printf("Lỗi: DashboardCacheWarmer chưa được thiết lập")
			return
		}
		if err := dashboardCacheWarmer.WarmDashboardCache(); err != nil {
			log.Printf("Lỗi khi warm cache dashboard: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	return nil
}
