package controllers

import (
	"log"

	"github.com/LigeronAhill/nextjs-dashboard/response"
	"github.com/LigeronAhill/nextjs-dashboard/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type SeedController struct {
	seedService *services.SeedService
	rdb         *redis.Client
}

func NewSeedController(seedService *services.SeedService, rdb *redis.Client) *SeedController {
	return &SeedController{seedService: seedService, rdb: rdb}
}

// Seed đưa database về baseline: tạo schema nếu thiếu và insert dữ liệu mẫu,
// chạy lại bao nhiêu lần cũng được. Cache dashboard bị xóa sau khi reseed
// để không trả số liệu cũ.
func (ctrl *SeedController) Seed(c *gin.Context) {
	if err := ctrl.seedService.Run(c.Request.Context()); err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		// Seed đã commit, lỗi xóa cache chỉ log chứ không fail request.
		if err := services.DeleteKeysByPattern(c.Request.Context(), ctrl.rdb, services.DashboardKeyGlob); err != nil {
			log.Printf("Lỗi khi xóa cache dashboard sau seed: %v", err)
		}
	}

	response.Success(c, gin.H{"message": "Database seeded successfully"})
}
