package controllers

import (
	"github.com/LigeronAhill/nextjs-dashboard/dto"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/response"
	"github.com/LigeronAhill/nextjs-dashboard/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	rdb              *redis.Client
}

func NewDashboardController(dashboardService *services.DashboardService, rdb *redis.Client) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, rdb: rdb}
}

// GetCards trả về số liệu bốn card tổng quan, đọc qua cache Redis nếu có.
func (ctrl *DashboardController) GetCards(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.rdb != nil {
		var cached dto.CardData
		if err := services.GetFromRedis(ctx, ctrl.rdb, services.CacheKeyCards, &cached); err == nil && cached.TotalPaidInvoices != "" {
			response.Success(c, cached)
			return
		}
	}

	cards, err := ctrl.dashboardService.FetchCardData(ctx)
	if err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		services.SetToRedis(ctx, ctrl.rdb, services.CacheKeyCards, cards, services.CacheTTL)
	}

	response.Success(c, cards)
}

// GetRevenue trả về bảng doanh thu theo tháng, đọc qua cache Redis nếu có.
func (ctrl *DashboardController) GetRevenue(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.rdb != nil {
		var cached []models.Revenue
		if err := services.GetFromRedis(ctx, ctrl.rdb, services.CacheKeyRevenue, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	revenue, err := ctrl.dashboardService.FetchRevenue(ctx)
	if err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		services.SetToRedis(ctx, ctrl.rdb, services.CacheKeyRevenue, revenue, services.CacheTTL)
	}

	response.Success(c, revenue)
}
