package controllers

import (
	"github.com/LigeronAhill/nextjs-dashboard/dto"
	"github.com/LigeronAhill/nextjs-dashboard/response"
	"github.com/LigeronAhill/nextjs-dashboard/services"

	"github.com/gin-gonic/gin"
)

// maxNameSuggestions là số gợi ý tên tối đa khi tìm kiếm không ra kết quả.
const maxNameSuggestions = 3

type CustomerController struct {
	dashboardService *services.DashboardService
}

func NewCustomerController(dashboardService *services.DashboardService) *CustomerController {
	return &CustomerController{dashboardService: dashboardService}
}

// GetCustomers trả về {id, name} của mọi khách hàng cho dropdown.
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.dashboardService.FetchCustomers(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, customers)
}

// GetFilteredCustomers trả về bảng khách hàng khớp query kèm tổng hợp hóa đơn.
// Khi query có nội dung mà không khớp khách nào, trả thêm gợi ý tên gần giống.
func (ctrl *CustomerController) GetFilteredCustomers(c *gin.Context) {
	query := c.Query("query")

	customers, err := ctrl.dashboardService.FetchFilteredCustomers(c.Request.Context(), query)
	if err != nil {
		response.ServerError(c)
		return
	}

	table := dto.CustomerTable{Customers: customers}

	if len(customers) == 0 && query != "" {
		suggestions, err := ctrl.dashboardService.SuggestCustomerNames(c.Request.Context(), query, maxNameSuggestions)
		if err == nil {
			table.Suggestions = suggestions
		}
	}

	response.Success(c, table)
}
