package controllers

import (
	"strconv"

	"github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/response"
	"github.com/LigeronAhill/nextjs-dashboard/services"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	dashboardService *services.DashboardService
}

func NewInvoiceController(dashboardService *services.DashboardService) *InvoiceController {
	return &InvoiceController{dashboardService: dashboardService}
}

// GetInvoices trả về một trang hóa đơn khớp query kèm tổng số trang.
func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	invoices, err := ctrl.dashboardService.FetchFilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		response.ServerError(c)
		return
	}

	totalPages, err := ctrl.dashboardService.FetchInvoicesPages(c.Request.Context(), query)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, invoices, page, services.ItemsPerPage, totalPages)
}

// GetLatestInvoices trả về 5 hóa đơn mới nhất.
func (ctrl *InvoiceController) GetLatestInvoices(c *gin.Context) {
	invoices, err := ctrl.dashboardService.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, invoices)
}

// GetDetailInvoice trả về chi tiết một hóa đơn theo id.
func (ctrl *InvoiceController) GetDetailInvoice(c *gin.Context) {
	id := c.Param("id")

	invoice, err := ctrl.dashboardService.FetchInvoiceByID(c.Request.Context(), id)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, invoice)
}
