package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/LigeronAhill/nextjs-dashboard/constants"
	"github.com/LigeronAhill/nextjs-dashboard/dto"
	apperrors "github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"
	"github.com/LigeronAhill/nextjs-dashboard/utils"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ItemsPerPage là kích thước trang của bảng hóa đơn.
const ItemsPerPage = 6

// minSuggestionSimilarity là ngưỡng Levenshtein cho gợi ý tên khách hàng.
const minSuggestionSimilarity = 0.4

// DashboardService là tầng truy vấn read-only của dashboard. Mọi lỗi store
// được log tại đây rồi nổi lên dưới dạng AppError STORE_ERROR với message cố
// định; raw error không bao giờ tới caller bên ngoài.
type DashboardService struct {
	db     *gorm.DB
	logger logger.Logger
}

type DashboardServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

func (s *DashboardService) storeError(message string, err error) error {
	s.logger.Error("Lỗi truy vấn database: %s: %v", message, err)
	return apperrors.NewAppError(apperrors.ErrCodeStore, message, err)
}

// FetchRevenue trả về toàn bộ bảng revenue.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	if err := s.db.WithContext(ctx).Find(&revenue).Error; err != nil {
		return nil, s.storeError("failed to fetch revenue data", err)
	}
	return revenue, nil
}

type latestInvoiceRow struct {
	ID       string
	Name     string
	ImageURL string
	Email    string
	Amount   int64
}

// FetchLatestInvoices trả về 5 hóa đơn mới nhất kèm thông tin khách hàng,
// amount đã format tiền tệ.
func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]dto.LatestInvoice, error) {
	var rows []latestInvoiceRow
	err := s.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id, invoices.amount, customers.name, customers.image_url, customers.email").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, s.storeError("failed to fetch the latest invoices", err)
	}

	invoices := make([]dto.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, dto.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   utils.FormatCurrency(row.Amount),
		})
	}
	return invoices, nil
}

// FetchCardData gom số liệu cho các card tổng quan. Ba truy vấn độc lập nên
// chạy song song và chờ chung qua errgroup; từng truy vấn đều read-only.
func (s *DashboardService) FetchCardData(ctx context.Context) (*dto.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		sums          struct {
			Paid    int64
			Pending int64
		}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Invoice{}).Count(&invoiceCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Customer{}).Count(&customerCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Table("invoices").
			Select("COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid, COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS pending",
				constants.InvoiceStatusPaid, constants.InvoiceStatusPending).
			Scan(&sums).Error
	})
	if err := g.Wait(); err != nil {
		return nil, s.storeError("failed to fetch card data", err)
	}

	return &dto.CardData{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    utils.FormatCurrency(sums.Paid),
		TotalPendingInvoices: utils.FormatCurrency(sums.Pending),
	}, nil
}

const invoiceFilterCondition = "LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR CAST(invoices.amount AS TEXT) LIKE ? OR CAST(invoices.date AS TEXT) LIKE ? OR LOWER(invoices.status) LIKE ?"

func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

type invoiceTableRow struct {
	ID         string
	CustomerID string
	Amount     int64
	Date       time.Time
	Status     string
	Name       string
	Email      string
	ImageURL   string
}

// FetchFilteredInvoices trả về một trang hóa đơn khớp query (tên/email khách,
// amount, ngày, trạng thái), mới nhất trước.
func (s *DashboardService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]dto.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage
	pattern := likePattern(query)

	var rows []invoiceTableRow
	err := s.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id, invoices.customer_id, invoices.amount, invoices.date, invoices.status, customers.name, customers.email, customers.image_url").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(invoiceFilterCondition, pattern, pattern, pattern, pattern, pattern).
		Order("invoices.date DESC").
		Limit(ItemsPerPage).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, s.storeError("failed to fetch invoices", err)
	}

	invoices := make([]dto.InvoiceRow, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, dto.InvoiceRow{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Name:       row.Name,
			Email:      row.Email,
			ImageURL:   row.ImageURL,
			Date:       row.Date.Format("2006-01-02"),
			Amount:     row.Amount,
			Status:     row.Status,
		})
	}
	return invoices, nil
}

// FetchInvoicesPages trả về tổng số trang cho query hiện tại.
func (s *DashboardService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	pattern := likePattern(query)

	var count int64
	err := s.db.WithContext(ctx).
		Table("invoices").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(invoiceFilterCondition, pattern, pattern, pattern, pattern, pattern).
		Count(&count).Error
	if err != nil {
		return 0, s.storeError("failed to fetch total number of invoices", err)
	}

	return int(math.Ceil(float64(count) / float64(ItemsPerPage))), nil
}

// FetchInvoiceByID trả về chi tiết một hóa đơn, amount đổi từ cent sang thập phân.
func (s *DashboardService) FetchInvoiceByID(ctx context.Context, id string) (*dto.InvoiceDetail, error) {
	var invoice models.Invoice
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&invoice)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "invoice not found", result.Error)
	}
	if result.Error != nil {
		return nil, s.storeError("failed to fetch invoice", result.Error)
	}

	return &dto.InvoiceDetail{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// FetchCustomers trả về {id, name} của mọi khách hàng, sắp theo tên.
func (s *DashboardService) FetchCustomers(ctx context.Context) ([]dto.CustomerField, error) {
	var customers []dto.CustomerField
	err := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&customers).Error
	if err != nil {
		return nil, s.storeError("failed to fetch all customers", err)
	}
	return customers, nil
}

type customerTableRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// FetchFilteredCustomers trả về bảng khách hàng khớp query kèm tổng hợp hóa đơn.
// SUM dùng COALESCE để khách chưa có hóa đơn nào vẫn ra "$0.00".
func (s *DashboardService) FetchFilteredCustomers(ctx context.Context, query string) ([]dto.CustomerRow, error) {
	pattern := likePattern(query)

	var rows []customerTableRow
	err := s.db.WithContext(ctx).
		Table("customers").
		Select("customers.id, customers.name, customers.email, customers.image_url, "+
			"COUNT(invoices.id) AS total_invoices, "+
			"COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_pending, "+
			"COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_paid",
			constants.InvoiceStatusPending, constants.InvoiceStatusPaid).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", pattern, pattern).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, s.storeError("failed to fetch customer table", err)
	}

	customers := make([]dto.CustomerRow, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, dto.CustomerRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  utils.FormatCurrency(row.TotalPending),
			TotalPaid:     utils.FormatCurrency(row.TotalPaid),
		})
	}
	return customers, nil
}

// SuggestCustomerNames gợi ý tên khách hàng gần giống query khi tìm kiếm không
// ra kết quả: bỏ dấu rồi so khớp n-gram, lọc lại bằng khoảng cách Levenshtein.
func (s *DashboardService) SuggestCustomerNames(ctx context.Context, query string, limit int) ([]string, error) {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return nil, nil
	}

	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, s.storeError("failed to fetch customer table", err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	normalized := make([]string, 0, len(names))
	byNormalized := make(map[string]string, len(names))
	for _, name := range names {
		key := normalizeSearchTerm(name)
		normalized = append(normalized, key)
		byNormalized[key] = name
	}

	cm := createMatcher(normalized)
	normalizedQuery := normalizeSearchTerm(query)

	var suggestions []string
	for _, candidate := range cm.ClosestN(normalizedQuery, limit) {
		if candidate == "" {
			continue
		}
		if calculateSimilarity(normalizedQuery, candidate) < minSuggestionSimilarity {
			continue
		}
		suggestions = append(suggestions, byNormalized[candidate])
	}
	return suggestions, nil
}

// normalizeSearchTerm bỏ dấu và hạ chữ thường trước khi so khớp.
func normalizeSearchTerm(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}
