package services

import (
	"context"
	"testing"

	apperrors "github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/models"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(DashboardServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestFetchRevenue(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_revenue"))

	revenue, err := svc.FetchRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, revenue, 12)
}

func TestFetchLatestInvoices_NewestFirstAndFormatted(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_latest"))

	invoices, err := svc.FetchLatestInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 5)

	// Fixture mới nhất: Michael Novotny, 44800 cent, 2023-09-10.
	require.Equal(t, "Michael Novotny", invoices[0].Name)
	require.Equal(t, "$448.00", invoices[0].Amount)

	require.Equal(t, "Delba de Oliveira", invoices[1].Name)
	require.Equal(t, "Balazs Orban", invoices[2].Name)
	require.Equal(t, "Lee Robinson", invoices[3].Name)
	require.Equal(t, "Evil Rabbit", invoices[4].Name)
}

func TestFetchCardData(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_cards"))

	cards, err := svc.FetchCardData(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 6, cards.NumberOfCustomers)
	require.EqualValues(t, 13, cards.NumberOfInvoices)
	require.Equal(t, "$1,006.26", cards.TotalPaidInvoices)
	require.Equal(t, "$1,256.32", cards.TotalPendingInvoices)
}

func TestFetchFilteredInvoices_ByCustomerName(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_filter_name"))

	invoices, err := svc.FetchFilteredInvoices(context.Background(), "EVIL", 1)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	// Mới nhất trước.
	require.EqualValues(t, 666, invoices[0].Amount)
	require.EqualValues(t, 15795, invoices[1].Amount)
	require.Equal(t, "2023-06-27", invoices[0].Date)
}

func TestFetchFilteredInvoices_ByAmountAndDate(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_filter_amount"))
	ctx := context.Background()

	byAmount, err := svc.FetchFilteredInvoices(ctx, "15795", 1)
	require.NoError(t, err)
	require.Len(t, byAmount, 1)
	require.Equal(t, "Evil Rabbit", byAmount[0].Name)

	byDate, err := svc.FetchFilteredInvoices(ctx, "2022-12", 1)
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	require.Equal(t, "2022-12-06", byDate[0].Date)
}

func TestFetchFilteredInvoices_Pagination(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_pages"))
	ctx := context.Background()

	page1, err := svc.FetchFilteredInvoices(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, page1, ItemsPerPage)

	// 13 hóa đơn, trang cuối còn 1 dòng.
	page3, err := svc.FetchFilteredInvoices(ctx, "", 3)
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Page dưới 1 được clamp về 1.
	page0, err := svc.FetchFilteredInvoices(ctx, "", 0)
	require.NoError(t, err)
	require.Equal(t, page1, page0)

	totalPages, err := svc.FetchInvoicesPages(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 3, totalPages)

	evilPages, err := svc.FetchInvoicesPages(ctx, "evil")
	require.NoError(t, err)
	require.Equal(t, 1, evilPages)

	nonePages, err := svc.FetchInvoicesPages(ctx, "no-such-thing")
	require.NoError(t, err)
	require.Equal(t, 0, nonePages)
}

func TestFetchInvoiceByID(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_by_id"))
	ctx := context.Background()

	invoice, err := svc.FetchInvoiceByID(ctx, "6b0e6018-52f6-47a8-a397-8ec82b1b1e09")
	require.NoError(t, err)
	// 15795 cent thành 157.95 đơn vị thập phân.
	require.InDelta(t, 157.95, invoice.Amount, 0.0001)
	require.Equal(t, "pending", invoice.Status)

	_, err = svc.FetchInvoiceByID(ctx, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestFetchCustomers_SortedByName(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_customers"))

	customers, err := svc.FetchCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 6)
	require.Equal(t, "Amy Burns", customers[0].Name)
	require.Equal(t, "Michael Novotny", customers[5].Name)
}

func TestFetchFilteredCustomers_Aggregates(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_customer_table"))

	customers, err := svc.FetchFilteredCustomers(context.Background(), "rabbit")
	require.NoError(t, err)
	require.Len(t, customers, 1)

	rabbit := customers[0]
	require.Equal(t, "Evil Rabbit", rabbit.Name)
	require.EqualValues(t, 2, rabbit.TotalInvoices)
	require.Equal(t, "$164.61", rabbit.TotalPending)
	// Chưa có hóa đơn paid nào vẫn phải ra "$0.00" chứ không phải null.
	require.Equal(t, "$0.00", rabbit.TotalPaid)
}

// Khách hàng chưa có hóa đơn nào: tổng hợp vẫn ra dòng với "$0.00".
func TestFetchFilteredCustomers_CustomerWithoutInvoices(t *testing.T) {
	db := openTestDB(t, "dash_customer_empty")

	fixtures := models.Placeholder()
	fixtures.Customers = append(fixtures.Customers, models.Customer{
		ID:       "f7a8d76a-2b8e-4f0a-9d1c-52a1f3b6e6d2",
		Name:     "Dave",
		Email:    "dave@example.com",
		ImageURL: "/customers/dave.png",
	})
	seeder := NewSeedService(SeedServiceOptions{
		DB:       db,
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
		Fixtures: &fixtures,
	})
	require.NoError(t, seeder.Run(context.Background()))

	customers, err := newDashboardService(db).FetchFilteredCustomers(context.Background(), "dave")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "Dave", customers[0].Name)
	require.EqualValues(t, 0, customers[0].TotalInvoices)
	require.Equal(t, "$0.00", customers[0].TotalPending)
	require.Equal(t, "$0.00", customers[0].TotalPaid)
}

func TestFetchFilteredCustomers_NoMatch(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_customer_none"))

	customers, err := svc.FetchFilteredCustomers(context.Background(), "dave")
	require.NoError(t, err)
	require.Empty(t, customers)
}

func TestSuggestCustomerNames(t *testing.T) {
	svc := newDashboardService(openSeededDB(t, "dash_suggest"))
	ctx := context.Background()

	suggestions, err := svc.SuggestCustomerNames(ctx, "evil rabit", 3)
	require.NoError(t, err)
	require.Contains(t, suggestions, "Evil Rabbit")

	none, err := svc.SuggestCustomerNames(ctx, "", 3)
	require.NoError(t, err)
	require.Empty(t, none)
}
