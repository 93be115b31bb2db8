package dto

// LatestInvoice là một dòng trong danh sách 5 hóa đơn mới nhất, amount đã format tiền tệ.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoiceRow là một dòng trong bảng hóa đơn có filter + phân trang.
type InvoiceRow struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `json:"date"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

// InvoiceDetail là chi tiết một hóa đơn, amount đổi từ cent sang đơn vị thập phân.
type InvoiceDetail struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}
