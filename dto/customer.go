package dto

// CustomerField dùng cho dropdown chọn khách hàng.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerRow là một dòng trong bảng khách hàng kèm tổng hợp hóa đơn.
// TotalPending/TotalPaid đã format tiền tệ ("$0.00" khi chưa có hóa đơn).
type CustomerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// CustomerTable gói kết quả filter kèm gợi ý tên khi không tìm thấy dòng nào.
type CustomerTable struct {
	Customers   []CustomerRow `json:"customers"`
	Suggestions []string      `json:"suggestions,omitempty"`
}
