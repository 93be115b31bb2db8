package constants

// Invoice status
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)
