package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency chuyển số tiền từ đơn vị cent sang chuỗi USD, ví dụ
// 15795 -> "$157.95", 123456789 -> "$1,234,567.89".
func FormatCurrency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(amount/100), amount%100)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
