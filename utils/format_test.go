package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{666, "$6.66"},
		{15795, "$157.95"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-15795, "-$157.95"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatCurrency(tc.amount))
	}
}
