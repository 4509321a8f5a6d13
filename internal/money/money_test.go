package money_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "Whole", input: "300", want: 30000},
		{name: "TwoDecimals", input: "12.34", want: 1234},
		{name: "RoundsHalfUp", input: "12.345", want: 1235},
		{name: "RoundsDown", input: "12.344", want: 1234},
		{name: "Whitespace", input: "  53.50 ", want: 5350},
		{name: "Empty", input: "", wantErr: true},
		{name: "NonNumeric", input: "abc", wantErr: true},
		{name: "Zero", input: "0", wantErr: true},
		{name: "Negative", input: "-10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, money.IsNumeric("300"))
	assert.True(t, money.IsNumeric("0.5"))
	assert.True(t, money.IsNumeric("-2"))
	assert.False(t, money.IsNumeric(""))
	assert.False(t, money.IsNumeric("12a"))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹100.00", money.FormatINR(10000))
	assert.Equal(t, "₹4,800.00", money.FormatINR(480000))
	// Indian grouping: lakhs and crores.
	assert.Equal(t, "₹12,34,567.89", money.FormatINR(123456789))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100.00", money.FormatAmount(10000))
	assert.Equal(t, "0.05", money.FormatAmount(5))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "-", money.Mask(""))
	assert.Equal(t, "****", money.Mask("1234"))
	assert.Equal(t, "*********", money.Mask("₹4,800.00"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 7, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Jul 9, 2025", money.FormatDate(d))
	assert.Equal(t, "09 Jul 2025 02:30 PM", money.FormatDateTime(d))
}

func TestYearOptions(t *testing.T) {
	years := money.YearOptions(5)
	require.Len(t, years, 5)

	current := time.Now().Year()
	for i, y := range years {
		assert.Equal(t, current-i, y)
	}
}
