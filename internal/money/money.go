// Package money handles amount parsing, locale-aware formatting and
// privacy masking for values stored as int64 paise.
package money

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrInvalidAmount = errors.New("invalid amount")

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// ParseAmount parses a decimal string into paise.
// Accepts "12.34" -> 1234 and rounds half-up past two decimals.
// Only strictly positive amounts are valid.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	paise := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise <= 0 {
		return 0, ErrInvalidAmount
	}

	return paise, nil
}

// IsNumeric reports whether s parses as a decimal number at all,
// regardless of sign. Used to decide whether a budget check may fire.
func IsNumeric(s string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}

// FormatINR renders paise as an Indian-grouped rupee string, e.g. 123456789 -> "₹12,34,567.89".
func FormatINR(paise int64) string {
	rupees := float64(paise) / 100.0

	return enIN.Sprintf("₹%v", number.Decimal(rupees,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatAmount formats paise as a plain two-decimal string without grouping.
func FormatAmount(paise int64) string {
	d := decimal.New(paise, -2)
	return d.StringFixed(2)
}

// Mask replaces a rendered value with asterisks of the same length.
// Empty values render as "-".
func Mask(s string) string {
	if s == "" {
		return "-"
	}

	return strings.Repeat("*", len([]rune(s)))
}

// FormatDate formats a time as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

/// FormatDateTime formats a time as "02 Jan 2006 03:04 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("02 Jan 2006 03:04 PM")
}

// Months holds short month labels indexed 0-11, matching the wire format
// used for budget and filter months.
var Months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// YearOptions returns n years descending from the current year.
func YearOptions(n int) []int {
	year := time.Now().Year()

	years := make([]int, n)
	for i := range years {
		years[i] = year - i
	}

	return years
}
