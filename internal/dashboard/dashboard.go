// Package dashboard aggregates monthly figures across accounts, salary
// credits, expenses, and investment transfers.
package dashboard

// MonthTotals groups one month's money movement in paise.
type MonthTotals struct {
	Salary     int64
	Expense    int64
	Investment int64
}

// Net is what the month added to the household after expenses and
// investment contributions.
func (t MonthTotals) Net() int64 {
	return t.Salary - t.Expense - t.Investment
}

// ChartPoint is one bar group on the yearly chart.
type ChartPoint struct {
	Label      string `json:"label"`
	Salary     int64  `json:"salary"`
	Expense    int64  `json:"expense"`
	Investment int64  `json:"investment"`
}

// Summary is the monthly dashboard payload. All figures are paise.
type Summary struct {
	TotalBalance              int64        `json:"totalBalance"`
	TotalSalary               int64        `json:"totalSalary"`
	TotalExpenses             int64        `json:"totalExpenses"`
	NetThisMonth              int64        `json:"netThisMonth"`
	CarryForward              int64        `json:"carryForward"`
	Investment                int64        `json:"investment"`
	CarryForwardFromLastMonth int64        `json:"carryForwardFromLastMonth"`
	MonthlyChart              []ChartPoint `json:"monthlyChart"`
}

// CategorySlice is one row of the expense-by-category breakdown.
type CategorySlice struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Count    int    `json:"count"`
}
