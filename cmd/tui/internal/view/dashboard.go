package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/homeledger/internal/client"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

// DashboardModel shows the month's summary cards and yearly chart.
// Changing the period refetches; toggling privacy mode only re-renders.
type DashboardModel struct {
	CommonModel
	api *client.Client

	month int
	year  int

	summary *client.DashboardSummary
	slices  []client.CategorySlice

	private bool
	loading bool
	spin    spinner.Model
	err     error
}

func NewDashboardModel(api *client.Client) DashboardModel {
	now := time.Now()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return DashboardModel{
		api:   api,
		month: int(now.Month()) - 1,
		year:  now.Year(),
		spin:  s,
	}
}

type dashboardMsg struct {
	summary *client.DashboardSummary
	slices  []client.CategorySlice
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	month, year := m.month, m.year

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		summary, err := m.api.DashboardSummary(ctx, month, year)
		if err != nil {
			return dashboardMsg{err: err}
		}

		slices, err := m.api.ExpenseSummary(ctx, month, year)

		return dashboardMsg{summary: summary, slices: slices, err: err}
	}
}

func (m DashboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.summary = msg.summary
		m.slices = msg.slices
		m.err = nil

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "p":
			m.private = !m.private
			return m, nil
		case "left", "h":
			m.month--
			if m.month < 0 {
				m.month = 11
				m.year--
			}

			m.loading = true

			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		case "right", "l":
			m.month++
			if m.month > 11 {
				m.month = 0
				m.year++
			}

			m.loading = true

			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		case "r":
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	header := fmt.Sprintf("%s %d  %s",
		titleStyle.Render(money.Months[m.month]), m.year,
		faintStyle.Render("←/→: month | p: privacy | r: refresh | esc: back"))

	if m.loading {
		return lipgloss.NewStyle().Padding(1, 2).Render(header + "\n\n" + m.spin.View() + " Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(header + "\n\n" + errorStyle.Render(m.err.Error()))
	}

	if m.summary == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(header)
	}

	s := m.summary

	cards := [][2]string{
		{"Total Balance", Money(s.TotalBalance, m.private)},
		{"Salary", Money(s.TotalSalary, m.private)},
		{"Expenses", Money(s.TotalExpenses, m.private)},
		{"Investment", Money(s.Investment, m.private)},
		{"Net This Month", Money(s.NetThisMonth, m.private)},
		{"Carry Forward", Money(s.CarryForward, m.private)},
		{"From Last Month", Money(s.CarryForwardFromLastMonth, m.private)},
	}

	var b strings.Builder

	b.WriteString(header + "\n\n")

	for _, card := range cards {
		b.WriteString(fmt.Sprintf("%-18s %s\n", card[0], card[1]))
	}

	if len(m.slices) > 0 {
		b.WriteString("\n" + titleStyle.Render("Spending by Category") + "\n")

		for _, slice := range m.slices {
			b.WriteString(fmt.Sprintf("%-18s %s  %s\n",
				slice.Category,
				Money(slice.Total, m.private),
				faintStyle.Render(fmt.Sprintf("(%d)", slice.Count))))
		}
	}

	b.WriteString("\n" + titleStyle.Render("Year at a Glance") + "\n")

	for _, point := range m.summary.MonthlyChart {
		if point.Salary == 0 && point.Expense == 0 && point.Investment == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("%-4s salary %-14s spent %-14s invested %s\n",
			point.Label,
			Money(point.Salary, m.private),
			Money(point.Expense, m.private),
			Money(point.Investment, m.private)))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
