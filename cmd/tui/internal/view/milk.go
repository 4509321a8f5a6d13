package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/homeledger/internal/auth"
	"github.com/MrJamesThe3rd/homeledger/internal/client"
	"github.com/MrJamesThe3rd/homeledger/internal/listing"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type milkState int

const (
	milkStateBrowse milkState = iota
	milkStateForm
)

// MilkModel tracks daily milk deliveries for one month at a time. Once
// the month is settled it becomes a read-only record; add, delete and
// settle are all blocked.
type MilkModel struct {
	CommonModel
	api      *client.Client
	readOnly bool

	state   milkState
	month   int
	year    int
	entries []client.MilkEntry
	settled bool
	pager   listing.Pager

	settlements []client.SettledMonth

	tbl  table.Model
	form *huh.Form

	formDate     string
	formQuantity string
	formRate     string

	private bool
	loading bool
	err     error
	status  string
}

func NewMilkModel(api *client.Client, readOnly bool) MilkModel {
	now := time.Now()

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 14},
			{Title: "Quantity (L)", Width: 12},
			{Title: "Rate", Width: 12},
			{Title: "Amount", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return MilkModel{
		api:      api,
		readOnly: readOnly,
		month:    int(now.Month()) - 1,
		year:     now.Year(),
		pager:    listing.Pager{Page: 1, Limit: listing.DefaultLimit},
		tbl:      tbl,
	}
}

type milkDataMsg struct {
	entries     []client.MilkEntry
	total       int
	settled     bool
	settlements []client.SettledMonth
	err         error
}

type milkDoneMsg struct {
	settlement *client.MilkSettlement
	err        error
}

func (m MilkModel) loadCmd() tea.Cmd {
	month, year := m.month, m.year
	page, limit := m.pager.Page, m.pager.Limit

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		entries, total, settled, err := m.api.MilkEntries(ctx, month, year, page, limit)
		if err != nil {
			return milkDataMsg{err: err}
		}

		settlements, err := m.api.SettledMonths(ctx)

		return milkDataMsg{
			entries:     entries,
			total:       total,
			settled:     settled,
			settlements: settlements,
			err:         err,
		}
	}
}

func (m MilkModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MilkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case milkDataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.entries = msg.entries
		m.settled = msg.settled
		m.settlements = msg.settlements
		m.pager.SetTotal(msg.total)

		rows := make([]table.Row, 0, len(msg.entries))
		for _, e := range msg.entries {
			rows = append(rows, table.Row{
				money.FormatDate(e.Date),
				e.Quantity.String(),
				Money(e.Rate, m.private),
				Money(e.Amount, m.private),
			})
		}
		m.tbl.SetRows(rows)

		return m, nil

	case milkDoneMsg:
		m.state = milkStateBrowse
		m.form = nil

		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}

		m.status = ""
		if msg.settlement != nil {
			m.status = fmt.Sprintf("Settled %s %d for %s",
				money.Months[msg.settlement.Month], msg.settlement.Year,
				Money(msg.settlement.TotalAmount, m.private))
		}

		return m, m.loadCmd()
	}

	if m.state == milkStateForm {
		return m.updateForm(msg)
	}

	return m.updateBrowse(msg)
}

func (m MilkModel) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	m.month += delta
	if m.month < 0 {
		m.month = 11
		m.year--
	} else if m.month > 11 {
		m.month = 0
		m.year++
	}

	m.pager.Page = 1
	m.loading = true

	return m, m.loadCmd()
}

func (m MilkModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "p":
		m.private = !m.private
		return m, m.loadCmd()
	case "r":
		return m, m.loadCmd()
	case "left", "h":
		return m.shiftMonth(-1)
	case "right", "l":
		return m.shiftMonth(1)
	case "n":
		if m.pager.HasNext() {
			m.pager.Next()
			return m, m.loadCmd()
		}
		return m, nil
	case "b":
		if m.pager.HasPrev() {
			m.pager.Prev()
			return m, m.loadCmd()
		}
		return m, nil
	case "a":
		return m.enterForm()
	case "d":
		return m.deleteSelected()
	case "s":
		return m.settle()
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)

	return m, cmd
}

// guardWrite reports whether mutations are allowed for the current
// month, setting a status message when they are not.
func (m *MilkModel) guardWrite() bool {
	if m.readOnly {
		m.status = auth.ReadOnlyMessage
		return false
	}

	if m.settled {
		m.status = fmt.Sprintf("%s %d is settled and can no longer be changed", money.Months[m.month], m.year)
		return false
	}

	return true
}

func (m MilkModel) enterForm() (tea.Model, tea.Cmd) {
	if !m.guardWrite() {
		return m, nil
	}

	m.formDate = time.Now().Format(time.DateOnly)
	m.formQuantity = ""
	m.formRate = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Key("quantity").
				Title("Quantity (litres)").
				Value(&m.formQuantity).
				Validate(func(s string) error {
					qty, err := decimal.NewFromString(s)
					if err != nil || !qty.IsPositive() {
						return fmt.Errorf("enter a positive quantity")
					}
					return nil
				}),
			huh.NewInput().
				Key("rate").
				Title("Rate per litre").
				Value(&m.formRate).
				Validate(func(s string) error {
					if _, err := money.ParseAmount(s); err != nil {
						return fmt.Errorf("enter a positive rate")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = milkStateForm

	return m, m.form.Init()
}

func (m MilkModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = milkStateBrowse
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	date, _ := time.Parse(time.DateOnly, m.formDate)
	params := client.MilkEntryParams{
		Date:     date,
		Quantity: m.formQuantity,
		Rate:     m.formRate,
	}

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		_, err := m.api.AddMilkEntry(ctx, params)

		return milkDoneMsg{err: err}
	}
}

func (m MilkModel) deleteSelected() (tea.Model, tea.Cmd) {
	if !m.guardWrite() {
		return m, nil
	}

	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return m, nil
	}

	id := m.entries[idx].ID

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		return milkDoneMsg{err: m.api.DeleteMilkEntry(ctx, id)}
	}
}

func (m MilkModel) settle() (tea.Model, tea.Cmd) {
	if !m.guardWrite() {
		return m, nil
	}

	month, year := m.month, m.year

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		settlement, err := m.api.SettleMilkMonth(ctx, month, year)

		return milkDoneMsg{settlement: settlement, err: err}
	}
}

func (m MilkModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading milk entries...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(m.err.Error()))
	}

	var b strings.Builder

	title := fmt.Sprintf("Milk Delivery  %s %d", money.Months[m.month], m.year)
	b.WriteString(titleStyle.Render(title))

	if m.settled {
		b.WriteString("  " + warnStyle.Render("[settled]"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.tbl.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("Page %d of %d (%d entries)",
		m.pager.Page, m.pager.TotalPages(), m.pager.Total)))

	var total int64
	for _, e := range m.entries {
		total += e.Amount
	}
	b.WriteString("\n" + fmt.Sprintf("Page total: %s", Money(total, m.private)))

	if len(m.settlements) > 0 {
		b.WriteString("\n\n" + titleStyle.Render("Settled Months") + "\n")
		for _, s := range m.settlements {
			b.WriteString(fmt.Sprintf("%s %d\n", money.Months[s.Month], s.Year))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + warnStyle.Render(m.status))
	}

	help := "a: add | d: delete | s: settle month | ←/→: month | n/b: page | p: privacy | esc: back"
	b.WriteString("\n\n" + faintStyle.Render(help))

	content := b.String()

	if m.state == milkStateForm && m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content,
			panelStyle.Width(44).Render("Add Entry\n\n"+m.form.View()))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
