package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
	"github.com/MrJamesThe3rd/homeledger/internal/accounttx"
	"github.com/MrJamesThe3rd/homeledger/internal/auth"
	"github.com/MrJamesThe3rd/homeledger/internal/client"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type transferState int

const (
	transferStateBrowse transferState = iota
	transferStateMove
	transferStateSalary
)

// TransferModel shows account balances and records transfers and salary
// credits. The destination account's type decides the effective
// transaction type; picking an investment account forces "investment"
// and pre-fills the default note.
type TransferModel struct {
	CommonModel
	api      *client.Client
	readOnly bool

	state    transferState
	accounts []client.Account
	recent   []client.Transaction

	form *huh.Form

	formType string
	formFrom string
	formTo   string
	formAmt  string
	formNote string

	private bool
	loading bool
	err     error
	status  string
}

func NewTransferModel(api *client.Client, readOnly bool) TransferModel {
	return TransferModel{api: api, readOnly: readOnly}
}

type transferDataMsg struct {
	accounts []client.Account
	recent   []client.Transaction
	err      error
}

type transferDoneMsg struct {
	err error
}

func (m TransferModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		accounts, err := m.api.Accounts(ctx)
		if err != nil {
			return transferDataMsg{err: err}
		}

		now := time.Now()

		recent, err := m.api.RecentTransactions(ctx, int(now.Month())-1, now.Year(), 5)

		return transferDataMsg{accounts: accounts, recent: recent, err: err}
	}
}

func (m TransferModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transferDataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.accounts = msg.accounts
		m.recent = msg.recent

		return m, nil

	case transferDoneMsg:
		m.state = transferStateBrowse
		m.form = nil

		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd()
	}

	if m.state == transferStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m TransferModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "p":
		m.private = !m.private
		return m, nil
	case "r":
		m.loading = true
		return m, m.loadCmd()
	case "t":
		return m.enterForm(transferStateMove)
	case "s":
		return m.enterForm(transferStateSalary)
	}

	return m, nil
}

func (m TransferModel) accountByID(id string) *client.Account {
	for i := range m.accounts {
		if m.accounts[i].ID.String() == id {
			return &m.accounts[i]
		}
	}

	return nil
}

// effectiveType classifies the form's current selection against the
// destination account.
func (m TransferModel) effectiveType() accounttx.Type {
	destType := account.Type("")
	if dest := m.accountByID(m.formTo); dest != nil {
		destType = account.Type(dest.Type)
	}

	return accounttx.Classify(accounttx.Type(m.formType), destType)
}

func (m TransferModel) enterForm(state transferState) (tea.Model, tea.Cmd) {
	if m.readOnly {
		m.status = auth.ReadOnlyMessage
		return m, nil
	}

	m.formType = string(accounttx.TypeTransfer)
	m.formFrom = ""
	m.formTo = ""
	m.formAmt = ""
	m.formNote = ""

	amountField := huh.NewInput().
		Key("amount").
		Title("Amount").
		Value(&m.formAmt).
		Validate(func(s string) error {
			if _, err := money.ParseAmount(s); err != nil {
				return fmt.Errorf("enter a positive amount")
			}
			return nil
		})

	noteField := huh.NewInput().
		Key("note").
		Title("Note").
		Value(&m.formNote)

	if state == transferStateSalary {
		accountOptions := make([]huh.Option[string], 0, len(m.accounts))
		for _, a := range m.accounts {
			accountOptions = append(accountOptions, huh.NewOption(a.Name, a.ID.String()))
		}

		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Key("account").
					Title("Credit To").
					Options(accountOptions...).
					Value(&m.formTo),
				amountField,
				noteField,
			),
		).WithWidth(46).WithShowHelp(false)
	} else {
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Key("from").
					Title("From").
					OptionsFunc(func() []huh.Option[string] {
						// The destination account cannot also be the
						// source.
						opts := make([]huh.Option[string], 0, len(m.accounts))
						for _, a := range m.accounts {
							if a.ID.String() == m.formTo {
								continue
							}
							opts = append(opts, huh.NewOption(a.Name, a.ID.String()))
						}
						return opts
					}, &m.formTo).
					Value(&m.formFrom),

				huh.NewSelect[string]().
					Key("to").
					Title("To").
					OptionsFunc(func() []huh.Option[string] {
						opts := make([]huh.Option[string], 0, len(m.accounts))
						for _, a := range m.accounts {
							if a.ID.String() == m.formFrom {
								continue
							}
							opts = append(opts, huh.NewOption(a.Name, a.ID.String()))
						}
						return opts
					}, &m.formFrom).
					Value(&m.formTo),

				huh.NewSelect[string]().
					Key("type").
					Title("Type").
					OptionsFunc(func() []huh.Option[string] {
						// An investment destination forces the type;
						// the dropdown collapses to the forced value.
						if m.effectiveType() == accounttx.TypeInvestment {
							return []huh.Option[string]{
								huh.NewOption("Investment (forced)", string(accounttx.TypeInvestment)),
							}
						}
						return []huh.Option[string]{
							huh.NewOption("Transfer", string(accounttx.TypeTransfer)),
							huh.NewOption("Deposit", string(accounttx.TypeDeposit)),
						}
					}, &m.formTo).
					Value(&m.formType),

				amountField,
				noteField,
			),
		).WithWidth(46).WithShowHelp(false)
	}

	m.state = state

	return m, m.form.Init()
}

func (m TransferModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transferStateBrowse
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.state == transferStateMove && m.effectiveType() == accounttx.TypeInvestment && m.formNote == "" {
		m.formNote = accounttx.DefaultInvestmentNote
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == transferStateSalary {
		return m, m.salaryCmd()
	}

	return m, m.transferCmd()
}

func (m TransferModel) transferCmd() tea.Cmd {
	fromID, err := uuid.Parse(m.formFrom)
	if err != nil {
		return func() tea.Msg { return transferDoneMsg{err: fmt.Errorf("select a source account")} }
	}

	toID, err := uuid.Parse(m.formTo)
	if err != nil {
		return func() tea.Msg { return transferDoneMsg{err: fmt.Errorf("select a destination account")} }
	}

	params := client.TransferParams{
		Type:          string(m.effectiveType()),
		Amount:        m.formAmt,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Note:          m.formNote,
		Date:          time.Now(),
	}

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		_, err := m.api.Transfer(ctx, params)

		return transferDoneMsg{err: err}
	}
}

func (m TransferModel) salaryCmd() tea.Cmd {
	accountID, err := uuid.Parse(m.formTo)
	if err != nil {
		return func() tea.Msg { return transferDoneMsg{err: fmt.Errorf("select an account")} }
	}

	params := client.SalaryParams{
		AccountID: accountID,
		Amount:    m.formAmt,
		Note:      m.formNote,
		Date:      time.Now(),
	}

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		_, err := m.api.RecordSalary(ctx, params)

		return transferDoneMsg{err: err}
	}
}

func (m TransferModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(m.err.Error()))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Accounts") + "\n\n")

	for _, a := range m.accounts {
		b.WriteString(fmt.Sprintf("%-20s %-12s %s\n", a.Name, a.Type, Money(a.Balance, m.private)))
	}

	if len(m.recent) > 0 {
		b.WriteString("\n" + titleStyle.Render("Recent Movements") + "\n")

		for _, tx := range m.recent {
			b.WriteString(fmt.Sprintf("%-13s %-12s %s  %s\n",
				money.FormatDate(tx.Date), tx.Type, Money(tx.Amount, m.private),
				faintStyle.Render(tx.Note)))
		}
	}

	b.WriteString("\n" + faintStyle.Render("t: transfer | s: salary | p: privacy | r: refresh | esc: back"))

	content := b.String()

	if m.state != transferStateBrowse && m.form != nil {
		formTitle := "Transfer"
		if m.state == transferStateSalary {
			formTitle = "Record Salary"
		}

		body := formTitle + "\n\n" + m.form.View()
		if m.state == transferStateMove && m.effectiveType() == accounttx.TypeInvestment {
			body += "\n" + warnStyle.Render("Destination is an investment account; type is forced to investment.")
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Width(50).Render(body))
	}

	if m.status != "" {
		content = warnStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
