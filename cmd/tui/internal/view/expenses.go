package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/auth"
	"github.com/MrJamesThe3rd/homeledger/internal/category"
	"github.com/MrJamesThe3rd/homeledger/internal/client"
	"github.com/MrJamesThe3rd/homeledger/internal/listing"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type expenseState int

const (
	expenseStateBrowse expenseState = iota
	expenseStateSearch
	expenseStateForm
)

// ExpenseModel lists, filters and edits expenses. The form runs a live
// budget check against the selected category while the amount is being
// typed.
type ExpenseModel struct {
	CommonModel
	api      *client.Client
	readOnly bool

	state expenseState
	table table.Model

	expenses   []client.Expense
	categories []*category.Category
	accounts   []client.Account
	trips      []client.Trip

	pager          listing.Pager
	categoryFilter int
	searchInput    textinput.Model
	searchValue    string
	debouncer      *listing.Debouncer
	searchCh       chan string

	form      *huh.Form
	editingID *uuid.UUID
	selection category.Selection
	check     *client.BudgetCheck
	lastCheck [4]string

	formAmount   string
	formDesc     string
	formCategory string
	formSubcat   string
	formAccount  string
	formDate     string

	loading bool
	err     error
	status  string
}

func NewExpenseModel(api *client.Client, readOnly bool) ExpenseModel {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Description", Width: 28},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 14},
		{Title: "Trip", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	input := textinput.New()
	input.Placeholder = "search descriptions"
	input.CharLimit = 60

	searchCh := make(chan string, 1)

	return ExpenseModel{
		api:         api,
		readOnly:    readOnly,
		table:       t,
		pager:       listing.NewPager(),
		searchInput: input,
		searchCh:    searchCh,
		debouncer: listing.NewDebouncer(listing.SearchDebounce, func(s string) {
			searchCh <- s
		}),
	}
}

func (m ExpenseModel) Title() string { return "Expenses" }

// Messages

type expenseListMsg struct {
	expenses []client.Expense
	total    int
	err      error
}

type expenseRefsMsg struct {
	categories []client.Category
	accounts   []client.Account
	trips      []client.Trip
	err        error
}

type expenseSavedMsg struct {
	err error
}

type budgetCheckMsg struct {
	key   [4]string
	check *client.BudgetCheck
	err   error
}

type searchMsg struct {
	value string
}

func (m ExpenseModel) waitForSearch() tea.Cmd {
	ch := m.searchCh

	return func() tea.Msg {
		return searchMsg{value: <-ch}
	}
}

func (m ExpenseModel) loadCmd() tea.Cmd {
	filter := client.ExpenseFilter{
		Search: m.searchValue,
		Page:   m.pager.Page,
		Limit:  m.pager.Limit,
	}
	if m.categoryFilter > 0 && m.categoryFilter <= len(m.categories) {
		filter.Category = m.categories[m.categoryFilter-1].Name
	}

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		expenses, total, err := m.api.Expenses(ctx, filter)

		return expenseListMsg{expenses: expenses, total: total, err: err}
	}
}

func (m ExpenseModel) loadRefsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		categories, err := m.api.Categories(ctx)
		if err != nil {
			return expenseRefsMsg{err: err}
		}

		accounts, err := m.api.Accounts(ctx)
		if err != nil {
			return expenseRefsMsg{err: err}
		}

		trips, err := m.api.Trips(ctx)

		return expenseRefsMsg{categories: categories, accounts: accounts, trips: trips, err: err}
	}
}

func (m ExpenseModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.loadRefsCmd(), m.waitForSearch())
}

func (m ExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expenseListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.expenses = msg.expenses
		m.pager.SetTotal(msg.total)
		m.refreshTable()

		return m, nil

	case expenseRefsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.categories = toDomainCategories(msg.categories)
		m.accounts = msg.accounts
		m.trips = msg.trips

		return m, nil

	case expenseSavedMsg:
		m.state = expenseStateBrowse
		m.form = nil
		m.check = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd()

	case budgetCheckMsg:
		// A stale verdict for values that have moved on is dropped.
		if msg.err == nil && msg.key == m.lastCheck {
			m.check = msg.check
		}

		return m, nil

	case searchMsg:
		// A single character never fires a fetch.
		if !listing.SearchReady(msg.value) {
			return m, m.waitForSearch()
		}

		m.searchValue = msg.value
		m.pager.FilterChanged()

		return m, tea.Batch(m.loadCmd(), m.waitForSearch())
	}

	switch m.state {
	case expenseStateBrowse:
		return m.updateBrowse(msg)
	case expenseStateSearch:
		return m.updateSearch(msg)
	case expenseStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m ExpenseModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = expenseStateSearch
			m.table.Blur()
			m.searchInput.Focus()

			return m, textinput.Blink
		case "c":
			m.categoryFilter = (m.categoryFilter + 1) % (len(m.categories) + 1)
			m.pager.FilterChanged()

			return m, m.loadCmd()
		case "n":
			if m.pager.Next() {
				return m, m.loadCmd()
			}

			return m, nil
		case "b":
			if m.pager.Prev() {
				return m, m.loadCmd()
			}

			return m, nil
		case "L":
			m.pager.SetLimit(nextLimit(m.pager.Limit))
			return m, m.loadCmd()
		case "a":
			return m.enterForm(nil)
		case "e":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.expenses) {
				return m.enterForm(&m.expenses[idx])
			}

			return m, nil
		case "d":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func nextLimit(current int) int {
	for i, l := range listing.Limits {
		if l == current {
			return listing.Limits[(i+1)%len(listing.Limits)]
		}
	}

	return listing.DefaultLimit
}

func (m ExpenseModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter":
			m.state = expenseStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.debouncer.Input(m.searchInput.Value())

	return m, cmd
}

func (m ExpenseModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.readOnly {
		m.status = auth.ReadOnlyMessage
		return m, nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return m, nil
	}

	id := m.expenses[idx].ID

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		return expenseSavedMsg{err: m.api.DeleteExpense(ctx, id)}
	}
}

func (m ExpenseModel) enterForm(e *client.Expense) (tea.Model, tea.Cmd) {
	if m.readOnly {
		m.status = auth.ReadOnlyMessage
		return m, nil
	}

	m.editingID = nil
	m.selection = category.Selection{}
	m.formAmount = ""
	m.formDesc = ""
	m.formCategory = ""
	m.formSubcat = ""
	m.formAccount = ""
	m.formDate = time.Now().Format(time.DateOnly)

	if e != nil {
		id := e.ID
		m.editingID = &id
		m.formAmount = money.FormatAmount(e.Amount)
		m.formDesc = e.Description
		m.formCategory = e.Category
		m.formSubcat = e.Subcategory
		m.formAccount = e.AccountID.String()
		m.formDate = e.Date.Format(time.DateOnly)
		m.selection = category.Selection{Category: e.Category, Subcategory: e.Subcategory}
	}

	categoryOptions := make([]huh.Option[string], 0, len(m.categories))
	for _, c := range m.categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.Name))
	}

	accountOptions := make([]huh.Option[string], 0, len(m.accounts))
	for _, a := range m.accounts {
		accountOptions = append(accountOptions, huh.NewOption(a.Name, a.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := money.ParseAmount(s); err != nil {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&m.formCategory),

			huh.NewSelect[string]().
				Key("subcategory").
				Title("Subcategory").
				OptionsFunc(func() []huh.Option[string] {
					subs := m.selection.Options(m.categories)
					opts := make([]huh.Option[string], 0, len(subs)+1)
					opts = append(opts, huh.NewOption("(none)", ""))
					for _, sc := range subs {
						opts = append(opts, huh.NewOption(sc.Name, sc.Name))
					}
					return opts
				}, &m.formCategory).
				Value(&m.formSubcat),

			huh.NewSelect[string]().
				Key("account").
				Title("Account").
				Options(accountOptions...).
				Value(&m.formAccount),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(46).WithShowHelp(false)

	m.state = expenseStateForm
	m.check = nil
	m.lastCheck = [4]string{}
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpenseModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expenseStateBrowse
			m.form = nil
			m.check = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	// Category change cascades: the subcategory resets so the pair can
	// never disagree.
	if m.formCategory != m.selection.Category {
		m.selection.SetCategory(m.formCategory)
		m.formSubcat = ""
	} else if err := m.selection.SetSubcategory(m.formSubcat, m.categories); err != nil {
		m.formSubcat = ""
		m.selection.Subcategory = ""
	}

	checkCmd := m.maybeCheckBudget()

	if m.form.State != huh.StateCompleted {
		return m, tea.Batch(cmd, checkCmd)
	}

	return m, m.saveCmd()
}

// maybeCheckBudget fires the live budget check whenever the
// amount/category/subcategory/date tuple changes. A non-numeric amount
// or empty category clears any standing warning instead.
func (m *ExpenseModel) maybeCheckBudget() tea.Cmd {
	key := [4]string{m.formAmount, m.selection.Category, m.selection.Subcategory, m.formDate}
	if key == m.lastCheck {
		return nil
	}

	m.lastCheck = key

	if !money.IsNumeric(m.formAmount) || m.selection.Category == "" {
		m.check = nil
		return nil
	}

	date, err := time.Parse(time.DateOnly, m.formDate)
	if err != nil {
		date = time.Now()
	}

	amount := m.formAmount
	categoryName := m.selection.Category
	subcategory := m.selection.Subcategory

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		check, err := m.api.CheckBudget(ctx, categoryName, subcategory, amount, date)

		return budgetCheckMsg{key: key, check: check, err: err}
	}
}

// matchTrip auto-associates the expense with the first trip whose
// window contains the date.
func (m ExpenseModel) matchTrip(date time.Time) *uuid.UUID {
	for _, t := range m.trips {
		if t.Within(date) {
			id := t.ID
			return &id
		}
	}

	return nil
}

func (m ExpenseModel) saveCmd() tea.Cmd {
	date, err := time.Parse(time.DateOnly, m.formDate)
	if err != nil {
		date = time.Now()
	}

	accountID, err := uuid.Parse(m.formAccount)
	if err != nil {
		return func() tea.Msg {
			return expenseSavedMsg{err: fmt.Errorf("select an account")}
		}
	}

	params := client.ExpenseParams{
		Amount:      m.formAmount,
		Description: m.formDesc,
		Category:    m.selection.Category,
		Subcategory: m.selection.Subcategory,
		AccountID:   accountID,
		Date:        date,
		TripID:      m.matchTrip(date),
	}
	editingID := m.editingID

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		if editingID != nil {
			_, err := m.api.UpdateExpense(ctx, *editingID, params)
			return expenseSavedMsg{err: err}
		}

		_, err := m.api.CreateExpense(ctx, params)

		return expenseSavedMsg{err: err}
	}
}

func (m *ExpenseModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))

	for _, e := range m.expenses {
		categoryLabel := e.Category
		if e.Subcategory != "" {
			categoryLabel += " / " + e.Subcategory
		}

		tripMark := ""
		if e.TripID != nil {
			tripMark = "yes"
		}

		rows = append(rows, table.Row{
			money.FormatDate(e.Date),
			e.Description,
			categoryLabel,
			money.FormatINR(e.Amount),
			tripMark,
		})
	}

	m.table.SetRows(rows)
}

func (m ExpenseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(m.err.Error()))
	}

	categoryLabel := "All"
	if m.categoryFilter > 0 && m.categoryFilter <= len(m.categories) {
		categoryLabel = m.categories[m.categoryFilter-1].Name
	}

	header := fmt.Sprintf(
		"Filter: [c] Category: %s | [/] Search: %s | Page %d/%d (%d rows) | [L] Limit: %d",
		activeStyle.Render(categoryLabel),
		activeStyle.Render(m.searchValue),
		m.pager.Page, m.pager.TotalPages(), m.pager.Total, m.pager.Limit,
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		faintStyle.Render("a: add | e: edit | d: delete | n/b: page | r: refresh | esc: back"),
	)

	if m.state == expenseStateSearch {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "Search: "+m.searchInput.View())
	}

	if m.state == expenseStateForm && m.form != nil {
		formTitle := "Add Expense"
		if m.editingID != nil {
			formTitle = "Edit Expense"
		}

		body := formTitle + "\n\n" + m.form.View()
		if banner := m.budgetBanner(); banner != "" {
			body += "\n" + banner
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Width(50).Render(body))
	}

	if m.status != "" {
		content = warnStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// budgetBanner renders the live check verdict. Only nearLimit and
// overBudget warrant a warning.
func (m ExpenseModel) budgetBanner() string {
	if m.check == nil {
		return ""
	}

	switch m.check.Status {
	case "overBudget":
		overBy := int64(0)
		if m.check.OverBy != nil {
			overBy = *m.check.OverBy
		}

		return errorStyle.Render(fmt.Sprintf("This will exceed your budget by %s", money.FormatINR(overBy)))
	case "nearLimit":
		remaining := int64(0)
		if m.check.Remaining != nil {
			remaining = *m.check.Remaining
		}

		return warnStyle.Render(fmt.Sprintf("Approaching budget limit, %s remaining", money.FormatINR(remaining)))
	}

	return ""
}

func toDomainCategories(in []client.Category) []*category.Category {
	out := make([]*category.Category, 0, len(in))

	for _, c := range in {
		subs := make([]category.Subcategory, 0, len(c.Subcategories))
		for _, name := range c.Subcategories {
			subs = append(subs, category.Subcategory{Name: name})
		}

		out = append(out, &category.Category{
			Name:          c.Name,
			Type:          category.Type(c.Type),
			Subcategories: subs,
			Color:         c.Color,
		})
	}

	return out
}
