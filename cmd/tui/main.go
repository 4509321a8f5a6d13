package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/homeledger/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/homeledger/internal/client"
	"github.com/MrJamesThe3rd/homeledger/internal/config"
)

type model struct {
	api     *client.Client
	store   *client.SessionStore
	session *client.Session

	currentView View

	loginView     view.LoginModel
	dashboardView view.DashboardModel
	expenseView   view.ExpenseModel
	transferView  view.TransferModel
	milkView      view.MilkModel
}

type View int

const (
	ViewLogin     View = 0
	ViewMenu      View = 1
	ViewDashboard View = 2
	ViewExpenses  View = 3
	ViewTransfer  View = 4
	ViewMilk      View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	api := client.New(cfg.Client.BaseURL)
	store := client.NewSessionStore(cfg.Client.SessionFile)

	m := model{
		api:         api,
		store:       store,
		currentView: ViewLogin,
		loginView:   view.NewLoginModel(api),
	}

	// A saved session skips the login screen entirely.
	if session, err := store.Load(); err == nil && session != nil {
		api.SetToken(session.Token)
		m.session = session
		m.currentView = ViewMenu
	}

	return m
}

func (m model) readOnly() bool {
	return m.session != nil && m.session.User.ReadOnly()
}

func (m model) Init() tea.Cmd {
	if m.currentView == ViewLogin {
		return m.loginView.Init()
	}

	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.api)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewExpenses
				m.expenseView = view.NewExpenseModel(m.api, m.readOnly())

				return m, m.expenseView.Init()
			case "3":
				m.currentView = ViewTransfer
				m.transferView = view.NewTransferModel(m.api, m.readOnly())

				return m, m.transferView.Init()
			case "4":
				m.currentView = ViewMilk
				m.milkView = view.NewMilkModel(m.api, m.readOnly())

				return m, m.milkView.Init()
			case "x":
				return m, view.Logout
			}
		}
	case view.LoginDoneMsg:
		m.session = msg.Session
		m.currentView = ViewMenu

		if err := m.store.Save(msg.Session); err != nil {
			slog.Error("failed to save session", "error", err)
		}

		return m, nil
	case view.LogoutMsg:
		if err := m.store.Clear(); err != nil {
			slog.Error("failed to clear session", "error", err)
		}

		m.session = nil
		m.api.SetToken("")
		m.currentView = ViewLogin
		m.loginView = view.NewLoginModel(m.api)

		return m, m.loginView.Init()
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expenseView.Update(msg)
		m.expenseView = newModel.(view.ExpenseModel)
	case ViewTransfer:
		var newModel tea.Model
		newModel, cmd = m.transferView.Update(msg)
		m.transferView = newModel.(view.TransferModel)
	case ViewMilk:
		var newModel tea.Model
		newModel, cmd = m.milkView.Update(msg)
		m.milkView = newModel.(view.MilkModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		greeting := "HomeLedger"
		if m.session != nil {
			greeting = "HomeLedger  |  " + m.session.Household.Name + "  |  " + m.session.User.Name
			if m.readOnly() {
				greeting += " (read-only)"
			}
		}

		return lipgloss.NewStyle().Padding(2).Render(
			greeting + "\n\n" +
				"1. Dashboard\n" +
				"2. Expenses\n" +
				"3. Accounts & Transfers\n" +
				"4. Milk Delivery\n\n" +
				"x. Logout\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewExpenses:
		return m.expenseView.View()
	case ViewTransfer:
		return m.transferView.View()
	case ViewMilk:
		return m.milkView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
