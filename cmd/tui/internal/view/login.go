package view

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/homeledger/internal/client"
)

// LoginModel gates the whole TUI. Submitting is blocked until a client
// location has been acquired; every attempt is sent with its
// coordinates.
type LoginModel struct {
	CommonModel
	api *client.Client

	form     *huh.Form
	location *client.Location
	loading  bool
	err      error

	formUser string
	formPass string
}

func NewLoginModel(api *client.Client) LoginModel {
	m := LoginModel{api: api}
	m.form = m.newForm()

	return m
}

func (m LoginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&m.formUser).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.formPass),
		),
	).WithWidth(40).WithShowHelp(false)
}

type locationMsg struct {
	location *client.Location
}

// acquireLocation reads the device coordinates from the environment.
// No coordinates means no login.
func acquireLocation() tea.Msg {
	lat, latErr := strconv.ParseFloat(os.Getenv("CLIENT_LAT"), 64)
	lon, lonErr := strconv.ParseFloat(os.Getenv("CLIENT_LON"), 64)

	if latErr != nil || lonErr != nil {
		return locationMsg{}
	}

	return locationMsg{location: &client.Location{Lat: lat, Lon: lon}}
}

// LoginDoneMsg hands the fresh session to the root model.
type LoginDoneMsg struct {
	Session *client.Session
}

type loginResultMsg struct {
	session *client.Session
	err     error
}

func (m LoginModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), acquireLocation)
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case locationMsg:
		m.location = msg.location
		return m, nil

	case loginResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.form = m.newForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoginDoneMsg{Session: msg.session} }

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.loading {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.location == nil {
		// Keep the form alive; the gate message explains why nothing
		// happened.
		m.form = m.newForm()
		return m, m.form.Init()
	}

	m.loading = true
	m.err = nil

	return m, m.loginCmd(m.form.GetString("username"), m.form.GetString("password"))
}

func (m LoginModel) loginCmd(username, password string) tea.Cmd {
	location := m.location

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		session, err := m.api.Login(ctx, username, password, location)

		return loginResultMsg{session: session, err: err}
	}
}

func (m LoginModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Signing in...")
	}

	parts := []string{
		titleStyle.Render("HomeLedger"),
		"",
		m.form.View(),
	}

	if m.location == nil {
		parts = append(parts, warnStyle.Render("Waiting for location. Set CLIENT_LAT and CLIENT_LON; login is blocked without them."))
	}

	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}
