package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/auth"
	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/config"
	"github.com/talentwork128/mailvet/internal/monitor"
	"github.com/talentwork128/mailvet/internal/ui/account"
	"github.com/talentwork128/mailvet/internal/ui/login"
	"github.com/talentwork128/mailvet/internal/ui/messages"
	"github.com/talentwork128/mailvet/internal/ui/notifications"
	planview "github.com/talentwork128/mailvet/internal/ui/plans"
	"github.com/talentwork128/mailvet/internal/ui/preview"
	"github.com/talentwork128/mailvet/internal/ui/register"
	"github.com/talentwork128/mailvet/internal/ui/statusbar"
	"github.com/talentwork128/mailvet/internal/ui/support"
	"github.com/talentwork128/mailvet/internal/ui/templateform"
	"github.com/talentwork128/mailvet/internal/ui/templatelist"
	"github.com/talentwork128/mailvet/internal/ui/verify"
)

// ViewType identifies the active view.
type ViewType int

const (
	ViewTemplates ViewType = iota
	ViewPreview
	ViewForm
	ViewLogin
	ViewRegister
	ViewVerify
	ViewPlans
	ViewSupport
	ViewNotifications
	ViewAccount
)

// textEntryView reports whether a view owns the keyboard.
func textEntryView(v ViewType) bool {
	switch v {
	case ViewLogin, ViewRegister, ViewVerify, ViewForm, ViewSupport:
		return true
	}
	return false
}

// App is the root Bubble Tea model.
type App struct {
	// View state
	activeView    ViewType
	previousViews []ViewType

	// Child models
	templateList  templatelist.Model
	previewView   preview.Model
	formView      templateform.Model
	loginForm     login.Model
	registerForm  register.Model
	verifyForm    verify.Model
	plansView     planview.Model
	supportForm   support.Model
	notifications notifications.Model
	accountView   account.Model
	statusBar     statusbar.Model

	// Shared state
	cfg     config.Config
	client  *api.Client
	cache   *cache.DB
	session *auth.Session
	monitor *monitor.Monitor

	// Dimensions
	width  int
	height int

	// For passing program reference to the monitor
	program *tea.Program
}

// NewApp creates the root application model.
func NewApp(cfg config.Config, client *api.Client, db *cache.DB, session *auth.Session) *App {
	mon := monitor.New(cfg, client, db, session)

	return &App{
		activeView:    ViewTemplates,
		templateList:  templatelist.New(cfg, client, db),
		plansView:     planview.New(db, session.LoggedIn()),
		supportForm:   support.New(client, session.CurrentUser),
		notifications: notifications.New(db),
		accountView:   account.New(session),
		statusBar:     statusbar.New(),
		cfg:           cfg,
		client:        client,
		cache:         db,
		session:       session,
		monitor:       mon,
	}
}

// SetProgram stores the tea.Program reference and starts the background
// status monitor.
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	a.monitor.Start(p)
}

// Init restores the session and loads the dashboard.
func (a *App) Init() tea.Cmd {
	return a.initializeSession()
}

func (a *App) initializeSession() tea.Cmd {
	session := a.session
	return func() tea.Msg {
		session.Initialize(context.Background())
		return messages.SessionReadyMsg{User: session.CurrentUser}
	}
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := msg.Height - 1 // Reserve 1 line for the status bar.
		a.templateList.SetSize(msg.Width, contentHeight)
		a.statusBar.SetSize(msg.Width)
		switch a.activeView {
		case ViewPreview:
			a.previewView.SetSize(msg.Width, contentHeight)
		case ViewForm:
			a.formView.SetSize(msg.Width, contentHeight)
		case ViewLogin:
			a.loginForm.SetSize(msg.Width, contentHeight)
		case ViewRegister:
			a.registerForm.SetSize(msg.Width, contentHeight)
		case ViewVerify:
			a.verifyForm.SetSize(msg.Width, contentHeight)
		case ViewPlans:
			a.plansView.SetSize(msg.Width, contentHeight)
		case ViewSupport:
			a.supportForm.SetSize(msg.Width, contentHeight)
		case ViewNotifications:
			a.notifications.SetSize(msg.Width, contentHeight)
		case ViewAccount:
			a.accountView.SetSize(msg.Width, contentHeight)
		}
		return a, nil

	case tea.KeyMsg:
		listOwnsKeys := a.activeView == ViewTemplates &&
			(a.templateList.Filtering() || a.templateList.Confirming())
		if !textEntryView(a.activeView) && !listOwnsKeys {
			switch msg.String() {
			case "ctrl+c":
				a.monitor.Stop()
				return a, tea.Quit
			case "q":
				if a.activeView == ViewTemplates {
					a.monitor.Stop()
					return a, tea.Quit
				}
				return a, a.goBack()
			case "esc":
				if len(a.previousViews) > 0 {
					return a, a.goBack()
				}
				if a.activeView != ViewTemplates {
					a.activeView = ViewTemplates
					return a, nil
				}
			case "1":
				return a, a.switchTab(ViewTemplates, statusbar.TabTemplates)
			case "2":
				return a, a.switchTab(ViewPlans, statusbar.TabPlans)
			case "3":
				return a, a.openSupport()
			case "4", "a":
				return a, a.switchTab(ViewAccount, statusbar.TabAccount)
			case "L":
				if !a.session.LoggedIn() {
					a.openLogin()
				}
				return a, nil
			case "n":
				if a.activeView != ViewNotifications {
					a.pushView(ViewNotifications)
				}
				a.notifications.Load()
				a.notifications.SetSize(a.width, a.height-1)
				a.statusBar.SetUnread(a.notifications.UnreadCount())
				return a, nil
			}
		} else {
			if msg.String() == "esc" {
				if len(a.previousViews) == 0 {
					a.activeView = ViewTemplates
					a.statusBar.SetActiveTab(statusbar.TabTemplates)
					return a, nil
				}
				return a, a.goBack()
			}
			if msg.String() == "ctrl+c" {
				a.monitor.Stop()
				return a, tea.Quit
			}
		}

	// Session lifecycle.
	case messages.SessionReadyMsg:
		if msg.User != nil {
			a.statusBar.SetUser(msg.User.Name)
			a.plansView.SetLoggedIn(true)
			return a, a.templateList.Init()
		}
		a.activeView = ViewLogin
		a.loginForm = login.New(a.session)
		a.loginForm.SetSize(a.width, a.height-1)
		return a, nil

	case messages.LoginResultMsg:
		if msg.Unverified {
			a.pushView(ViewVerify)
			a.verifyForm = verify.New(a.session, msg.Email)
			a.verifyForm.SetSize(a.width, a.height-1)
			return a, nil
		}
		if msg.OK {
			return a, a.afterLogin(msg.User)
		}
		// Let the login form display the failure.

	case messages.VerifyResultMsg:
		if msg.OK {
			return a, a.afterLogin(msg.User)
		}

	case messages.OpenVerifyMsg:
		a.pushView(ViewVerify)
		a.verifyForm = verify.New(a.session, msg.Email)
		a.verifyForm.SetSize(a.width, a.height-1)
		return a, nil

	case messages.OpenLoginMsg:
		a.openLogin()
		return a, nil

	case messages.OpenRegisterMsg:
		a.pushView(ViewRegister)
		a.registerForm = register.New(a.session)
		a.registerForm.SetSize(a.width, a.height-1)
		return a, nil

	case messages.LoggedOutMsg:
		a.statusBar.SetUser("")
		a.plansView.SetLoggedIn(false)
		a.previousViews = nil
		a.activeView = ViewLogin
		a.loginForm = login.New(a.session)
		a.loginForm.SetSize(a.width, a.height-1)
		return a, nil

	// View transitions.
	case messages.OpenPreviewMsg:
		a.pushView(ViewPreview)
		a.previewView = preview.New(msg.Template)
		a.previewView.SetSize(a.width, a.height-1)
		return a, nil

	case messages.OpenFormMsg:
		if !a.session.LoggedIn() {
			a.cache.SetState(cache.KeyRedirectAfterLogin, "submit")
			a.openLogin()
			return a, nil
		}
		a.pushView(ViewForm)
		if msg.Editing == nil {
			// A fresh submit never reuses a stale edit snapshot.
			a.cache.ClearState(cache.KeyEditingTemplate)
		}
		a.formView = templateform.New(a.client, a.cache, msg.Editing)
		a.formView.SetSize(a.width, a.height-1)
		return a, nil

	case messages.GoBackMsg:
		return a, a.goBack()

	case messages.TemplateSavedMsg:
		if msg.Err == nil {
			if msg.Updated {
				a.statusBar.SetStatus("Template updated", false)
			} else {
				a.statusBar.SetStatus("Template submitted for review", false)
			}
			cmds = append(cmds, a.goBack())
			var cmd tea.Cmd
			a.templateList, cmd = a.templateList.Update(msg)
			cmds = append(cmds, cmd)
			return a, tea.Batch(cmds...)
		}
		// Let the form display the failure.

	case messages.NewNotificationMsg:
		a.statusBar.SetUnread(msg.UnreadCount)

	case messages.StatusMsg:
		a.statusBar.SetStatus(msg.Text, msg.IsError)
	}

	// Route to the active view.
	var cmd tea.Cmd
	switch a.activeView {
	case ViewTemplates:
		a.templateList, cmd = a.templateList.Update(msg)
	case ViewPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	case ViewForm:
		a.formView, cmd = a.formView.Update(msg)
	case ViewLogin:
		a.loginForm, cmd = a.loginForm.Update(msg)
	case ViewRegister:
		a.registerForm, cmd = a.registerForm.Update(msg)
	case ViewVerify:
		a.verifyForm, cmd = a.verifyForm.Update(msg)
	case ViewPlans:
		a.plansView, cmd = a.plansView.Update(msg)
	case ViewSupport:
		a.supportForm, cmd = a.supportForm.Update(msg)
	case ViewNotifications:
		a.notifications, cmd = a.notifications.Update(msg)
	case ViewAccount:
		a.accountView, cmd = a.accountView.Update(msg)
	}
	cmds = append(cmds, cmd)

	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// View renders the application.
func (a *App) View() string {
	var content string
	switch a.activeView {
	case ViewTemplates:
		content = a.templateList.View()
	case ViewPreview:
		content = a.previewView.View()
	case ViewForm:
		content = a.formView.View()
	case ViewLogin:
		content = a.loginForm.View()
	case ViewRegister:
		content = a.registerForm.View()
	case ViewVerify:
		content = a.verifyForm.View()
	case ViewPlans:
		content = a.plansView.View()
	case ViewSupport:
		content = a.supportForm.View()
	case ViewNotifications:
		content = a.notifications.View()
	case ViewAccount:
		content = a.accountView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
}

func (a *App) pushView(v ViewType) {
	a.previousViews = append(a.previousViews, a.activeView)
	a.activeView = v
}

func (a *App) goBack() tea.Cmd {
	if len(a.previousViews) > 0 {
		a.activeView = a.previousViews[len(a.previousViews)-1]
		a.previousViews = a.previousViews[:len(a.previousViews)-1]
	}
	return nil
}

func (a *App) openLogin() {
	a.pushView(ViewLogin)
	a.loginForm = login.New(a.session)
	a.loginForm.SetSize(a.width, a.height-1)
}

func (a *App) openSupport() tea.Cmd {
	a.previousViews = nil
	a.activeView = ViewSupport
	a.statusBar.SetActiveTab(statusbar.TabSupport)
	a.supportForm = support.New(a.client, a.session.CurrentUser)
	a.supportForm.SetSize(a.width, a.height-1)
	return nil
}

func (a *App) switchTab(v ViewType, tab statusbar.Tab) tea.Cmd {
	a.previousViews = nil
	a.activeView = v
	a.statusBar.SetActiveTab(tab)
	switch v {
	case ViewPlans:
		a.plansView.SetSize(a.width, a.height-1)
	case ViewAccount:
		a.accountView.SetSize(a.width, a.height-1)
	}
	return nil
}

// afterLogin refreshes shared state once a session is established, honoring
// a stored post-login redirect.
func (a *App) afterLogin(user *api.User) tea.Cmd {
	if user != nil {
		a.statusBar.SetUser(user.Name)
	}
	a.plansView.SetLoggedIn(true)
	a.previousViews = nil

	if a.cache.GetState(cache.KeyRedirectAfterLogin) == "submit" {
		a.cache.ClearState(cache.KeyRedirectAfterLogin)
		a.activeView = ViewTemplates
		a.statusBar.SetActiveTab(statusbar.TabTemplates)
		a.pushView(ViewForm)
		a.formView = templateform.New(a.client, a.cache, nil)
		a.formView.SetSize(a.width, a.height-1)
		return a.templateList.Init()
	}

	a.activeView = ViewTemplates
	a.statusBar.SetActiveTab(statusbar.TabTemplates)
	return a.templateList.Init()
}
