package monitor

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/auth"
	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/config"
	"github.com/talentwork128/mailvet/internal/ui/messages"
)

// Monitor polls the template list in the background and raises a
// notification whenever a template's review status changed since the
// cached copy.
type Monitor struct {
	client  *api.Client
	cache   *cache.DB
	cfg     config.Config
	session *auth.Session
	program *tea.Program
	stopCh  chan struct{}
}

// New creates a background monitor.
func New(cfg config.Config, client *api.Client, db *cache.DB, session *auth.Session) *Monitor {
	return &Monitor{
		client:  client,
		cache:   db,
		cfg:     cfg,
		session: session,
		stopCh:  make(chan struct{}),
	}
}

// Start begins the background polling loop.
func (m *Monitor) Start(program *tea.Program) {
	m.program = program
	go m.loop()
}

// Stop halts the background polling.
func (m *Monitor) Stop() {
	select {
	case <-m.stopCh:
	default:
		close(m.stopCh)
	}
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.cfg.MonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.poll()
		}
	}
}

func (m *Monitor) poll() {
	if !m.session.LoggedIn() {
		return
	}

	ctx := context.Background()
	resp, err := m.client.ListTemplates(ctx, api.ListOptions{Limit: m.cfg.FetchPageSize})
	if err != nil {
		log.Printf("monitor poll: %v", err)
		return
	}

	changed := 0
	for _, t := range resp.Data.Templates {
		cached, err := m.cache.GetTemplate(t.ID)
		if err != nil || cached == nil {
			continue
		}
		if cached.Status != t.Status {
			if err := m.cache.AddNotification(t.ID, t.Title, cached.Status, t.Status); err != nil {
				log.Printf("monitor notification: %v", err)
				continue
			}
			changed++
		}
	}

	if err := m.cache.PutTemplates(resp.Data.Templates); err != nil {
		log.Printf("monitor cache: %v", err)
	}

	if changed > 0 && m.program != nil {
		m.program.Send(messages.NewNotificationMsg{UnreadCount: m.cache.UnreadNotificationCount()})
	}
}
