package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/messages"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/styles"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/views/domains"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/views/topic"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// domainsView lists the domain index.
	domainsView *domains.View

	// topicView shows the selected domain.
	topicView *topic.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		domainsView: domains.NewView(s, ports.Archive),
		topicView:   topic.NewView(s, ports.Archive, ports.Analytics, ports.Export),
		currentView: messages.ViewDomains,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("cartographer - Akashic Archives"),
		a.domainsView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewDomains:
			a.domainsView, cmd = a.domainsView.Update(msg)
		case messages.ViewTopic:
			a.topicView, cmd = a.topicView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewDomains
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.DomainsLoaded:
		a.err = msg.Err
		a.domainsView, cmd = a.domainsView.Update(msg)
		return a, cmd

	case messages.DomainSelected:
		a.currentView = messages.ViewTopic
		return a, a.topicView.SetDomain(msg.Entry)

	case messages.TopicLoaded:
		a.err = msg.Err
		a.topicView, cmd = a.topicView.Update(msg)
		return a, cmd

	case messages.ExportCompleted:
		a.err = msg.Err
		a.topicView, cmd = a.topicView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewDomains:
		a.domainsView, cmd = a.domainsView.Update(msg)
	case messages.ViewTopic:
		a.topicView, cmd = a.topicView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewTopic:
		return a.topicView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.domainsView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Domains:
  j/k, ↑/↓    Navigate domains
  enter       Open domain
  r           Reload index
  q           Quit

Topic:
  j/k, ↑/↓    Scroll
  pgup/pgdn   Page
  e           Export as JSON
  c           Export as CSV
  r           Reload topic
  esc         Back to domains

  ctrl+c      Quit from anywhere

[esc] back to domains`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.domainsView.SetDimensions(width, height)
	a.topicView.SetDimensions(width, height)
}
