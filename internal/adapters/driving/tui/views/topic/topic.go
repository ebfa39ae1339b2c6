// Package topic provides the topic detail view for the TUI: entities,
// relationships, clusters, sources and media in a scrollable viewport.
package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/components/status"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/keymap"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/messages"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/styles"
	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
)

// chromeLines is the height taken by the title and footer.
const chromeLines = 5

// View shows one topic.
type View struct {
	styles    *styles.Styles
	keys      *keymap.KeyMap
	archive   driving.ArchiveService
	analytics driving.AnalyticsService
	exporter  driving.ExportService

	entry    domain.DomainEntry
	loaded   *messages.TopicLoaded
	viewport viewport.Model
	bar      *status.Bar
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
}

// NewView creates a new topic view. exporter may be nil, which disables
// the export keys.
func NewView(
	s *styles.Styles,
	archive driving.ArchiveService,
	analytics driving.AnalyticsService,
	exporter driving.ExportService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	keys := keymap.DefaultKeyMap()
	hints := []key.Binding{keys.Up, keys.Down, keys.Refresh, keys.Back, keys.Quit}
	if exporter != nil {
		hints = keys.TopicHelp()
	}
	return &View{
		styles:    s,
		keys:      keys,
		archive:   archive,
		analytics: analytics,
		exporter:  exporter,
		viewport:  viewport.New(80, 24-chromeLines),
		bar:       status.NewBar(s, hints),
		width:     80,
		height:    24,
	}
}

// SetDomain switches the view to a domain and loads it.
func (v *View) SetDomain(entry domain.DomainEntry) tea.Cmd {
	v.entry = entry
	v.loaded = nil
	v.bar.Clear()
	v.err = nil
	v.viewport.SetContent("")
	v.viewport.GotoTop()
	return v.Init()
}

// Init loads the current domain.
func (v *View) Init() tea.Cmd {
	if v.entry.ID == "" {
		return nil
	}
	v.loading = true
	v.bar.SetLoading()
	return v.load(v.entry.ID)
}

func (v *View) load(topicID string) tea.Cmd {
	archive, analytics := v.archive, v.analytics
	return func() tea.Msg {
		if archive == nil || analytics == nil {
			return messages.TopicLoaded{TopicID: topicID, Err: fmt.Errorf("archive service not available")}
		}
		ctx := context.Background()
		snap, err := archive.LoadSnapshot(ctx, topicID)
		if err != nil {
			return messages.TopicLoaded{TopicID: topicID, Err: err}
		}
		conn, _ := analytics.MostConnectedOf(snap)
		return messages.TopicLoaded{
			TopicID:    topicID,
			Snapshot:   snap,
			Clusters:   analytics.ClustersOf(snap),
			Connection: conn,
		}
	}
}

func (v *View) export(format domain.ExportFormat) tea.Cmd {
	exporter, topicID := v.exporter, v.entry.ID
	return func() tea.Msg {
		key, err := exporter.Export(context.Background(), topicID, format)
		return messages.ExportCompleted{TopicID: topicID, Key: key, Err: err}
	}
}

// Update handles messages for the topic view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.TopicLoaded:
		if msg.TopicID != v.entry.ID {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		if msg.Err != nil {
			v.bar.SetError("Load failed")
			return v, nil
		}
		v.loaded = &msg
		v.viewport.SetContent(Render(v.styles, msg))
		if msg.Snapshot != nil {
			v.bar.SetCounts(len(msg.Snapshot.Entities), len(msg.Snapshot.Relationships))
		} else {
			v.bar.SetCounts(0, 0)
		}
		return v, nil

	case messages.ExportCompleted:
		if msg.Err != nil {
			v.bar.SetError("Export failed: " + msg.Err.Error())
		} else {
			v.bar.SetExported("Exported to " + msg.Key.String())
		}
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keys.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDomains}
			}
		case keymap.Matches(k, v.keys.Refresh):
			return v, v.Init()
		case keymap.Matches(k, v.keys.ExportJSON) && v.exporter != nil && v.loaded != nil:
			return v, v.export(domain.ExportJSON)
		case keymap.Matches(k, v.keys.ExportCSV) && v.exporter != nil && v.loaded != nil:
			return v, v.export(domain.ExportCSV)
		case keymap.Matches(k, v.keys.Quit):
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the topic.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Knowledge Domain: " + v.entry.Name))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.loading && v.loaded == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	default:
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.bar.View())
	return b.String()
}

// SetDimensions sets the view dimensions and resizes the viewport.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.viewport.Width = width
	v.viewport.Height = max(height-chromeLines, 1)
	v.bar.SetWidth(width)
}

// Entry returns the domain being shown.
func (v *View) Entry() domain.DomainEntry {
	return v.entry
}

// Status returns the status bar message, set after an export or failure.
func (v *View) Status() string {
	return v.bar.Message()
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// Render formats a loaded topic as viewport content.
func Render(s *styles.Styles, t messages.TopicLoaded) string {
	var b strings.Builder
	snap := t.Snapshot
	if snap == nil {
		snap = domain.NewSnapshot()
	}

	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(s.Section.Render(title))
		b.WriteString("\n")
	}

	section(fmt.Sprintf("Entities (%d)", len(snap.Entities)))
	for _, e := range snap.Entities {
		fmt.Fprintf(&b, "  • %s (%s)\n", s.Entity.Render(e.Name), e.Type)
		if e.Description != "" {
			fmt.Fprintf(&b, "    - %s\n", s.Muted.Render(e.Description))
		}
	}

	section(fmt.Sprintf("Relationships (%d)", len(snap.Relationships)))
	for _, r := range snap.Relationships {
		src, ok := snap.EntityByID(r.Source)
		if !ok {
			continue
		}
		tgt, ok := snap.EntityByID(r.Target)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "    ↳ %s --[%s]→ %s\n", s.Entity.Render(src.Name), s.Link.Render(r.Type), s.Entity.Render(tgt.Name))
	}

	section("Concept Clusters")
	if len(t.Clusters) == 0 {
		b.WriteString(s.Muted.Render("  none"))
		b.WriteString("\n")
	}
	for _, c := range t.Clusters {
		fmt.Fprintf(&b, "  ✦ Cluster: %s is connected to %d entities.\n", s.Entity.Render(c.Entity.Name), c.Count)
	}

	section("Most Connected")
	if t.Connection != nil && t.Connection.Entity != nil {
		fmt.Fprintf(&b, "  %s (%d connections)\n", s.Entity.Render(t.Connection.Entity.Name), t.Connection.Count)
	} else {
		b.WriteString("  No analytics available.\n")
	}

	section(fmt.Sprintf("Sources (%d)", len(snap.Sources)))
	for _, src := range snap.Sources {
		fmt.Fprintf(&b, "  - %s [%s]\n    %s\n", src.Title, src.Credibility, s.Muted.Render(src.URL))
	}

	if len(snap.Media) > 0 {
		section(fmt.Sprintf("Multimedia (%d)", len(snap.Media)))
		for _, m := range snap.Media {
			fmt.Fprintf(&b, "  - %s: %s\n", m.Type, s.Muted.Render(m.URL))
		}
	}
	return b.String()
}
