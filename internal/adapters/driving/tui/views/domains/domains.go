// Package domains provides the domain index list view for the TUI.
package domains

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/keymap"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/messages"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/styles"
	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driving"
)

// View lists the knowledge domains in the index.
type View struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	archive driving.ArchiveService

	items    []domain.DomainEntry
	selected int
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
}

// NewView creates a new domain list view.
func NewView(s *styles.Styles, archive driving.ArchiveService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		archive: archive,
		width:   80,
		height:  24,
	}
}

// Init loads the domain index.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	archive := v.archive
	return func() tea.Msg {
		if archive == nil {
			return messages.DomainsLoaded{Err: fmt.Errorf("archive service not available")}
		}
		entries, err := archive.ListDomains(context.Background())
		return messages.DomainsLoaded{Domains: entries, Err: err}
	}
}

// Update handles messages for the domain list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.DomainsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.items = msg.Domains
			if v.selected >= len(v.items) {
				v.selected = max(len(v.items)-1, 0)
			}
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch k := msg.String(); {
	case keymap.Matches(k, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keys.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keys.Select):
		if len(v.items) == 0 {
			return v, nil
		}
		entry := v.items[v.selected]
		return v, func() tea.Msg {
			return messages.DomainSelected{Entry: entry}
		}
	case keymap.Matches(k, v.keys.Refresh):
		return v, v.Init()
	case keymap.Matches(k, v.keys.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case keymap.Matches(k, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

// View renders the domain list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Akashic Archives Explorer"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Available Knowledge Domains"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case len(v.items) == 0:
		b.WriteString("No knowledge domains found.\n")
	}

	for i, item := range v.items {
		cursor := "  "
		label := fmt.Sprintf("[%d] %s", i+1, item.Name)
		line := v.styles.Normal.Render(label)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(label)
		}
		b.WriteString(cursor + line)
		if item.Description != "" {
			b.WriteString("  " + v.styles.Muted.Render(item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [r] Reload  [?] Help  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the loaded domain entries.
func (v *View) Items() []domain.DomainEntry {
	return v.items
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
