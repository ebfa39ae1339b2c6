// Package status provides the status bar shown under a topic.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/keymap"
	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/styles"
)

// State is what the bar is reporting.
type State string

const (
	StateReady    State = "ready"
	StateLoading  State = "loading"
	StateExported State = "exported"
	StateError    State = "error"
)

// Bar displays the topic's load or export state and key hints.
type Bar struct {
	styles        *styles.Styles
	bindings      []key.Binding
	state         State
	message       string
	entities      int
	relationships int
	width         int
}

// NewBar creates a status bar that hints the given bindings.
func NewBar(s *styles.Styles, bindings []key.Binding) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if bindings == nil {
		bindings = keymap.DefaultKeyMap().ShortHelp()
	}
	return &Bar{
		styles:   s,
		bindings: bindings,
		state:    StateReady,
		width:    80,
	}
}

// View renders the bar padded to its width.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	inner := b.width - b.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return b.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateLoading:
		return b.styles.Muted.Render("Loading...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("Error")
	case StateExported:
		return b.styles.Success.Render(b.message)
	}
	if b.entities == 0 && b.relationships == 0 {
		return b.styles.Muted.Render("Empty topic")
	}
	return b.styles.Normal.Render(fmt.Sprintf("%d entities, %d relationships", b.entities, b.relationships))
}

func (b *Bar) renderRight() string {
	hints := make([]string, 0, len(b.bindings))
	for _, binding := range b.bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetLoading marks a load in progress.
func (b *Bar) SetLoading() {
	b.state = StateLoading
	b.message = ""
}

// SetCounts reports a loaded topic.
func (b *Bar) SetCounts(entities, relationships int) {
	b.state = StateReady
	b.message = ""
	b.entities = entities
	b.relationships = relationships
}

// SetExported reports a written export.
func (b *Bar) SetExported(message string) {
	b.state = StateExported
	b.message = message
}

// SetError reports a failure.
func (b *Bar) SetError(message string) {
	b.state = StateError
	b.message = message
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// Message returns the export or error message, if any.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the bar to its initial state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.entities = 0
	b.relationships = 0
}
