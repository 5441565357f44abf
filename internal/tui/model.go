// Package tui implements the interactive catalog screen.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quesolabs/queso/internal/config"
	"github.com/quesolabs/queso/internal/models"
	"github.com/quesolabs/queso/internal/services/cheese"
)

// mode is the input mode of the screen
type mode int

const (
	// normalMode handles navigation and mutation keys
	normalMode mode = iota
	// insertMode routes keys to the name input for a new cheese
	insertMode
	// renameMode routes keys to the name input for the selected cheese
	renameMode
	// helpMode shows the key binding overlay
	helpMode
)

// Model represents the application state for the TUI
type Model struct {
	svc cheese.Service
	cfg *config.Config

	mode mode

	// current page of the catalog, re-read from the database after
	// every mutation
	page   *cheese.PageResult
	cursor int

	// pendingCursor is where the cursor should land after the next page
	// load, so selection follows moved and inserted rows
	pendingCursor int

	input    textinput.Model
	renameID int

	notice string

	width  int
	height int
}

// NewModel creates the TUI model. The first page load happens in Init.
func NewModel(svc cheese.Service, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "Cheese name"
	input.CharLimit = 255

	return Model{
		svc:   svc,
		cfg:   cfg,
		mode:  normalMode,
		input: input,
	}
}

// Init loads the first page of the catalog.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return m.loadPage(1)
}

// currentCheese returns the cheese under the cursor, or nil when the
// page is empty or not loaded yet
func (m Model) currentCheese() *models.Cheese {
	if m.page == nil || m.cursor >= len(m.page.Cheeses) {
		return nil
	}
	return m.page.Cheeses[m.cursor]
}

// currentPage returns the 1-based page number being shown
func (m Model) currentPage() int {
	if m.page == nil {
		return 1
	}
	return m.page.Page
}

// clampCursor keeps the cursor inside the loaded page
func (m *Model) clampCursor() {
	if m.page == nil || len(m.page.Cheeses) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.page.Cheeses) {
		m.cursor = len(m.page.Cheeses) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
