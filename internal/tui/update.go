package tui

import (
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quesolabs/queso/internal/models"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case insertMode, renameMode:
			return m.updateInput(msg)
		case helpMode:
			m.mode = normalMode
			return m, nil
		default:
			return m.updateNormal(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case mutationDoneMsg:
		return m.handleMutationDone(msg)
	}

	return m, nil
}

// updateNormal dispatches key events in normal mode
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	key := msg.String()
	km := m.cfg.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit

	case km.ShowHelp:
		m.mode = helpMode
		return m, nil

	case km.AddCheese:
		m.mode = insertMode
		m.input.Reset()
		m.input.Placeholder = "Cheese name"
		return m, m.input.Focus()

	case km.RenameCheese:
		c := m.currentCheese()
		if c == nil {
			return m, nil
		}
		m.mode = renameMode
		m.renameID = c.ID
		m.input.Reset()
		m.input.SetValue(c.Name)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case km.DeleteCheese:
		c := m.currentCheese()
		if c == nil {
			return m, nil
		}
		return m, m.deleteCheese(c.ID)

	case km.MoveUp:
		c := m.currentCheese()
		if c == nil {
			return m, nil
		}
		return m, m.moveCheese(c.ID, mutationMoveUp)

	case km.MoveDown:
		c := m.currentCheese()
		if c == nil {
			return m, nil
		}
		return m, m.moveCheese(c.ID, mutationMoveDown)

	case km.PrevCheese, "up":
		return m.cursorUp()

	case km.NextCheese, "down":
		return m.cursorDown()

	case km.PrevPage, "left":
		if m.currentPage() > 1 {
			m.pendingCursor = 0
			return m, m.loadPage(m.currentPage() - 1)
		}
		m.notice = "Already at the first page"
		return m, nil

	case km.NextPage, "right":
		if m.page != nil && m.page.Page < m.page.TotalPages() {
			m.pendingCursor = 0
			return m, m.loadPage(m.page.Page + 1)
		}
		m.notice = "Already at the last page"
		return m, nil

	case km.FirstPage:
		m.pendingCursor = 0
		return m, m.loadPage(1)

	case km.LastPage:
		if m.page == nil {
			return m, nil
		}
		m.pendingCursor = m.page.Total // clamped on load
		return m, m.loadPage(m.page.TotalPages())
	}

	return m, nil
}

// cursorUp moves the selection up, loading the previous page when the
// cursor walks off the top
func (m Model) cursorUp() (tea.Model, tea.Cmd) {
	if m.cursor > 0 {
		m.cursor--
		return m, nil
	}
	if m.currentPage() > 1 {
		m.pendingCursor = m.cfg.PageSize - 1
		return m, m.loadPage(m.currentPage() - 1)
	}
	m.notice = "Already at the top of the catalog"
	return m, nil
}

// cursorDown moves the selection down, loading the next page when the
// cursor walks off the bottom
func (m Model) cursorDown() (tea.Model, tea.Cmd) {
	if m.page == nil {
		return m, nil
	}
	if m.cursor < len(m.page.Cheeses)-1 {
		m.cursor++
		return m, nil
	}
	if m.page.Page < m.page.TotalPages() {
		m.pendingCursor = 0
		return m, m.loadPage(m.page.Page + 1)
	}
	m.notice = "Already at the bottom of the catalog"
	return m, nil
}

// updateInput handles key events while the name input is focused
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = normalMode
		m.input.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.notice = "Name cannot be empty"
			return m, nil
		}

		submitting := m.mode
		m.mode = normalMode
		m.input.Blur()

		if submitting == renameMode {
			return m, m.renameCheese(m.renameID, name)
		}
		return m, m.addCheese(name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePageLoaded installs a freshly read page
func (m Model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to load page", "error", msg.err)
		m.notice = "Error: " + msg.err.Error()
		return m, nil
	}

	m.page = msg.result

	// A delete can empty the last page; step back to the previous one
	if len(m.page.Cheeses) == 0 && m.page.Page > 1 {
		m.pendingCursor = 0
		return m, m.loadPage(m.page.Page - 1)
	}

	m.cursor = m.pendingCursor
	m.pendingCursor = 0
	m.clampCursor()
	return m, nil
}

// handleMutationDone reacts to a completed mutation: surface errors, or
// reload the page the mutated row now lives on with the cursor following it
func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, models.ErrAlreadyFirst):
			m.notice = "Already at the top of the catalog"
		case errors.Is(msg.err, models.ErrAlreadyLast):
			m.notice = "Already at the bottom of the catalog"
		case errors.Is(msg.err, models.ErrCheeseNotFound):
			// The view was stale; re-read it
			m.notice = "Cheese no longer exists"
			m.pendingCursor = m.cursor
			return m, m.loadPage(m.currentPage())
		default:
			slog.Error("mutation failed", "error", msg.err)
			m.notice = "Error: " + msg.err.Error()
		}
		return m, nil
	}

	switch msg.op {
	case mutationAdd:
		// The new cheese is the last row; jump to it
		total := 1
		if m.page != nil {
			total = m.page.Total + 1
		}
		lastPage := (total + m.cfg.PageSize - 1) / m.cfg.PageSize
		m.pendingCursor = (total - 1) % m.cfg.PageSize
		return m, m.loadPage(lastPage)

	case mutationMoveUp:
		if m.cursor > 0 {
			m.pendingCursor = m.cursor - 1
			return m, m.loadPage(m.currentPage())
		}
		// Crossed onto the previous page
		m.pendingCursor = m.cfg.PageSize - 1
		return m, m.loadPage(m.currentPage() - 1)

	case mutationMoveDown:
		if m.page != nil && m.cursor < len(m.page.Cheeses)-1 {
			m.pendingCursor = m.cursor + 1
			return m, m.loadPage(m.currentPage())
		}
		// Crossed onto the next page
		m.pendingCursor = 0
		return m, m.loadPage(m.currentPage() + 1)

	default: // rename, delete
		m.pendingCursor = m.cursor
		return m, m.loadPage(m.currentPage())
	}
}
