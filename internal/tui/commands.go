package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quesolabs/queso/internal/services/cheese"
)

// mutation identifies which operation a mutationDoneMsg reports,
// so Update can decide where the cursor and page go next
type mutation int

const (
	mutationAdd mutation = iota
	mutationRename
	mutationDelete
	mutationMoveUp
	mutationMoveDown
)

// pageLoadedMsg carries a freshly read page of the catalog
type pageLoadedMsg struct {
	result *cheese.PageResult
	err    error
}

// mutationDoneMsg reports a completed database mutation
type mutationDoneMsg struct {
	op  mutation
	err error
}

// loadPage re-reads one page of the catalog. Like every command here it
// runs on bubbletea's command goroutine, keeping SQLite off the render loop.
func (m Model) loadPage(page int) tea.Cmd {
	svc, size := m.svc, m.cfg.PageSize
	return func() tea.Msg {
		result, err := svc.Page(context.Background(), page, size)
		return pageLoadedMsg{result: result, err: err}
	}
}

// addCheese appends a cheese to the end of the catalog
func (m Model) addCheese(name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		_, err := svc.Add(context.Background(), name)
		return mutationDoneMsg{op: mutationAdd, err: err}
	}
}

// renameCheese renames the cheese with the given id
func (m Model) renameCheese(id int, name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		err := svc.Rename(context.Background(), id, name)
		return mutationDoneMsg{op: mutationRename, err: err}
	}
}

// deleteCheese removes the cheese with the given id
func (m Model) deleteCheese(id int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		err := svc.Remove(context.Background(), id)
		return mutationDoneMsg{op: mutationDelete, err: err}
	}
}

// moveCheese swaps the cheese with its neighbor above or below
func (m Model) moveCheese(id int, op mutation) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		var err error
		if op == mutationMoveUp {
			err = svc.MoveUp(context.Background(), id)
		} else {
			err = svc.MoveDown(context.Background(), id)
		}
		return mutationDoneMsg{op: op, err: err}
	}
}
