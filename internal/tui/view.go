package tui

import (
	"fmt"
	"strings"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == helpMode {
		return renderHelp(m.cfg.KeyMappings, m.width-4)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Queso"))
	b.WriteString("\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")

	switch m.mode {
	case insertMode:
		b.WriteString(inputBoxStyle.Render("New cheese\n" + m.input.View()))
		b.WriteString("\n")
	case renameMode:
		b.WriteString(inputBoxStyle.Render("Rename cheese\n" + m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())

	return b.String()
}

// renderList renders the current page of the catalog
func (m Model) renderList() string {
	if m.page == nil {
		return itemStyle.Render("Loading catalog...") + "\n"
	}
	if len(m.page.Cheeses) == 0 {
		return itemStyle.Render("The catalog is empty. Press '"+m.cfg.KeyMappings.AddCheese+"' to add a cheese.") + "\n"
	}

	var b strings.Builder
	offset := (m.page.Page - 1) * m.page.PageSize

	for i, c := range m.page.Cheeses {
		row := fmt.Sprintf("%s %s",
			positionStyle.Render(fmt.Sprintf("%4d", offset+i+1)),
			c.Name,
		)
		if i == m.cursor && m.mode == normalMode {
			b.WriteString(selectedItemStyle.Render("> " + row))
		} else {
			b.WriteString(itemStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusBar renders page info, the transient notice, and key hints
func (m Model) renderStatusBar() string {
	if m.page == nil {
		return ""
	}

	status := fmt.Sprintf("Page %d/%d | %d cheeses | '%s' for help",
		m.page.Page, m.page.TotalPages(), m.page.Total, m.cfg.KeyMappings.ShowHelp)

	line := statusBarStyle.Render(status)
	if m.notice != "" {
		line += noticeStyle.Render(m.notice)
	}
	return line
}
