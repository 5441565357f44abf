package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/quesolabs/queso/internal/config"
)

// helpCache holds rendered help screens keyed by wrap width,
// since glamour rendering is expensive enough to avoid per-frame
var helpCache sync.Map // map[int]string

// renderHelp renders the key binding overlay as markdown
func renderHelp(km config.KeyMappings, width int) string {
	if width <= 0 || width > 80 {
		width = 80
	}

	if cached, ok := helpCache.Load(width); ok {
		return cached.(string)
	}

	markdown := fmt.Sprintf(`# Queso

## Catalog

| Key | Action |
|-----|--------|
| %s | add a cheese |
| %s | rename the selected cheese |
| %s | delete the selected cheese |
| %s / %s | move the selected cheese up / down |

## Navigation

| Key | Action |
|-----|--------|
| %s / %s | previous / next cheese |
| %s / %s | previous / next page |
| %s / %s | first / last page |

## Other

| Key | Action |
|-----|--------|
| %s | this help |
| %s | quit |

Press any key to close.
`,
		km.AddCheese, km.RenameCheese, km.DeleteCheese, km.MoveUp, km.MoveDown,
		km.PrevCheese, km.NextCheese, km.PrevPage, km.NextPage, km.FirstPage, km.LastPage,
		km.ShowHelp, km.Quit,
	)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	helpCache.Store(width, rendered)
	return rendered
}
