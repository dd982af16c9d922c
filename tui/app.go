package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pindash/catalog"
	"pindash/config"
	"pindash/tui/browser"
	"pindash/tui/detail"
	"pindash/tui/footer"
	"pindash/tui/help"
	"pindash/tui/shared"
)

type App struct {
	cfg       config.Config
	browser   browser.Model
	detail    detail.Model
	helpView  help.Model
	avail     catalog.Availability
	watcher   *catalog.Watcher
	showHelp  bool
	statusMsg string

	width  int
	height int
}

func NewApp(cfg config.Config) App {
	shared.InitStyles(cfg.ResolvedTheme())

	a := App{
		cfg:      cfg,
		browser:  browser.New(),
		detail:   detail.New(),
		helpView: help.New(),
		avail:    make(catalog.Availability),
	}

	// The watcher is optional: when the tables dir cannot be watched the
	// browser still works with manual rescans.
	if w, err := catalog.NewWatcher(cfg.ResolvedTablesDir()); err == nil {
		a.watcher = w
	}

	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(refreshLibrary(a.cfg), waitChange(a.watcher))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutSizes()
		return a, nil

	case shared.LibraryRefreshedMsg:
		if msg.Err != nil {
			a.statusMsg = "Error: " + msg.Err.Error()
			return a, nil
		}
		a.browser.SetItems(msg.Items)
		a.avail = msg.Avail
		a.statusMsg = ""
		return a, nil

	case shared.LibraryChangedMsg:
		if msg.Err != nil {
			a.statusMsg = "Watch error: " + msg.Err.Error()
			return a, nil
		}
		return a, tea.Batch(refreshLibrary(a.cfg), waitChange(a.watcher))

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help toggle is global
	if key.Matches(msg, shared.Keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// If help is shown, any key closes it
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, shared.Keys.Quit):
		if a.watcher != nil {
			a.watcher.Close()
		}
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.Down):
		a.browser.MoveDown()
		return a, nil

	case key.Matches(msg, shared.Keys.Up):
		a.browser.MoveUp()
		return a, nil

	case key.Matches(msg, shared.Keys.Sort):
		a.browser.ToggleSort()
		return a, nil

	case key.Matches(msg, shared.Keys.Rescan):
		a.statusMsg = "Rescanning..."
		return a, refreshLibrary(a.cfg)
	}

	return a, nil
}

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}

	innerW, contentH := a.innerSize()
	listW := innerW * 2 / 5
	detailW := innerW - listW

	listView := lipgloss.NewStyle().
		Width(listW).Height(contentH).MaxHeight(contentH).
		Render(a.browser.View())

	var detailView string
	if it, ok := a.browser.SelectedItem(); ok {
		detailView = a.detail.View(&it, a.avail)
	} else {
		detailView = a.detail.View(nil, a.avail)
	}
	detailView = lipgloss.NewStyle().
		Width(detailW).Height(contentH).MaxHeight(contentH).
		Render(detailView)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listView, detailView)
	view := lipgloss.JoinVertical(lipgloss.Left, content, a.renderFooter(innerW))

	return lipgloss.NewStyle().Margin(1).Render(view)
}

// renderFooter draws the key-binding line, or the status message when one
// is pending.
func (a App) renderFooter(width int) string {
	if a.statusMsg != "" {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			shared.ErrorStyle.Render(a.statusMsg))
	}
	return footer.Render(shared.Keys.Browse(), width)
}

// innerSize returns the drawable area inside the 1-cell margin, minus the
// footer row.
func (a App) innerSize() (w, h int) {
	w = a.width - 2
	if w < 1 {
		w = 1
	}
	h = a.height - 2 - 1
	if h < 1 {
		h = 1
	}
	return w, h
}

func (a *App) layoutSizes() {
	innerW, contentH := a.innerSize()
	listW := innerW * 2 / 5
	a.browser.SetSize(listW, contentH)
	a.detail.SetSize(innerW-listW, contentH)
	a.helpView.SetSize(a.width, a.height)
}

// --- Commands ---

func refreshLibrary(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		tablesDir := cfg.ResolvedTablesDir()
		items, err := catalog.Scan(tablesDir, cfg.Library.RomsDir)
		if err != nil {
			return shared.LibraryRefreshedMsg{Err: err}
		}
		avail, err := catalog.ScanResources(tablesDir, cfg.Library.RomsDir)
		if err != nil {
			return shared.LibraryRefreshedMsg{Err: err}
		}
		return shared.LibraryRefreshedMsg{Items: items, Avail: avail}
	}
}

func waitChange(w *catalog.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		return shared.LibraryChangedMsg{Err: w.WaitChange()}
	}
}
