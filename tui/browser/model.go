package browser

import (
	"sort"
	"strings"

	"pindash/catalog"
	"pindash/tui/shared"
	"pindash/util"
)

// Sort is the active ordering criterion for the table list.
type Sort int

const (
	SortName Sort = iota
	SortLastModified
)

func (s Sort) String() string {
	if s == SortLastModified {
		return "Last Modified"
	}
	return "Alphabetical"
}

// Model owns the table list, cursor, scroll offset and sort mode. All
// operations are synchronous; rendering never mutates the model.
type Model struct {
	items        []catalog.Item
	cursor       int // -1 when the list is empty
	scrollOffset int
	sortMode     Sort

	width  int
	height int
}

func New() Model {
	return Model{cursor: -1}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ensureCursorVisible()
}

// SetItems swaps in a freshly scanned item slice. The cursor follows the
// previously selected table by path; a table that vanished in the rescan
// falls back to the top of the list.
func (m *Model) SetItems(items []catalog.Item) {
	prev := ""
	if it, ok := m.SelectedItem(); ok {
		prev = it.Path
	}
	m.items = items
	m.resort()
	m.resolveCursor(prev)
}

// MoveDown advances the cursor, wrapping past the end. No-op when empty.
func (m *Model) MoveDown() {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.items)
	m.ensureCursorVisible()
}

// MoveUp is the symmetric wrap-around backward step.
func (m *Model) MoveUp() {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	m.ensureCursorVisible()
}

// ToggleSort cycles to the next sort mode.
func (m *Model) ToggleSort() {
	if m.sortMode == SortName {
		m.SetSort(SortLastModified)
	} else {
		m.SetSort(SortName)
	}
}

// SetSort re-sorts the list and keeps the cursor on the same table,
// wherever it ends up after the re-sort.
func (m *Model) SetSort(s Sort) {
	m.sortMode = s
	prev := ""
	if it, ok := m.SelectedItem(); ok {
		prev = it.Path
	}
	m.resort()
	m.resolveCursor(prev)
}

func (m Model) SortMode() Sort {
	return m.sortMode
}

func (m Model) SelectedItem() (catalog.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return catalog.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) resort() {
	switch m.sortMode {
	case SortLastModified:
		// Most recent first; ties keep their original order.
		sort.SliceStable(m.items, func(i, j int) bool {
			return m.items[i].LastModified.After(m.items[j].LastModified)
		})
	default:
		sort.SliceStable(m.items, func(i, j int) bool {
			return m.items[i].SortKey() < m.items[j].SortKey()
		})
	}
}

func (m *Model) resolveCursor(path string) {
	if len(m.items) == 0 {
		m.cursor = -1
		m.scrollOffset = 0
		return
	}
	m.cursor = 0
	if path != "" {
		for i, it := range m.items {
			if it.Path == path {
				m.cursor = i
				break
			}
		}
	}
	m.ensureCursorVisible()
}

// listHeight returns how many items fit below the title line.
func (m Model) listHeight() int {
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < 0 {
		m.scrollOffset = 0
		return
	}
	h := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(shared.TitleStyle.Render("Tables"))
	b.WriteString(" ")
	b.WriteString(shared.SortModeStyle.Render("(" + m.sortMode.String() + ")"))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(shared.PlaceholderStyle.Render("No tables found"))
		return b.String()
	}

	h := m.listHeight()
	for i := m.scrollOffset; i < len(m.items) && i < m.scrollOffset+h; i++ {
		b.WriteString(m.renderItem(m.items[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderItem(it catalog.Item, selected bool) string {
	stem := util.Stem(it.Path)
	label := stem
	if it.Name != "" {
		label = util.CapitalizeFirst(it.Name) + " " + shared.StemStyle.Render(stem)
	}
	if selected {
		return shared.CursorStyle.Width(m.width).Render("> " + label)
	}
	return "  " + label
}
