package browser

import (
	"strings"
	"testing"
	"time"

	"pindash/catalog"
)

var base = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// testItems returns three tables whose alphabetical and last-modified
// orders differ: by name a, b, c; by recency c, b, a.
func testItems() []catalog.Item {
	return []catalog.Item{
		{Path: "tables/a.vpx", LastModified: base},
		{Path: "tables/b.vpx", LastModified: base.Add(1 * time.Hour)},
		{Path: "tables/c.vpx", LastModified: base.Add(2 * time.Hour)},
	}
}

func selectedPath(t *testing.T, m *Model) string {
	t.Helper()
	it, ok := m.SelectedItem()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return it.Path
}

func TestMoveDownWrapsToTop(t *testing.T) {
	m := New()
	m.SetItems(testItems())

	m.MoveDown()
	m.MoveDown() // cursor on last item
	if got := selectedPath(t, &m); got != "tables/c.vpx" {
		t.Fatalf("cursor on %s, want tables/c.vpx", got)
	}

	m.MoveDown()
	if got := selectedPath(t, &m); got != "tables/a.vpx" {
		t.Errorf("wrap landed on %s, want tables/a.vpx", got)
	}
}

func TestMoveUpWrapsToBottom(t *testing.T) {
	m := New()
	m.SetItems(testItems())

	m.MoveUp()
	if got := selectedPath(t, &m); got != "tables/c.vpx" {
		t.Errorf("wrap landed on %s, want tables/c.vpx", got)
	}
}

func TestMoveDownThenUpIsIdentity(t *testing.T) {
	m := New()
	m.SetItems(testItems())

	for i := 0; i < len(testItems()); i++ {
		before := selectedPath(t, &m)
		m.MoveDown()
		m.MoveUp()
		if got := selectedPath(t, &m); got != before {
			t.Fatalf("down+up moved cursor from %s to %s", before, got)
		}
		m.MoveDown()
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	m := New()
	items := testItems()
	m.SetItems(items)
	start := selectedPath(t, &m)

	for i := 0; i < len(items); i++ {
		m.MoveDown()
	}
	if got := selectedPath(t, &m); got != start {
		t.Errorf("after full cycle cursor on %s, want %s", got, start)
	}
}

func TestEmptyListHasNoSelection(t *testing.T) {
	m := New()
	if _, ok := m.SelectedItem(); ok {
		t.Fatal("new model should have no selection")
	}

	m.MoveDown()
	m.MoveUp()
	if _, ok := m.SelectedItem(); ok {
		t.Error("moves on an empty list should stay unselected")
	}
}

func TestSetSortPreservesSelectedIdentity(t *testing.T) {
	m := New()
	m.SetItems(testItems())

	m.MoveDown() // select b (alphabetical order)
	if got := selectedPath(t, &m); got != "tables/b.vpx" {
		t.Fatalf("setup: cursor on %s", got)
	}

	m.SetSort(SortLastModified)
	if got := selectedPath(t, &m); got != "tables/b.vpx" {
		t.Errorf("re-sort moved selection to %s, want tables/b.vpx", got)
	}

	m.SetSort(SortName)
	if got := selectedPath(t, &m); got != "tables/b.vpx" {
		t.Errorf("re-sort back moved selection to %s, want tables/b.vpx", got)
	}
}

func TestSortLastModifiedNewestFirst(t *testing.T) {
	m := New()
	m.SetItems(testItems())
	m.SetSort(SortLastModified)

	m.resolveCursor("") // cursor to top
	if got := selectedPath(t, &m); got != "tables/c.vpx" {
		t.Errorf("newest table is %s, want tables/c.vpx", got)
	}
}

func TestSortLastModifiedTiesStayStable(t *testing.T) {
	m := New()
	m.SetItems([]catalog.Item{
		{Path: "tables/b.vpx", LastModified: base},
		{Path: "tables/a.vpx", LastModified: base},
	})

	// Alphabetical first, then a tie on mtime keeps that order.
	m.SetSort(SortLastModified)
	if got := selectedPath(t, &m); got != "tables/a.vpx" {
		t.Errorf("tie broken to %s, want tables/a.vpx", got)
	}
}

func TestToggleSortCycles(t *testing.T) {
	m := New()
	if m.SortMode() != SortName {
		t.Fatal("default sort should be alphabetical")
	}
	m.ToggleSort()
	if m.SortMode() != SortLastModified {
		t.Error("first toggle should switch to last modified")
	}
	m.ToggleSort()
	if m.SortMode() != SortName {
		t.Error("second toggle should switch back")
	}
}

func TestRefreshFollowsSelectionByPath(t *testing.T) {
	m := New()
	m.SetItems(testItems())
	m.MoveDown() // select b

	refreshed := []catalog.Item{
		{Path: "tables/b.vpx", Name: "brand new name", LastModified: base},
		{Path: "tables/d.vpx", LastModified: base},
	}
	m.SetItems(refreshed)

	it, ok := m.SelectedItem()
	if !ok || it.Path != "tables/b.vpx" {
		t.Fatalf("refresh lost selection, got %+v", it)
	}
	if it.Name != "brand new name" {
		t.Error("refresh should pick up the new item record")
	}
}

func TestRefreshFallsBackToTopWhenSelectionVanishes(t *testing.T) {
	m := New()
	m.SetItems(testItems())
	m.MoveDown() // select b

	m.SetItems([]catalog.Item{
		{Path: "tables/a.vpx", LastModified: base},
		{Path: "tables/c.vpx", LastModified: base},
	})
	if got := selectedPath(t, &m); got != "tables/a.vpx" {
		t.Errorf("fallback selected %s, want tables/a.vpx", got)
	}

	m.SetItems(nil)
	if _, ok := m.SelectedItem(); ok {
		t.Error("refresh to empty list should clear the selection")
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m := New()
	m.SetSize(20, 4) // 3 visible rows below the title
	items := make([]catalog.Item, 6)
	for i := range items {
		items[i] = catalog.Item{Path: "tables/" + string(rune('a'+i)) + ".vpx", LastModified: base}
	}
	m.SetItems(items)

	for i := 0; i < 4; i++ {
		m.MoveDown()
	}
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}

	// Wrapping back to the top scrolls the window back up.
	m.MoveDown()
	m.MoveDown()
	if got := selectedPath(t, &m); got != "tables/a.vpx" {
		t.Fatalf("cursor on %s, want tables/a.vpx", got)
	}
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset after wrap = %d, want 0", m.scrollOffset)
	}
}

func TestViewPlaceholderAndCursor(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	if !strings.Contains(m.View(), "No tables found") {
		t.Error("empty list should render the placeholder")
	}

	m.SetItems(testItems())
	view := m.View()
	if !strings.Contains(view, "> ") {
		t.Error("selected row should carry the highlight symbol")
	}
	if !strings.Contains(view, "(Alphabetical)") {
		t.Error("title should name the active sort mode")
	}
}
