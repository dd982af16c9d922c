package detail

import (
	"strings"
	"testing"
	"time"

	"pindash/catalog"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func fullItem() catalog.Item {
	return catalog.Item{
		Path:         "tables/mm_v1.2.vpx",
		Name:         "medieval madness",
		GameName:     "mm",
		B2SName:      "mm.directb2s",
		RomPath:      "roms/mm.zip",
		B2SPath:      "tables/mm.directb2s",
		LastModified: now.Add(-48 * time.Hour),
		Description:  "Storm the castle.",
	}
}

func TestComposeFullItem(t *testing.T) {
	it := fullItem()
	avail := catalog.Availability{"mm": {}, "mm.directb2s": {}}

	lines := Compose(&it, avail, now)

	// title, blank, path, game, rom, b2s, modified, blank, description
	if len(lines) != 9 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Medieval madness mm_v1.2") {
		t.Errorf("title = %q", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("expected blank separator after title, got %q", lines[1])
	}
	checks := map[int]string{
		2: "Path:",
		3: "Game Name:",
		4: "Rom Path:",
		5: "B2S Path:",
		6: "Last Modified:",
		8: "Storm the castle.",
	}
	for i, want := range checks {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[6], "2 days ago") {
		t.Errorf("last modified line = %q", lines[6])
	}
}

func TestComposeEmitsWarningsBeforeFields(t *testing.T) {
	it := fullItem()

	lines := Compose(&it, catalog.Availability{}, now)

	if !strings.Contains(lines[2], "⚠ missing rom mm") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[3], "⚠ missing backglass mm.directb2s") {
		t.Errorf("line 3 = %q", lines[3])
	}
	if !strings.Contains(lines[4], "Path:") {
		t.Errorf("fields should follow the warnings, line 4 = %q", lines[4])
	}
}

func TestComposeOmitsAbsentFields(t *testing.T) {
	it := catalog.Item{
		Path:         "tables/afm.vpx",
		LastModified: now.Add(-time.Hour),
	}

	lines := Compose(&it, catalog.Availability{}, now)
	joined := strings.Join(lines, "\n")

	for _, absent := range []string{"Game Name:", "Rom Path:", "B2S Path:", "⚠"} {
		if strings.Contains(joined, absent) {
			t.Errorf("absent field rendered: %q", absent)
		}
	}
	for _, present := range []string{"afm", "Path:", "Last Modified:"} {
		if !strings.Contains(joined, present) {
			t.Errorf("mandatory content missing: %q", present)
		}
	}
}

func TestComposeNoSelection(t *testing.T) {
	lines := Compose(nil, catalog.Availability{}, now)
	if len(lines) != 1 || !strings.Contains(lines[0], "No table selected") {
		t.Errorf("placeholder lines = %q", lines)
	}
}
