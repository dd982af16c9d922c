package catalog

import (
	"fmt"
	"strings"
	"time"

	"pindash/util"
)

// Item is one indexed table file in the library. Items are produced by Scan
// and treated as read-only by the presentation layer.
type Item struct {
	Path string

	// Name is the table's display name from sidecar metadata.
	// Empty means the file stem is shown on its own.
	Name string

	// GameName is the ROM identifier the table depends on.
	GameName string

	// B2SName is the backglass file the table references.
	B2SName string

	// RomPath and B2SPath are set when the referenced resources were
	// found on disk during the scan.
	RomPath string
	B2SPath string

	LastModified time.Time
	Description  string
}

// Availability is the set of resource identifiers known to exist on disk.
// It is built by ScanResources and never mutated by the presentation layer.
type Availability map[string]struct{}

func (a Availability) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// DisplayLabel returns the plain-text label for a table: the capitalized
// metadata name followed by the file stem, or the stem alone when no
// metadata name is set.
func (it Item) DisplayLabel() string {
	stem := util.Stem(it.Path)
	if it.Name == "" {
		return stem
	}
	return util.CapitalizeFirst(it.Name) + " " + stem
}

// SortKey is the case-normalized label used for alphabetical ordering.
func (it Item) SortKey() string {
	return strings.ToLower(it.DisplayLabel())
}

// Warnings reports each resource the table references that is missing from
// avail, ROM first, backglass second. A table with no references yields nil.
func (it Item) Warnings(avail Availability) []string {
	var warnings []string
	if it.GameName != "" && !avail.Has(it.GameName) {
		warnings = append(warnings, fmt.Sprintf("missing rom %s", it.GameName))
	}
	if it.B2SName != "" && !avail.Has(it.B2SName) {
		warnings = append(warnings, fmt.Sprintf("missing backglass %s", it.B2SName))
	}
	return warnings
}
