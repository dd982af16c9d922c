package shared

import "pindash/catalog"

// LibraryRefreshedMsg carries a fresh scan result. The item slice and
// availability set are swapped in wholesale between frames; a render pass
// never observes a partial refresh.
type LibraryRefreshedMsg struct {
	Items []catalog.Item
	Avail catalog.Availability
	Err   error
}

// LibraryChangedMsg signals that the watcher saw a relevant change on disk.
type LibraryChangedMsg struct {
	Err error
}
