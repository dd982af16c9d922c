package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"pindash/util"
)

// sidecarMeta is the optional per-table metadata file <stem>.info.toml
// placed next to a table.
type sidecarMeta struct {
	TableName   string `toml:"table_name"`
	GameName    string `toml:"game_name"`
	B2S         string `toml:"b2s"`
	Description string `toml:"description"`
}

// Scan indexes every .vpx file under tablesDir, in walk order. Sidecar
// metadata is merged in when present, and referenced ROM/backglass files
// are resolved to local paths when they exist. romsDir may be empty.
func Scan(tablesDir, romsDir string) ([]Item, error) {
	var items []Item

	err := filepath.WalkDir(tablesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".vpx") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		it := Item{
			Path:         path,
			LastModified: info.ModTime(),
		}

		dir := filepath.Dir(path)
		stem := util.Stem(path)

		metaPath := filepath.Join(dir, stem+".info.toml")
		if _, err := os.Stat(metaPath); err == nil {
			var meta sidecarMeta
			if _, err := toml.DecodeFile(metaPath, &meta); err != nil {
				return fmt.Errorf("parsing %s: %w", metaPath, err)
			}
			it.Name = meta.TableName
			it.GameName = meta.GameName
			it.B2SName = meta.B2S
			it.Description = meta.Description
		}

		// A backglass sitting next to the table counts as a reference
		// even without sidecar metadata.
		if it.B2SName == "" {
			candidate := stem + ".directb2s"
			if _, err := os.Stat(filepath.Join(dir, candidate)); err == nil {
				it.B2SName = candidate
			}
		}

		if it.GameName != "" && romsDir != "" {
			romPath := filepath.Join(romsDir, it.GameName+".zip")
			if _, err := os.Stat(romPath); err == nil {
				it.RomPath = romPath
			}
		}
		if it.B2SName != "" {
			b2sPath := filepath.Join(dir, it.B2SName)
			if _, err := os.Stat(b2sPath); err == nil {
				it.B2SPath = b2sPath
			}
		}

		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", tablesDir, err)
	}

	return items, nil
}

// ScanResources builds the availability set: ROM archive stems from romsDir
// plus every .directb2s filename found under tablesDir. A missing romsDir
// simply contributes nothing.
func ScanResources(tablesDir, romsDir string) (Availability, error) {
	avail := make(Availability)

	if romsDir != "" {
		entries, err := os.ReadDir(romsDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading roms dir %q: %w", romsDir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".zip") {
				continue
			}
			avail[util.Stem(e.Name())] = struct{}{}
		}
	}

	err := filepath.WalkDir(tablesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".directb2s") {
			avail[filepath.Base(path)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", tablesDir, err)
	}

	return avail, nil
}
