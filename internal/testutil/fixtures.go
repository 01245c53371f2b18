// Package testutil resolves fixture beatmaps for package tests. It keeps
// the case-insensitive path-cache shape of danser-go's
// framework/files.FileMap, repurposed from walking a game's skin/asset
// tree to walking a package's testdata directory of JSON beatmap
// fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/osupp/ppplus/beatmap"
)

// FixtureMap resolves fixture names (case-insensitively, with or without
// the .json suffix) to an open Beatmap, caching the directory walk once at
// construction like FileMap does for a skin directory.
type FixtureMap struct {
	root      string
	pathCache map[string]string
}

// NewFixtureMap walks root (typically a package's "testdata" directory)
// once, recording every file it finds.
func NewFixtureMap(root string) (*FixtureMap, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, err
	}

	fRoot := strings.ReplaceAll(root, "\\", "/")
	if !strings.HasSuffix(fRoot, "/") {
		fRoot += "/"
	}

	fm := &FixtureMap{
		root:      fRoot,
		pathCache: make(map[string]string),
	}

	err := godirwalk.Walk(fRoot, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			fixedPath := strings.TrimPrefix(strings.ReplaceAll(osPathname, "\\", "/"), fRoot)
			fm.pathCache[strings.ToLower(fixedPath)] = fixedPath
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return nil, err
	}

	return fm, nil
}

// Resolve returns the on-disk path of the fixture matching name
// (case-insensitive; ".json" is appended if name doesn't already end with
// it).
func (fm *FixtureMap) Resolve(name string) (string, error) {
	key := strings.ToLower(name)
	if !strings.HasSuffix(key, ".json") {
		key += ".json"
	}

	if resolved, ok := fm.pathCache[key]; ok {
		return filepath.Join(fm.root, resolved), nil
	}

	return "", fmt.Errorf("testutil: no fixture named %q under %s", name, fm.root)
}

// Load resolves name and decodes it as a beatmap.FromJSON fixture.
func (fm *FixtureMap) Load(name string) (*beatmap.Beatmap, error) {
	path, err := fm.Resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return beatmap.FromJSON(f)
}
