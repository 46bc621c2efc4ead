// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store owns the current Index of one dataset root. Rescan swaps the
// whole index atomically; readers always see a consistent snapshot.
type Store struct {
	root     string
	cacheDir string

	mu  sync.RWMutex
	idx *Index
}

// NewStore prepares a store for root. No scan happens until Rescan.
func NewStore(root, cacheDir string) *Store {
	return &Store{
		root:     root,
		cacheDir: cacheDir,
		idx:      &Index{},
	}
}

// Root returns the dataset root the store scans.
func (s *Store) Root() string { return s.root }

// CacheDir returns the directory scan results are persisted into.
func (s *Store) CacheDir() string { return s.cacheDir }

// Index returns the current scan snapshot.
func (s *Store) Index() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// Rescan rebuilds the index from disk, swaps it in and persists it to
// the cache directory. The previous snapshot stays valid for readers
// that already hold it. The persisted copy is advisory: once the new
// index is swapped in the rescan has happened, so a cache write
// failure is logged instead of reported.
func (s *Store) Rescan() (*Index, error) {
	idx, err := scan(s.root)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()

	if s.cacheDir != "" {
		if err := writeIndexCache(s.cacheDir, s.root, idx.Entries); err != nil {
			slog.Warn("could not persist index cache", "dir", s.cacheDir, "error", err)
		}
	}
	return idx, nil
}

// scan walks root for mesh.obj files and assembles entries. A missing
// root yields an empty index, not an error; the viewer still starts.
func scan(root string) (*Index, error) {
	idx := &Index{
		Entries:      []Entry{},
		meshPaths:    make(map[string]string),
		previewPaths: make(map[string]string),
		rirPaths:     make(map[string]string),
	}

	if _, err := os.Stat(root); err != nil {
		return idx, nil
	}

	var meshes []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable subtrees
		}
		if !d.IsDir() && d.Name() == "mesh.obj" {
			meshes = append(meshes, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking dataset: %w", err)
	}
	sort.Strings(meshes)

	for _, meshPath := range meshes {
		info, err := os.Stat(meshPath)
		if err != nil {
			continue
		}

		rel, err := filepath.Rel(root, meshPath)
		if err != nil {
			continue
		}
		relSlash := filepath.ToSlash(rel)

		name := strings.Join(strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/"), " / ")
		if name == "." {
			name = filepath.Base(meshPath)
		}

		entry := Entry{
			ID:      assetID(meshPath),
			Name:    name,
			RelPath: relSlash,
			Size:    info.Size(),
			ModTime: float64(info.ModTime().UnixNano()) / 1e9,
			Markers: loadMarkers(root, meshPath),
		}

		entry.Previews = collectAssets(root, meshPath, "image", ".png", idx.previewPaths)
		for _, rir := range collectAssets(root, meshPath, "audio", ".wav", idx.rirPaths) {
			entry.RIRs = append(entry.RIRs, RIRAsset{
				ID:      rir.ID,
				Name:    rir.Name,
				RelPath: rir.RelPath,
				Size:    rir.Size,
				ModTime: rir.ModTime,
				Channel: strings.TrimSuffix(rir.Name, filepath.Ext(rir.Name)),
			})
		}

		idx.meshPaths[entry.ID] = meshPath
		idx.Entries = append(idx.Entries, entry)
	}

	return idx, nil
}

// collectAssets gathers files of one extension from the sibling dir of
// a mesh. Layout: .../<capture>/mesh/mesh.obj with <capture>/<dir>
// holding the assets; older datasets keep the dir next to the obj.
func collectAssets(root, meshPath, dir, ext string, paths map[string]string) []PreviewAsset {
	candidate := filepath.Join(filepath.Dir(filepath.Dir(meshPath)), dir)
	if _, err := os.Stat(candidate); err != nil {
		candidate = filepath.Join(filepath.Dir(meshPath), dir)
	}

	entries, err := os.ReadDir(candidate)
	if err != nil {
		return nil
	}

	var assets []PreviewAsset
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		full := filepath.Join(candidate, e.Name())
		info, err := e.Info()
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(root, full)
		if err != nil {
			continue
		}

		id := assetID(full)
		assets = append(assets, PreviewAsset{
			ID:      id,
			Name:    e.Name(),
			RelPath: filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: float64(info.ModTime().UnixNano()) / 1e9,
		})
		paths[id] = full
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets
}

// assetID derives the stable id of a file from its path.
func assetID(path string) string {
	sum := sha1.Sum([]byte(path))
	return hex.EncodeToString(sum[:])[:12]
}
