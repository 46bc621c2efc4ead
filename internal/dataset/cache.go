// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	lastRootFile   = "last_dataset.txt"
	indexCacheFile = "mesh_index.json"
)

// indexCache is the persisted form of the latest scan.
type indexCache struct {
	DatasetRoot string  `json:"dataset_root"`
	GeneratedAt float64 `json:"generated_at"`
	MeshCount   int     `json:"mesh_count"`
	Entries     []Entry `json:"entries"`
}

// RememberRoot records root as the most recently used dataset so the
// next launch can default to it.
func RememberRoot(cacheDir, root string) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cacheDir, lastRootFile), []byte(root), 0o644); err != nil {
		return fmt.Errorf("remembering dataset root: %w", err)
	}
	return nil
}

// LastRoot returns the previously remembered dataset root, if it still
// exists on disk.
func LastRoot(cacheDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(cacheDir, lastRootFile))
	if err != nil {
		return "", false
	}
	root := strings.TrimSpace(string(data))
	if root == "" {
		return "", false
	}
	if _, err := os.Stat(root); err != nil {
		return "", false
	}
	return root, true
}

// writeIndexCache persists the latest scan for quick inspection and
// reuse across launches.
func writeIndexCache(cacheDir, root string, entries []Entry) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	payload := indexCache{
		DatasetRoot: root,
		GeneratedAt: float64(time.Now().UnixNano()) / 1e9,
		MeshCount:   len(entries),
		Entries:     entries,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cacheDir, indexCacheFile), data, 0o644); err != nil {
		return fmt.Errorf("writing index cache: %w", err)
	}
	return nil
}
