// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// loadMarkers reads mic/source positions from the session-level
// source_pov/position/origin.npy (mic = first row, source = last row),
// falling back to a position dir next to the mesh. Markers are
// optional; any failure just leaves them nil.
func loadMarkers(root, meshPath string) Markers {
	candidates := make([]string, 0, 3)
	if session := sessionRoot(root, meshPath); session != "" {
		candidates = append(candidates, filepath.Join(session, "source_pov", "position"))
	}
	candidates = append(candidates,
		filepath.Join(filepath.Dir(filepath.Dir(meshPath)), "position"),
		filepath.Join(filepath.Dir(meshPath), "position"),
	)

	for _, dir := range candidates {
		origin := filepath.Join(dir, "origin.npy")
		if _, err := os.Stat(origin); err != nil {
			continue
		}
		return readOrigin(origin)
	}
	return Markers{}
}

// sessionRoot walks the parents of meshPath up to root, looking for a
// directory named session_*.
func sessionRoot(root, meshPath string) string {
	dir := filepath.Dir(meshPath)
	for dir != root && dir != filepath.Dir(dir) {
		if strings.HasPrefix(filepath.Base(dir), "session_") {
			return dir
		}
		dir = filepath.Dir(dir)
	}
	return ""
}

// readOrigin parses an origin.npy holding an (n, >=3) float matrix.
func readOrigin(path string) Markers {
	f, err := os.Open(path)
	if err != nil {
		return Markers{}
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return Markers{}
	}

	rows, cols := m.Dims()
	if rows == 0 || cols < 3 {
		return Markers{}
	}

	markers := Markers{Mic: rowVec(&m, 0)}
	if rows > 1 {
		markers.Source = rowVec(&m, rows-1)
	}
	return markers
}

func rowVec(m *mat.Dense, row int) []float64 {
	return []float64{m.At(row, 0), m.At(row, 1), m.At(row, 2)}
}
