// SPDX-License-Identifier: EPL-2.0

// Package dataset scans a capture dataset directory and maintains the
// entry index served by the viewer.
//
// A dataset is a tree of rooms and sessions; each capture holds a
// mesh/mesh.obj, an image/ directory of PNG previews and an audio/
// directory of RIR recordings, plus optional microphone/source marker
// positions stored as a NumPy array.
package dataset

// PreviewAsset is one PNG thumbnail belonging to an entry.
type PreviewAsset struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	RelPath string  `json:"rel_path"`
	Size    int64   `json:"size"`
	ModTime float64 `json:"mtime"`
}

// RIRAsset is one room-impulse-response recording belonging to an entry.
type RIRAsset struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	RelPath string  `json:"rel_path"`
	Size    int64   `json:"size"`
	ModTime float64 `json:"mtime"`
	Channel string  `json:"channel"`
}

// Markers holds the microphone and source positions of a capture, when
// known. Either may be nil.
type Markers struct {
	Mic    []float64 `json:"mic"`
	Source []float64 `json:"source"`
}

// Entry is one dataset record: a captured mesh with its previews and
// RIR recordings.
type Entry struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	RelPath  string         `json:"rel_path"`
	Size     int64          `json:"size"`
	ModTime  float64        `json:"mtime"`
	Previews []PreviewAsset `json:"previews"`
	RIRs     []RIRAsset     `json:"rirs"`
	Markers  Markers        `json:"markers"`
}

// Index is one immutable scan result. The id maps resolve served
// identifiers back to absolute file paths.
type Index struct {
	Entries []Entry

	meshPaths    map[string]string
	previewPaths map[string]string
	rirPaths     map[string]string
}

// MeshPath resolves a mesh id to its absolute path.
func (ix *Index) MeshPath(id string) (string, bool) {
	p, ok := ix.meshPaths[id]
	return p, ok
}

// PreviewPath resolves a preview id to its absolute path.
func (ix *Index) PreviewPath(id string) (string, bool) {
	p, ok := ix.previewPaths[id]
	return p, ok
}

// RIRPath resolves a RIR id to its absolute path.
func (ix *Index) RIRPath(id string) (string, bool) {
	p, ok := ix.rirPaths[id]
	return p, ok
}
