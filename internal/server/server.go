// SPDX-License-Identifier: EPL-2.0

// Package server exposes the dataset over a local HTTP API plus an
// embedded browser frontend.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/capturelab/primview/audio"
	"github.com/capturelab/primview/internal/dataset"
	"github.com/capturelab/primview/waveform"
)

// ErrUnsupportedPlatform is returned when browser opening is not supported.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

//go:embed static/*
var staticFiles embed.FS

// Waveform size limits for the /waveform endpoint. Requests outside
// the range are clamped, not rejected.
const (
	defaultWaveWidth  = 480
	defaultWaveHeight = 96
	maxWaveWidth      = 4096
	maxWaveHeight     = 1024
)

// listPayload is the JSON body of /api/list and /api/rescan.
type listPayload struct {
	DatasetRoot string          `json:"dataset_root"`
	MeshCount   int             `json:"mesh_count"`
	Entries     []dataset.Entry `json:"entries"`
	CacheDir    string          `json:"cache_dir"`
}

// event is one WebSocket message pushed to connected clients.
type event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Server serves the viewer UI, the dataset assets and the rendered
// waveforms.
type Server struct {
	store      *dataset.Store
	loader     *audio.Loader
	hub        *Hub
	httpServer *http.Server
}

// New wires a dataset store and a waveform loader into a server.
func New(store *dataset.Store, loader *audio.Loader) *Server {
	return &Server{
		store:  store,
		loader: loader,
		hub:    NewHub(),
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	staticFS, err := fs.Sub(staticFiles, "static")
	if err == nil {
		mux.Handle("GET /", http.FileServer(http.FS(staticFS)))
	}

	mux.HandleFunc("GET /api/list", s.handleList)
	mux.HandleFunc("POST /api/rescan", s.handleRescan)
	mux.HandleFunc("GET /mesh/{id}", s.handleMesh)
	mux.HandleFunc("GET /preview/{id}", s.handlePreview)
	mux.HandleFunc("GET /rir/{id}", s.handleRIR)
	mux.HandleFunc("GET /waveform/{id}", s.handleWaveform)
	mux.HandleFunc("GET /ws", s.handleWebSocket)

	return mux
}

// Start blocks serving HTTP on port.
func (s *Server) Start(port int) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("web server starting", "port", port, "url", fmt.Sprintf("http://localhost:%d", port))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) listBody() listPayload {
	idx := s.store.Index()
	return listPayload{
		DatasetRoot: s.store.Root(),
		MeshCount:   len(idx.Entries),
		Entries:     idx.Entries,
		CacheDir:    s.store.CacheDir(),
	}
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.listBody())
}

// handleRescan rebuilds the index. Decoded waveforms are dropped along
// with it: after a rescan an identifier may point at different bytes,
// so the sample cache must not survive.
func (s *Server) handleRescan(w http.ResponseWriter, _ *http.Request) {
	if _, err := s.store.Rescan(); err != nil {
		slog.Error("rescan failed", "error", err)
		http.Error(w, "rescan failed", http.StatusInternalServerError)
		return
	}
	s.loader.Reset()

	body := s.listBody()
	writeJSON(w, body)

	if data, err := json.Marshal(event{Type: "index", Payload: body}); err == nil {
		s.hub.Broadcast(data)
	}
}

func (s *Server) handleMesh(w http.ResponseWriter, r *http.Request) {
	path, ok := s.store.Index().MeshPath(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	serveFile(w, r, path, "text/plain; charset=utf-8")
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	path, ok := s.store.Index().PreviewPath(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	serveFile(w, r, path, "image/png")
}

func (s *Server) handleRIR(w http.ResponseWriter, r *http.Request) {
	path, ok := s.store.Index().RIRPath(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	serveFile(w, r, path, "audio/wav")
}

// handleWaveform renders the min/max envelope of a RIR as PNG. Unknown
// ids are 404; anything that fetched but failed to decode is answered
// with an explicit unavailable status so the frontend can show a
// placeholder instead of a broken image.
func (s *Server) handleWaveform(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.store.Index().RIRPath(id); !ok {
		http.NotFound(w, r)
		return
	}

	set, err := s.loader.Load(r.Context(), id)
	if err != nil {
		slog.Warn("waveform decode failed", "id", id, "error", err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, audio.ErrTransport) {
			status = http.StatusBadGateway
		}
		http.Error(w, "waveform unavailable", status)
		return
	}

	width := clampQuery(r, "w", defaultWaveWidth, maxWaveWidth)
	height := clampQuery(r, "h", defaultWaveHeight, maxWaveHeight)

	w.Header().Set("Content-Type", "image/png")
	if err := waveform.EncodePNG(w, set.Samples, width, height); err != nil {
		slog.Error("waveform encode failed", "id", id, "error", err)
	}
}

//nolint:gochecknoglobals // WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true // local viewer only
	},
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 256)}

	// Queue the initial index before the client is visible to
	// Broadcast, so nothing can close the channel underneath the send.
	if data, err := json.Marshal(event{Type: "index", Payload: s.listBody()}); err == nil {
		c.send <- data
	}
	s.hub.add(c)
	go c.writePump()

	// Block until the browser goes away. Nothing inbound is acted on;
	// reading only detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.hub.remove(c)
	conn.Close()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errchkjson // payload structs are well-defined
	_ = json.NewEncoder(w).Encode(v)
}

func serveFile(w http.ResponseWriter, r *http.Request, path, contentType string) {
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "stat failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func clampQuery(r *http.Request, key string, def, maxVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// OpenBrowser opens the default browser at url.
func OpenBrowser(url string) error {
	ctx := context.Background()
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", url)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}

	return cmd.Start()
}
