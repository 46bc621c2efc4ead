// SPDX-License-Identifier: EPL-2.0

// Command primview starts the local dataset viewer: it scans a dataset
// root for mesh.obj captures and serves the browsing UI on localhost.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/capturelab/primview"
	"github.com/capturelab/primview/audio"
	"github.com/capturelab/primview/internal/dataset"
	"github.com/capturelab/primview/internal/server"
)

func main() {
	datasetFlag := flag.String("dataset", "", "Path to dataset root (defaults to last used or ./dataset)")
	port := flag.Int("port", 8800, "Port for the local web server")
	cacheDir := flag.String("cache-dir", defaultCacheDir(), "Directory for the index cache")
	noBrowser := flag.Bool("no-browser", false, "Do not auto-open the browser")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	root := resolveRoot(*datasetFlag, *cacheDir)
	if err := dataset.RememberRoot(*cacheDir, root); err != nil {
		slog.Warn("could not remember dataset root", "error", err)
	}

	store := dataset.NewStore(root, *cacheDir)
	idx, err := store.Rescan()
	if err != nil {
		slog.Error("initial scan failed", "error", err)
		os.Exit(1)
	}

	loader := audio.NewLoader(rirFetcher(store), primview.DefaultChain())
	srv := server.New(store, loader)

	slog.Info("dataset scanned",
		"root", root,
		"meshes", len(idx.Entries),
		"cache", *cacheDir,
	)

	if !*noBrowser {
		url := fmt.Sprintf("http://localhost:%d", *port)
		time.AfterFunc(500*time.Millisecond, func() {
			if err := server.OpenBrowser(url); err != nil {
				slog.Warn("could not open browser", "url", url, "error", err)
			}
		})
	}

	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		<-ctx.Done()

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Start(*port); err != nil {
		slog.Info("server stopped", "reason", err)
	}
}

// rirFetcher resolves RIR ids against the current index snapshot, so a
// rescan immediately changes what a given id serves.
func rirFetcher(store *dataset.Store) audio.FetchFunc {
	return func(_ context.Context, id string) ([]byte, error) {
		path, ok := store.Index().RIRPath(id)
		if !ok {
			return nil, fmt.Errorf("unknown rir id %q", id)
		}
		return os.ReadFile(path)
	}
}

// resolveRoot picks the dataset root: explicit flag, then the last
// used root from the cache, then ./dataset.
func resolveRoot(flagValue, cacheDir string) string {
	if flagValue != "" {
		if abs, err := filepath.Abs(flagValue); err == nil {
			return abs
		}
		return flagValue
	}
	if last, ok := dataset.LastRoot(cacheDir); ok {
		return last
	}
	if abs, err := filepath.Abs("dataset"); err == nil {
		return abs
	}
	return "dataset"
}

func defaultCacheDir() string {
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "primview")
	}
	return ".primview-cache"
}
