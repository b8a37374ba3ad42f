// Command mixserver serves the mixture property engine over HTTP for
// formulation frontends: component and target tables, model lists, and the
// evaluate/report endpoints.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/solventmix/internal/api"
	"github.com/talgya/solventmix/internal/engine"
	"github.com/talgya/solventmix/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		port   = flag.Int("port", 8080, "HTTP listen port")
		dbPath = flag.String("db", "data/solventmix.db", "constant store path")
	)
	flag.Parse()

	// ── Constant store ───────────────────────────────────────────────
	if dir := filepath.Dir(*dbPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	st, err := store.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.SeedIfEmpty(); err != nil {
		slog.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	components, err := st.LoadComponents()
	if err != nil {
		slog.Error("failed to load components", "error", err)
		os.Exit(1)
	}
	targets, err := st.LoadTargets()
	if err != nil {
		slog.Error("failed to load targets", "error", err)
		os.Exit(1)
	}
	slog.Info("constant store ready",
		"path", *dbPath,
		"components", components.Len(),
		"targets", len(targets.Names()),
	)

	// ── Engine + HTTP API ────────────────────────────────────────────
	server := &api.Server{
		Engine:     engine.New(components, targets),
		Components: components,
		Targets:    targets,
		Port:       *port,
	}
	server.Start()

	fmt.Printf("solventmix API: http://localhost:%d/api/v1/status\n", *port)
	fmt.Println("Serving... (Ctrl+C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
