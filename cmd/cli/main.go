package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/warehouse-state/internal/application/inventory"
	"github.com/jhoicas/warehouse-state/internal/infrastructure/filestore"
	"github.com/jhoicas/warehouse-state/internal/interfaces/command"
	"github.com/jhoicas/warehouse-state/pkg/config"
	"github.com/jhoicas/warehouse-state/pkg/logger"
)

// Lee un comando por línea desde stdin y escribe cada respuesta en stdout.
// Los logs van a stderr para no mezclarse con el protocolo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL ERROR: cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	})

	repo := filestore.NewSnapshotRepository(cfg.Storage.FilePath,
		filestore.WithLogger(log.Named("filestore")),
	)
	manager, err := inventory.NewWarehouseManager(repo, log.Named("warehouse"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL ERROR: %v\n", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		os.Exit(0)
	}()

	session := command.NewSession(command.NewController(manager), log.Named("cli"))
	if err := session.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL ERROR: %v\n", err)
		os.Exit(1)
	}
}
