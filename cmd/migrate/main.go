// Command migrate aplica o revierte las migraciones embebidas.
//
//	migrate up
//	migrate down [n]
//	migrate version
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: migrate up | down [n] | version")
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}()

	switch args[0] {
	case "up":
		return m.Up()
	case "down":
		n, err := steps(args[1:])
		if err != nil {
			return err
		}
		return m.Down(n)
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("versión %d (dirty=%t)\n", v, dirty)
		return nil
	default:
		return fmt.Errorf("comando desconocido %q", args[0])
	}
}

// steps lee n de "down [n]"; sin argumento revierte una migración.
func steps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	if args[0] == "all" {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("n debe ser un entero positivo o \"all\": %q", args[0])
	}
	return n, nil
}
