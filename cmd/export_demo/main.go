// export_demo genera el dataset demo y lo exporta a PostgreSQL o a un libro XLSX.
//
// Uso:
//
//	go run ./cmd/export_demo -format xlsx -out demo.xlsx
//	go run ./cmd/export_demo -format postgres -truncate
//
// La semilla y la contraseña de los usuarios salen de DEMO_SEED y DEMO_PASSWORD
// salvo que se pase -seed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/superventas/pos-api/internal/infrastructure/demo"
	"github.com/superventas/pos-api/internal/infrastructure/excel"
	"github.com/superventas/pos-api/internal/infrastructure/postgres"
	"github.com/superventas/pos-api/pkg/config"
	"github.com/superventas/pos-api/pkg/logger"
)

type options struct {
	format   string
	out      string
	seed     uint64
	truncate bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	opts := options{seed: cfg.Demo.Seed}
	flag.StringVar(&opts.format, "format", "xlsx", "destino: xlsx o postgres")
	flag.StringVar(&opts.out, "out", "demo.xlsx", "archivo de salida (solo xlsx)")
	flag.Uint64Var(&opts.seed, "seed", opts.seed, "semilla del generador (0 = aleatoria)")
	flag.BoolVar(&opts.truncate, "truncate", false, "vaciar las tablas antes de exportar (solo postgres)")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ds, err := demo.Generate(demo.GenerateOptions{Seed: opts.seed, Password: cfg.Demo.Password})
	if err != nil {
		log.Fatal().Err(err).Msg("generar dataset demo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch opts.format {
	case "xlsx":
		err = exportXLSX(opts.out, ds)
	case "postgres":
		err = exportPostgres(ctx, cfg.DB, ds, opts.truncate, log)
	default:
		err = fmt.Errorf("formato desconocido %q", opts.format)
	}
	if err != nil {
		log.Fatal().Err(err).Str("format", opts.format).Msg("exportar dataset")
	}
	log.Info().Str("format", opts.format).Uint64("seed", opts.seed).Msg("exportación completa")
}

func exportXLSX(path string, ds *demo.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	if err := excel.WriteDataset(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportPostgres(ctx context.Context, cfg config.DBConfig, ds *demo.Dataset, truncate bool, log *logger.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	written, err := postgres.NewDatasetWriter(postgres.NewTxRunner(pool), log).
		Write(ctx, ds, postgres.WriteOptions{Truncate: truncate})
	if err != nil {
		return err
	}
	for table, n := range written {
		log.Info().Str("table", table).Int64("rows", n).Msg("filas exportadas")
	}
	return nil
}
