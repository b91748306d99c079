package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"tutorlux_backend/database"
	"tutorlux_backend/internal/config"
	"tutorlux_backend/internal/importer"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/repositories"
)

const example = "John,Doe,john@example.com,555-1234,math.algebra;languages.french,Experienced tutor,50"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <csv-file-path>\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "Example CSV format:")
	fmt.Fprintln(os.Stderr, "firstName,lastName,email,phone,categories,bio,hourlyRate")
	fmt.Fprintln(os.Stderr, example)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		logger.Fatal("Import failed", "error", err)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Server.Env)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	logger.Info("Reading CSV file", "path", path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongo := database.NewMongo(database.Options{
		URI:                    cfg.Database.URI,
		Name:                   cfg.Database.Name,
		ServerSelectionTimeout: cfg.Database.ServerSelectionTimeout,
		ConnectTimeout:         cfg.Database.ConnectTimeout,
		MinPoolSize:            cfg.Database.MinPoolSize,
		MaxPoolSize:            cfg.Database.MaxPoolSize,
	})
	defer func() {
		if err := mongo.Close(context.Background()); err != nil {
			logger.Error("Mongo disconnect error", "error", err)
		}
	}()

	if err := mongo.Ping(ctx); err != nil {
		return fmt.Errorf("connect to mongo: %w", err)
	}
	logger.Info("Connected to MongoDB", "database", cfg.Database.Name)

	summary, err := importer.New(repositories.NewTutorRepository(mongo)).Import(ctx, f)
	fmt.Printf("\nImport summary:\n  Total imported: %d\n  Errors: %d\n  Total lines processed: %d\n",
		summary.Imported, summary.Errors, summary.Lines)
	return err
}
