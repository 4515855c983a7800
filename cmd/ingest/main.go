// Command ingest persists a family description file into the graph database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jordanpinkava/Kinship-Project/internal/config"
	"github.com/jordanpinkava/Kinship-Project/internal/graph"
	"github.com/jordanpinkava/Kinship-Project/internal/loader"
	"github.com/jordanpinkava/Kinship-Project/internal/logging"
	"github.com/jordanpinkava/Kinship-Project/internal/repository"
	"github.com/jordanpinkava/Kinship-Project/internal/service"
)

func main() {
	var (
		familyFile = flag.String("file", "family.json", "Path to the family description file")
		workers    = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
		replace    = flag.Bool("replace", false, "Delete the stored family before ingesting")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	desc, err := loader.LoadFile(*familyFile)
	if err != nil {
		logger.Error("failed to load family file", "error", err, "path", *familyFile)
		os.Exit(1)
	}
	if len(desc.Individuals) == 0 {
		logger.Error("family description is empty", "path", *familyFile)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Graph.URI == "" {
		logger.Error("GRAPH_URI is required for ingestion")
		os.Exit(1)
	}

	graphClient, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	ingestor := service.NewIngestor(repo, *workers)

	start := time.Now()
	logger.Info("ingesting family",
		"individuals", len(desc.Individuals),
		"couples", len(desc.Couples),
		"workers", *workers,
		"replace", *replace,
	)
	if err := ingestor.IngestFamily(ctx, desc, *replace); err != nil {
		logger.Error("ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingestion complete",
		"duration", time.Since(start).String(),
		"individuals", len(desc.Individuals),
	)
}
