// Command server exposes the kinship resolver over HTTP. The family comes
// from FAMILY_FILE or, when GRAPH_URI is set, from the graph database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jordanpinkava/Kinship-Project/internal/config"
	"github.com/jordanpinkava/Kinship-Project/internal/domain"
	"github.com/jordanpinkava/Kinship-Project/internal/graph"
	"github.com/jordanpinkava/Kinship-Project/internal/loader"
	"github.com/jordanpinkava/Kinship-Project/internal/logging"
	"github.com/jordanpinkava/Kinship-Project/internal/repository"
	"github.com/jordanpinkava/Kinship-Project/internal/server"
	"github.com/jordanpinkava/Kinship-Project/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	desc, graphClient, err := loadFamily(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to load family", "error", err)
		os.Exit(1)
	}
	defer func() {
		if graphClient != nil {
			if err := graphClient.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}
	}()

	svc, err := service.NewKinshipService(desc, nil, logger)
	if err != nil {
		logger.Error("failed to build kinship service", "error", err)
		os.Exit(1)
	}
	logger.Info("family loaded", "individuals", svc.Size())

	apiHandlers := server.NewAPIHandlers(logger, svc)
	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.GraphHealthService{Client: graphClient},
		API:              apiHandlers,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// loadFamily resolves the family description from the configured source. The
// returned graph client is non-nil only when the graph store is in use; the
// caller owns closing it.
func loadFamily(ctx context.Context, logger *slog.Logger, cfg config.Config) (domain.FamilyDescription, graph.Client, error) {
	if cfg.Family.File != "" {
		desc, err := loader.LoadFile(cfg.Family.File)
		if err != nil {
			return domain.FamilyDescription{}, nil, err
		}
		logger.Info("loaded family from file", "path", cfg.Family.File)
		return desc, nil, nil
	}

	if cfg.Graph.URI == "" {
		return domain.FamilyDescription{}, nil, errors.New("either FAMILY_FILE or GRAPH_URI must be set")
	}

	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		return domain.FamilyDescription{}, nil, err
	}

	desc, err := repository.New(client).LoadFamily(ctx)
	if err != nil {
		_ = client.Close(ctx)
		return domain.FamilyDescription{}, nil, err
	}
	logger.Info("loaded family from graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return desc, client, nil
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
