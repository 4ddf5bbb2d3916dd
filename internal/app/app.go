package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/crichub/handcricket-stats/internal/config"
	"github.com/crichub/handcricket-stats/internal/domain/performance"
	"github.com/crichub/handcricket-stats/internal/domain/teamdict"
	"github.com/crichub/handcricket-stats/internal/domain/tournament"
	"github.com/crichub/handcricket-stats/internal/infrastructure/repository/memory"
	"github.com/crichub/handcricket-stats/internal/infrastructure/repository/postgres"
	"github.com/crichub/handcricket-stats/internal/interfaces/httpapi"
	"github.com/crichub/handcricket-stats/internal/platform/cache"
	"github.com/crichub/handcricket-stats/internal/platform/logging"
	"github.com/crichub/handcricket-stats/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup closes the database connection when postgres storage
// is in use.
func NewHTTPServer(cfg config.Config, slogger *slog.Logger, logger *logging.Logger) (*http.Server, func() error, error) {
	if slogger == nil {
		slogger = slog.Default()
	}
	if logger == nil {
		logger = logging.Default()
	}

	var (
		tournaments  tournament.Repository
		performances performance.Repository
		dictionaries teamdict.Repository
		cleanup      = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		tournaments = memory.NewTournamentRepository()
		performances = memory.NewPerformanceRepository()
		dictionaries = memory.NewDictionaryRepository()
		logger.Info("storage configured", "driver", config.StorageMemory)
	default:
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		cleanup = db.Close
		tournaments = postgres.NewTournamentRepository(db)
		performances = postgres.NewPerformanceRepository(db)
		dictionaries = postgres.NewDictionaryRepository(db)
		logger.Info("storage configured", "driver", config.StoragePostgres, "db", dbNameFromURL(cfg.DBURL))
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	statsSvc := usecase.NewStatsService(tournaments, performances, dictionaries, store)
	handler := httpapi.NewHandler(
		usecase.NewTournamentService(tournaments),
		usecase.NewImportService(tournaments, performances, statsSvc, cfg.ImportMaxWorkers, logger),
		statsSvc,
		usecase.NewDictionaryService(dictionaries),
		logger,
	)
	router := httpapi.NewRouter(handler, slogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
