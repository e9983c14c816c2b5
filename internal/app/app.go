package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/riskibarqy/school-tournament/internal/config"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/school-tournament/internal/interfaces/httpapi"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
	"github.com/riskibarqy/school-tournament/internal/platform/resilience"
	"github.com/riskibarqy/school-tournament/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// NewHTTPServer wires the tournament store, service and router. The returned
// cleanup releases the store and must be called after the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repo, cleanup, err := newTournamentRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	tournamentSvc := usecase.NewTournamentService(repo, usecase.TournamentConfig{
		StorageKey:     cfg.TournamentStorageKey,
		DefaultSchools: cfg.TournamentDefaultSchools,
	}, logger)

	handler := httpapi.NewHandler(tournamentSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newTournamentRepository(cfg config.Config, logger *logging.Logger) (tournament.Repository, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := otelsqlx.Open("postgres", dsn,
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}

		breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Enabled:          cfg.StoreCircuitEnabled,
			FailureThreshold: cfg.StoreCircuitFailureCount,
			OpenTimeout:      cfg.StoreCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StoreCircuitHalfOpenMaxReq,
		})

		logger.Info("tournament store ready", "driver", cfg.StoreDriver, "db_name", dbNameFromURL(dsn), "circuit_enabled", cfg.StoreCircuitEnabled)
		return postgres.NewTournamentRepository(db, breaker), db.Close, nil
	default:
		logger.Info("tournament store ready", "driver", config.StoreDriverMemory)
		return memory.NewTournamentRepository(nil), func() error { return nil }, nil
	}
}
