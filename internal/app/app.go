package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/config"
	"github.com/weathercard/backend/internal/domain"
	"github.com/weathercard/backend/internal/repository/postgres"
	"github.com/weathercard/backend/internal/repository/sqlite"
	"github.com/weathercard/backend/internal/service"
)

// App wires the widget services together for one session
type App struct {
	Config *config.Config
	Store  domain.PreferenceStore
	Search *service.SearchController
	Theme  *service.ThemeService
}

// New builds the preference store and services from cfg.
// The theme preference is loaded before New returns.
func New(ctx context.Context, cfg *config.Config, opts ...service.ClientOption) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := service.NewWeatherClient(service.WeatherConfig{
		APIKey:  cfg.OpenWeatherAPIKey,
		BaseURL: cfg.OpenWeatherBaseURL,
	}, opts...)

	a := &App{
		Config: cfg,
		Store:  store,
		Search: service.NewSearchController(client),
		Theme:  service.NewThemeService(store),
	}
	a.Theme.Load(ctx)

	return a, nil
}

// OpenStore selects the preference backend named by cfg.PreferenceStore.
// An unreachable Postgres falls back to the in-memory store.
func OpenStore(ctx context.Context, cfg *config.Config) (domain.PreferenceStore, error) {
	switch cfg.PreferenceStore {
	case config.StoreMemory:
		log.Info().Msg("using in-memory preference store")
		return postgres.NewMockRepository(), nil

	case config.StorePostgres:
		store, err := openPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("could not connect to database, running with in-memory preferences")
			return postgres.NewMockRepository(), nil
		}
		log.Info().Msg("connected to PostgreSQL")
		return store, nil

	case config.StoreSQLite:
		store, err := sqlite.NewPreferenceRepository(cfg.PreferenceDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open preference database: %w", err)
		}
		log.Info().Str("path", cfg.PreferenceDBPath).Msg("using SQLite preference store")
		return store, nil
	}

	return nil, fmt.Errorf("unknown preference store %q", cfg.PreferenceStore)
}

func openPostgres(ctx context.Context, dsn string) (*postgres.PreferenceRepository, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	repo := postgres.NewPreferenceRepository(pool)
	if err := repo.Health(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return repo, nil
}

// Close waits for in-flight lookups and releases the preference store
func (a *App) Close() error {
	a.Search.Wait()
	return a.Store.Close()
}
