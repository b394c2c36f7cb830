package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	mongorepo "portfolio-backend/internal/repository/mongo"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/pkg/database"
)

var ErrNotConfigured = errors.New("DATABASE_URL and DATABASE_NAME must both be set")

// OpenDocumentStore connects to the database named by cfg. The backend is
// chosen from the DATABASE_URL scheme.
func OpenDocumentStore(ctx context.Context, cfg *config.Config) (domain.DocumentStore, error) {
	if !cfg.DatabaseConfigured() {
		return nil, ErrNotConfigured
	}

	driver, err := database.DriverFor(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout())
	defer cancel()

	switch driver {
	case database.DriverMongo:
		client, err := database.NewMongoConnection(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout())
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		return mongorepo.NewDocumentStore(client.Database(cfg.DatabaseName)), nil
	case database.DriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.DBConnectTimeout())
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		return postgres.NewDocumentStore(pool, cfg.DatabaseName), nil
	default:
		return nil, fmt.Errorf("database: no store for driver %q", driver)
	}
}
