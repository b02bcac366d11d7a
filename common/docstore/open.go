package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/narender/store-manager/common/config"
)

// Open builds the backend selected by cfg.StoreBackend, wrapped with instrumentation.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		store = NewMemoryStore()
	case config.BackendFile:
		store, err = NewFileStore(cfg.DataFilePath)
	case config.BackendMongo:
		store, err = NewMongoStore(ctx, cfg.MongoURL, cfg.MongoDatabase)
	case config.BackendPostgres:
		var pg *PostgresStore
		pg, err = NewPostgresStore(ctx, cfg.PostgresDSN)
		if err == nil {
			if err = pg.Migrate(ctx); err != nil {
				pg.Close(ctx)
			}
		}
		store = pg
	case config.BackendRedis:
		store, err = NewRedisStore(ctx, cfg.RedisURL, cfg.ServiceName)
	case config.BackendFirestore:
		store, err = NewFirestoreStore(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	default:
		return nil, fmt.Errorf("docstore: unknown backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Document store opened", slog.String("backend", cfg.StoreBackend))
	return Instrument(store, cfg.StoreBackend, logger), nil
}
