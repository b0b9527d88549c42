// Package mongo contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"github.com/aimericdrk/ai-fall-guard/config"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params holds dependencies for the database handle, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the client and returns the configured database. The connection is verified and the
// indexes are ensured when the application starts.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration is missing")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMonitor(newCommandMonitor(params.Logger)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if params.Config.Env.ServiceName != "" {
		clientOpts.SetAppName(params.Config.Env.ServiceName)
	}

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mongo client")
	}

	db := client.Database(cfg.Database)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(startCtx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "mongo ping failed")
			}
			if err := EnsureIndexes(startCtx, db); err != nil {
				return err
			}
			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// newCommandMonitor logs failed commands. Successful commands are not logged.
func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.DebugContext(ctx, "Mongo command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("duration", evt.Duration),
				slog.Any("failure", evt.Failure),
			)
		},
	}
}

// HealthChecker reports whether the database is reachable.
type HealthChecker struct {
	db *mongo.Database
}

// NewHealthChecker wraps the database handle for health probes.
func NewHealthChecker(db *mongo.Database) *HealthChecker {
	return &HealthChecker{db: db}
}

// Ping checks the primary is reachable.
func (h *HealthChecker) Ping(ctx context.Context) error {
	return errors.WithStack(h.db.Client().Ping(ctx, readpref.Primary()))
}
