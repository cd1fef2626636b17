// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"stockroom/config"
	"stockroom/internal/domain/lifecycle"
	"stockroom/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	connectTimeout := params.Config.Mongo.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = lifecycle.DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			pingCtx, cancelPing := context.WithTimeout(startCtx, connectTimeout)
			defer cancelPing()

			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.Wrap(client.Disconnect(stopCtx), "failed to disconnect MongoDB")
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
