package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/trezcool/darasa/core"
)

// Open establishes the process-wide store client. The returned client holds a
// single multiplexed connection pool shared by all repositories for the
// lifetime of the process; it is only torn down via Close at exit.
func Open(conf *core.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Database.URI))
	if err != nil {
		return nil, core.NewConnectionError(errors.Wrap(err, "connecting to store"))
	}
	if err = ping(client, conf); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// ping waits for the store to be ready. Waits 100ms longer between each attempt.
func ping(client *mongo.Client, conf *core.Config) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = Ping(context.Background(), client, conf)
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return core.NewConnectionError(errors.Wrap(err, "store ping timeout"))
	}
	return nil
}

// Ping checks store connectivity once.
func Ping(ctx context.Context, client *mongo.Client, conf *core.Config) error {
	ctx, cancel := context.WithTimeout(ctx, conf.Database.OpTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return core.NewConnectionError(errors.Wrap(err, "pinging store"))
	}
	return nil
}

// Close tears the shared client down; to be called once, at process exit.
func Close(client *mongo.Client, conf *core.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Database.ConnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return errors.Wrap(err, "disconnecting from store")
	}
	return nil
}
