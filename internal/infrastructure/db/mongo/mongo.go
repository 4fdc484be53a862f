package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// defaultTimeout bounds every single-document operation.
const defaultTimeout = 10 * time.Second

// Options describes the property database. Change streams need a replica
// set, so the primary is always pinged before the store is handed out.
type Options struct {
	URI         string
	Database    string
	AppName     string
	MaxPoolSize uint64
	DialTimeout time.Duration
}

func (o Options) clientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(o.URI)
	if o.AppName != "" {
		opts.SetAppName(o.AppName)
	}
	if o.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(o.MaxPoolSize)
	}
	return opts
}

// Open connects and returns the client together with the hotel database.
func Open(ctx context.Context, o Options, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	if o.DialTimeout <= 0 {
		o.DialTimeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, o.DialTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, o.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("open hotel database: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("hotel database unreachable: %w", err)
	}

	log.Info().Str("database", o.Database).Uint64("max_pool", o.MaxPoolSize).Msg("mongodb connected")
	return client, client.Database(o.Database), nil
}

// Ping is used by the readiness probe.
func Ping(db *mongo.Database) func(context.Context) error {
	return func(ctx context.Context) error {
		return db.Client().Ping(ctx, readpref.Primary())
	}
}
