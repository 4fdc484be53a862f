package mongo

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// pollInterval paces live queries on deployments without change streams
// (standalone servers).
const pollInterval = 5 * time.Second

// collection implements ports.Repository for documents keyed by a string
// _id.
type collection[T any] struct {
	col  *mongo.Collection
	sort bson.D
	log  zerolog.Logger
}

func newCollection[T any](db *mongo.Database, name string, log zerolog.Logger) collection[T] {
	return collection[T]{
		col:  db.Collection(name),
		sort: bson.D{{Key: "_id", Value: 1}},
		log:  log.With().Str("collection", name).Logger(),
	}
}

func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	return c.find(ctx, bson.M{})
}

func (c *collection[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

func (c *collection[T]) Create(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", c.col.Name(), err)
	}
	return nil
}

// Update applies fields with $set.
func (c *collection[T]) Update(ctx context.Context, id string, fields ports.Fields) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("update %s: %w", c.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *collection[T]) Watch(ctx context.Context) (*live.Subscription[[]T], error) {
	return c.watchQuery(ctx, bson.M{})
}

func (c *collection[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.col.Find(ctx, filter, options.Find().SetSort(c.sort))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.col.Name(), err)
	}
	return out, nil
}

// watchQuery pushes the result of filter once, then again after every change
// to the collection. The change stream is opened before the first query so
// no write between the two is missed. Without change stream support the
// query is polled and only changed results are pushed.
func (c *collection[T]) watchQuery(ctx context.Context, filter bson.M) (*live.Subscription[[]T], error) {
	stream, err := c.col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		c.log.Warn().Err(err).Msg("change streams unavailable, polling")
		stream = nil
	}

	first, err := c.find(ctx, filter)
	if err != nil {
		if stream != nil {
			_ = stream.Close(context.Background())
		}
		return nil, err
	}

	return live.Start(ctx, func(ctx context.Context, out chan<- []T) {
		if !live.Send(ctx, out, first) {
			if stream != nil {
				_ = stream.Close(context.Background())
			}
			return
		}
		if stream != nil {
			c.followStream(ctx, stream, filter, out)
			return
		}
		c.poll(ctx, filter, first, out)
	}), nil
}

func (c *collection[T]) followStream(ctx context.Context, stream *mongo.ChangeStream, filter bson.M, out chan<- []T) {
	defer func() { _ = stream.Close(context.Background()) }()

	for stream.Next(ctx) {
		docs, err := c.find(ctx, filter)
		if err != nil {
			c.log.Error().Err(err).Msg("live query refresh failed")
			continue
		}
		if !live.Send(ctx, out, docs) {
			return
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		c.log.Error().Err(err).Msg("change stream closed")
	}
}

func (c *collection[T]) poll(ctx context.Context, filter bson.M, last []T, out chan<- []T) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			docs, err := c.find(ctx, filter)
			if err != nil {
				c.log.Error().Err(err).Msg("live query refresh failed")
				continue
			}
			if reflect.DeepEqual(docs, last) {
				continue
			}
			last = docs
			if !live.Send(ctx, out, docs) {
				return
			}
		}
	}
}
