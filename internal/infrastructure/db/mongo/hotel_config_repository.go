package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

const (
	collectionHotelConfig = "hotel_configuration"
	// collectionLegacyConfig held the settings in older deployments. It is
	// read when the canonical document is missing and never written.
	collectionLegacyConfig = "configuration"
)

// HotelConfigRepository implements ports.HotelConfigRepository.
type HotelConfigRepository struct {
	col    *mongo.Collection
	legacy *mongo.Collection
}

func NewHotelConfigRepository(db *mongo.Database) *HotelConfigRepository {
	return &HotelConfigRepository{
		col:    db.Collection(collectionHotelConfig),
		legacy: db.Collection(collectionLegacyConfig),
	}
}

func (r *HotelConfigRepository) Get(ctx context.Context) (*domain.HotelConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cfg, err := r.read(ctx, r.col)
	if errors.Is(err, domain.ErrNotFound) {
		return r.read(ctx, r.legacy)
	}
	return cfg, err
}

// Save upserts the single configuration document.
func (r *HotelConfigRepository) Save(ctx context.Context, cfg *domain.HotelConfig) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": domain.HotelConfigID}, cfg, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save hotel configuration: %w", err)
	}
	return nil
}

func (r *HotelConfigRepository) read(ctx context.Context, col *mongo.Collection) (*domain.HotelConfig, error) {
	var cfg domain.HotelConfig
	if err := col.FindOne(ctx, bson.M{"_id": domain.HotelConfigID}).Decode(&cfg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", col.Name(), err)
	}
	return &cfg, nil
}
