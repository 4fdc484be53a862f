package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

const collectionSessionEvents = "session_events"

// AuditRepository persists the session audit trail.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record inserts one sign-in or sign-out entry.
func (r *AuditRepository) Record(ctx context.Context, event *domain.SessionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.Collection(collectionSessionEvents).InsertOne(ctx, event)
	return err
}
