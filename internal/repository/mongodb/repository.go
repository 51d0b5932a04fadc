package mongodb

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

// withTimeout bounds a single store round-trip; zero means no extra deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// insertError translates driver insert failures into domain errors.
func insertError(res *mongo.InsertOneResult, err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrDuplicateID
	case errors.Is(err, mongo.ErrUnacknowledgedWrite):
		return domain.ErrNotPersisted
	case err != nil:
		return err
	case res == nil || res.InsertedID == nil:
		return domain.ErrNotPersisted
	}
	return nil
}

func findOneError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return err
}
