package mongodb

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type contactRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewContactRepository(db *mongo.Database, timeout time.Duration) domain.ContactRepository {
	return &contactRepo{coll: db.Collection(database.ContactSubmissionsCollection), timeout: timeout}
}

func (r *contactRepo) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, submission)
	return insertError(res, err)
}

func (r *contactRepo) Fetch(ctx context.Context, limit, skip int) ([]domain.ContactSubmission, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	submissions := []domain.ContactSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var submission domain.ContactSubmission
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&submission); err != nil {
		return nil, findOneError(err)
	}
	return &submission, nil
}

func (r *contactRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
