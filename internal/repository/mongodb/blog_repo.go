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

type blogRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewBlogRepository(db *mongo.Database, timeout time.Duration) domain.BlogRepository {
	return &blogRepo{coll: db.Collection(database.BlogPostsCollection), timeout: timeout}
}

var newestFirst = bson.D{{Key: "publish_date", Value: -1}}

func (r *blogRepo) Fetch(ctx context.Context, publishedOnly bool, limit, skip int) ([]domain.BlogPost, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["is_published"] = true
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	return r.find(ctx, filter, opts)
}

func (r *blogRepo) FetchByTag(ctx context.Context, tag string, limit int) ([]domain.BlogPost, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	// equality against an array field matches any element
	filter := bson.M{"tags": tag, "is_published": true}
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))

	return r.find(ctx, filter, opts)
}

func (r *blogRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.BlogPost, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	posts := []domain.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepo) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var post domain.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, findOneError(err)
	}
	return &post, nil
}

func (r *blogRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, post)
	return insertError(res, err)
}

func (r *blogRepo) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, domain.ErrNotFound
	}
	return res.ModifiedCount, nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountTags counts tag occurrences across published posts, most used first.
// Ties are broken alphabetically by tag.
func (r *blogRepo) CountTags(ctx context.Context) ([]domain.TagCount, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "is_published", Value: true}}}},
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tags"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	tags := []domain.TagCount{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *blogRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
