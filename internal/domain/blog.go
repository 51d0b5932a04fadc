package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultAuthor is used when no author is configured.
const DefaultAuthor = "Aagam Shah"

// BlogPost is stored one document per post in the blog_posts collection.
type BlogPost struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	Content     string    `json:"content" bson:"content"`
	Author      string    `json:"author" bson:"author"`
	PublishDate time.Time `json:"publish_date" bson:"publish_date"`
	Tags        []string  `json:"tags" bson:"tags"`
	ReadTime    string    `json:"read_time" bson:"read_time"`
	Image       string    `json:"image" bson:"image"`
	IsPublished bool      `json:"is_published" bson:"is_published"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// BlogPostCreate is the caller-supplied part of a new post.
// Required fields must be present; an empty string is a valid value.
type BlogPostCreate struct {
	Title       *string  `json:"title" binding:"required" validate:"required"`
	Excerpt     *string  `json:"excerpt" binding:"required" validate:"required"`
	Content     *string  `json:"content" binding:"required" validate:"required"`
	Tags        []string `json:"tags"`
	ReadTime    *string  `json:"read_time" binding:"required" validate:"required"`
	Image       *string  `json:"image" binding:"required" validate:"required"`
	IsPublished *bool    `json:"is_published"`
}

// BlogPostUpdate carries a partial update. A nil field was not supplied.
type BlogPostUpdate struct {
	Title       *string   `json:"title"`
	Excerpt     *string   `json:"excerpt"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	ReadTime    *string   `json:"read_time"`
	Image       *string   `json:"image"`
	IsPublished *bool     `json:"is_published"`
}

// TagCount is one row of the tag aggregation.
type TagCount struct {
	Tag   string `json:"tag" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// SeedResult reports what the seed operation did.
type SeedResult struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
	Seeded  bool   `json:"seeded"`
}

// BlogListQuery selects posts for the list endpoint.
type BlogListQuery struct {
	PublishedOnly bool
	Limit         int
	Skip          int
}

// NewBlogPost builds a full post from a create payload, assigning id, author and timestamps.
func NewBlogPost(in BlogPostCreate, author string, now time.Time) *BlogPost {
	if author == "" {
		author = DefaultAuthor
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	now = StoreTime(now)

	return &BlogPost{
		ID:          uuid.NewString(),
		Title:       deref(in.Title),
		Excerpt:     deref(in.Excerpt),
		Content:     deref(in.Content),
		Author:      author,
		PublishDate: now,
		Tags:        tags,
		ReadTime:    deref(in.ReadTime),
		Image:       deref(in.Image),
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// StoreTime normalizes a timestamp to what the document store keeps: UTC, millisecond precision.
func StoreTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Fields returns the stored field names and values of every supplied field.
// id, author and the timestamps are never part of an update payload.
func (u BlogPostUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Excerpt != nil {
		fields["excerpt"] = *u.Excerpt
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Tags != nil {
		tags := *u.Tags
		if tags == nil {
			tags = []string{}
		}
		fields["tags"] = tags
	}
	if u.ReadTime != nil {
		fields["read_time"] = *u.ReadTime
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.IsPublished != nil {
		fields["is_published"] = *u.IsPublished
	}
	return fields
}

type BlogRepository interface {
	Fetch(ctx context.Context, publishedOnly bool, limit, skip int) ([]BlogPost, error)
	FetchByTag(ctx context.Context, tag string, limit int) ([]BlogPost, error)
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
	// Update applies fields with $set and reports how many documents changed.
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) error
	CountTags(ctx context.Context) ([]TagCount, error)
	Count(ctx context.Context) (int64, error)
}

type BlogUsecase interface {
	ListPosts(ctx context.Context, q BlogListQuery) ([]BlogPost, error)
	GetPost(ctx context.Context, id string) (*BlogPost, error)
	CreatePost(ctx context.Context, in *BlogPostCreate) (*BlogPost, error)
	UpdatePost(ctx context.Context, id string, in *BlogPostUpdate) (*BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	ListPostsByTag(ctx context.Context, tag string, limit int) ([]BlogPost, error)
	ListTags(ctx context.Context) ([]TagCount, error)
	Seed(ctx context.Context) (*SeedResult, error)
}
