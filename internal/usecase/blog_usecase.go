package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// maxIDAttempts bounds id regeneration when a generated id collides.
const maxIDAttempts = 3

type blogUsecase struct {
	blogRepo domain.BlogRepository
	validate *validator.Validate
	author   string
	maxLimit int
	now      func() time.Time
}

func NewBlogUsecase(blogRepo domain.BlogRepository, validate *validator.Validate, author string, maxLimit int) domain.BlogUsecase {
	return &blogUsecase{
		blogRepo: blogRepo,
		validate: validate,
		author:   author,
		maxLimit: maxLimit,
		now:      time.Now,
	}
}

func (u *blogUsecase) ListPosts(ctx context.Context, q domain.BlogListQuery) ([]domain.BlogPost, error) {
	limit, skip, err := normalizePage(q.Limit, q.Skip, defaultBlogLimit, u.maxLimit)
	if err != nil {
		return nil, err
	}

	posts, err := u.blogRepo.Fetch(ctx, q.PublishedOnly, limit, skip)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error fetching blog posts: %v", err), err)
	}
	return posts, nil
}

func (u *blogUsecase) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := u.blogRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Blog post not found")
	}
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error fetching blog post: %v", err), err)
	}
	return post, nil
}

func (u *blogUsecase) CreatePost(ctx context.Context, in *domain.BlogPostCreate) (*domain.BlogPost, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	post, err := u.insert(ctx, *in)
	if errors.Is(err, domain.ErrNotPersisted) {
		return nil, apperror.Persistence("Failed to create blog post", err)
	}
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error creating blog post: %v", err), err)
	}
	return post, nil
}

// insert builds and stores a post, regenerating the id on a collision.
func (u *blogUsecase) insert(ctx context.Context, in domain.BlogPostCreate) (*domain.BlogPost, error) {
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		post := domain.NewBlogPost(in, u.author, u.now())
		err = u.blogRepo.Create(ctx, post)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, domain.ErrDuplicateID) {
			return nil, err
		}
	}
	return nil, err
}

func (u *blogUsecase) UpdatePost(ctx context.Context, id string, in *domain.BlogPostUpdate) (*domain.BlogPost, error) {
	existing, err := u.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := in.Fields()
	fields["updated_at"] = nextUpdatedAt(existing, u.now())

	modified, err := u.blogRepo.Update(ctx, id, fields)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Blog post not found")
	}
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error updating blog post: %v", err), err)
	}
	if modified == 0 {
		return nil, apperror.Persistence("Failed to update blog post", domain.ErrNotPersisted)
	}

	return u.GetPost(ctx, id)
}

// nextUpdatedAt keeps updated_at strictly increasing at store precision.
func nextUpdatedAt(existing *domain.BlogPost, now time.Time) time.Time {
	ts := domain.StoreTime(now)
	if !ts.After(existing.UpdatedAt) {
		ts = existing.UpdatedAt.Add(time.Millisecond)
	}
	return ts
}

func (u *blogUsecase) DeletePost(ctx context.Context, id string) error {
	err := u.blogRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Blog post not found")
	}
	if err != nil {
		return apperror.Unexpected(fmt.Sprintf("Error deleting blog post: %v", err), err)
	}
	return nil
}

func (u *blogUsecase) ListPostsByTag(ctx context.Context, tag string, limit int) ([]domain.BlogPost, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, apperror.Validation("tag is required")
	}
	limit, _, err := normalizePage(limit, 0, defaultTagLimit, u.maxLimit)
	if err != nil {
		return nil, err
	}

	posts, err := u.blogRepo.FetchByTag(ctx, tag, limit)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error fetching posts by tag: %v", err), err)
	}
	return posts, nil
}

func (u *blogUsecase) ListTags(ctx context.Context) ([]domain.TagCount, error) {
	tags, err := u.blogRepo.CountTags(ctx)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error fetching tags: %v", err), err)
	}
	return tags, nil
}

// Seed inserts the bundled posts into an empty collection; a populated one is left alone.
func (u *blogUsecase) Seed(ctx context.Context) (*domain.SeedResult, error) {
	existing, err := u.blogRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Sprintf("Error seeding blog posts: %v", err), err)
	}
	if existing > 0 {
		return &domain.SeedResult{
			Message: fmt.Sprintf("Database already has %d blog posts", existing),
			Count:   existing,
		}, nil
	}

	posts := seedPosts()
	for _, in := range posts {
		if _, err := u.insert(ctx, in); err != nil {
			return nil, apperror.Unexpected(fmt.Sprintf("Error seeding blog posts: %v", err), err)
		}
	}

	return &domain.SeedResult{
		Message: fmt.Sprintf("Successfully seeded %d blog posts", len(posts)),
		Count:   int64(len(posts)),
		Seeded:  true,
	}, nil
}

func validateStruct(v *validator.Validate, s any) error {
	if v == nil {
		return nil
	}
	if err := v.Struct(s); err != nil {
		return apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...)
	}
	return nil
}
