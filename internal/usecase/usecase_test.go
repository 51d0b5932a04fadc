package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Fetch(ctx context.Context, publishedOnly bool, limit, skip int) ([]domain.BlogPost, error) {
	args := m.Called(ctx, publishedOnly, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) FetchByTag(ctx context.Context, tag string, limit int) ([]domain.BlogPost, error) {
	args := m.Called(ctx, tag, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepo) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepo) CountTags(ctx context.Context) ([]domain.TagCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TagCount), args.Error(1)
}

func (m *MockBlogRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockContactRepo) Fetch(ctx context.Context, limit, skip int) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactSubmission), args.Error(1)
}

func (m *MockContactRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockNotifier struct {
	mock.Mock
	mu    sync.Mutex
	calls []string
}

func (m *MockNotifier) NotifyContactSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	m.mu.Lock()
	m.calls = append(m.calls, sub.ID)
	m.mu.Unlock()
	return m.Called(ctx, sub).Error(0)
}

func validCreate() *domain.BlogPostCreate {
	return &domain.BlogPostCreate{
		Title:    domain.Ptr("Go and Mongo"),
		Excerpt:  domain.Ptr("Short"),
		Content:  domain.Ptr("<p>Long</p>"),
		Tags:     []string{"Go"},
		ReadTime: domain.Ptr("4 min read"),
		Image:    domain.Ptr("https://example.com/i.png"),
	}
}

func newBlogUC(repo *MockBlogRepo) domain.BlogUsecase {
	return usecase.NewBlogUsecase(repo, validation.NewValidator(), "Aagam Shah", 0)
}

func TestBlogCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject missing required fields", func(t *testing.T) {
		repo := new(MockBlogRepo)
		in := validCreate()
		in.Title = nil
		in.Image = nil

		_, err := newBlogUC(repo).CreatePost(ctx, in)
		require.True(t, apperror.Is(err, apperror.KindValidation))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{"Title: field required", "Image: field required"}, appErr.Details)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should accept empty strings for required fields", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		in := validCreate()
		in.Title = domain.Ptr("")
		in.Image = domain.Ptr("")

		post, err := newBlogUC(repo).CreatePost(ctx, in)
		require.NoError(t, err)
		assert.Empty(t, post.Title)
		assert.Empty(t, post.Image)
		repo.AssertExpectations(t)
	})

	t.Run("Should assign server fields and keep client fields", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		post, err := newBlogUC(repo).CreatePost(ctx, validCreate())
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "Aagam Shah", post.Author)
		assert.Equal(t, "Go and Mongo", post.Title)
		assert.Equal(t, []string{"Go"}, post.Tags)
		assert.True(t, post.IsPublished)
		assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	})

	t.Run("Should regenerate id on collision", func(t *testing.T) {
		repo := new(MockBlogRepo)
		var ids []string
		repo.On("Create", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(domain.ErrDuplicateID).Once().Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(1).(*domain.BlogPost).ID)
		})
		repo.On("Create", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil).Once().Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(1).(*domain.BlogPost).ID)
		})

		post, err := newBlogUC(repo).CreatePost(ctx, validCreate())
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
		assert.Equal(t, ids[1], post.ID)
	})

	t.Run("Should report unacknowledged writes as persistence errors", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrNotPersisted)

		_, err := newBlogUC(repo).CreatePost(ctx, validCreate())
		assert.True(t, apperror.Is(err, apperror.KindPersistence))
	})

	t.Run("Should pass driver errors through verbatim", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("server selection timeout"))

		_, err := newBlogUC(repo).CreatePost(ctx, validCreate())
		assert.True(t, apperror.Is(err, apperror.KindUnexpected))
		assert.Contains(t, err.Error(), "server selection timeout")
	})
}

func TestBlogUpdate(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.BlogPost{ID: "p1", Title: "Old", Excerpt: "E", CreatedAt: created, UpdatedAt: created}

	t.Run("Should return NotFound for unknown id", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

		title := "X"
		_, err := newBlogUC(repo).UpdatePost(ctx, "missing", &domain.BlogPostUpdate{Title: &title})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should set only supplied fields plus updated_at", func(t *testing.T) {
		repo := new(MockBlogRepo)
		updated := *existing
		updated.Title = "X"
		updated.UpdatedAt = created.Add(time.Hour)

		repo.On("GetByID", ctx, "p1").Return(existing, nil).Once()
		repo.On("Update", ctx, "p1", mock.MatchedBy(func(f map[string]any) bool {
			ts, ok := f["updated_at"].(time.Time)
			return len(f) == 2 && f["title"] == "X" && ok && ts.After(created)
		})).Return(int64(1), nil)
		repo.On("GetByID", ctx, "p1").Return(&updated, nil).Once()

		title := "X"
		post, err := newBlogUC(repo).UpdatePost(ctx, "p1", &domain.BlogPostUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "X", post.Title)
		assert.Equal(t, "E", post.Excerpt)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail with persistence error when nothing changed", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("GetByID", ctx, "p1").Return(existing, nil)
		repo.On("Update", ctx, "p1", mock.Anything).Return(int64(0), nil)

		_, err := newBlogUC(repo).UpdatePost(ctx, "p1", &domain.BlogPostUpdate{})
		assert.True(t, apperror.Is(err, apperror.KindPersistence))
	})

	t.Run("Should keep updated_at ahead of a future stored value", func(t *testing.T) {
		future := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)
		ahead := &domain.BlogPost{ID: "p2", CreatedAt: future, UpdatedAt: future}

		repo := new(MockBlogRepo)
		repo.On("GetByID", ctx, "p2").Return(ahead, nil)
		repo.On("Update", ctx, "p2", mock.MatchedBy(func(f map[string]any) bool {
			return f["updated_at"].(time.Time).After(future)
		})).Return(int64(1), nil)

		_, err := newBlogUC(repo).UpdatePost(ctx, "p2", &domain.BlogPostUpdate{})
		assert.NoError(t, err)
	})
}

func TestBlogDeleteAndGet(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepo)
	repo.On("Delete", ctx, "gone").Return(domain.ErrNotFound)
	repo.On("Delete", ctx, "p1").Return(nil)
	repo.On("GetByID", ctx, "p1").Return(nil, domain.ErrNotFound)

	uc := newBlogUC(repo)

	err := uc.DeletePost(ctx, "gone")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	require.NoError(t, uc.DeletePost(ctx, "p1"))
	_, err = uc.GetPost(ctx, "p1")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "Blog post not found", err.Error())
}

func TestBlogListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply default limit and published filter", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Fetch", ctx, true, 20, 0).Return([]domain.BlogPost{}, nil)

		posts, err := newBlogUC(repo).ListPosts(ctx, domain.BlogListQuery{PublishedOnly: true})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject negative skip", func(t *testing.T) {
		repo := new(MockBlogRepo)
		_, err := newBlogUC(repo).ListPosts(ctx, domain.BlogListQuery{Skip: -1})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("Should cap limit when configured", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Fetch", ctx, false, 50, 5).Return([]domain.BlogPost{}, nil)

		uc := usecase.NewBlogUsecase(repo, validation.NewValidator(), "", 50)
		_, err := uc.ListPosts(ctx, domain.BlogListQuery{Limit: 1000, Skip: 5})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should default tag limit to ten", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("FetchByTag", ctx, "Go", 10).Return([]domain.BlogPost{}, nil)

		_, err := newBlogUC(repo).ListPostsByTag(ctx, "Go", 0)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should pass tag counts through", func(t *testing.T) {
		repo := new(MockBlogRepo)
		want := []domain.TagCount{{Tag: "A", Count: 2}, {Tag: "B", Count: 2}}
		repo.On("CountTags", ctx).Return(want, nil)

		got, err := newBlogUC(repo).ListTags(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestBlogSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Should insert bundled posts into empty collection", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		res, err := newBlogUC(repo).Seed(ctx)
		require.NoError(t, err)
		assert.True(t, res.Seeded)
		assert.Equal(t, int64(3), res.Count)
		assert.Equal(t, "Successfully seeded 3 blog posts", res.Message)
		repo.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("Should be a no-op when posts exist", func(t *testing.T) {
		repo := new(MockBlogRepo)
		repo.On("Count", ctx).Return(int64(3), nil)

		res, err := newBlogUC(repo).Seed(ctx)
		require.NoError(t, err)
		assert.False(t, res.Seeded)
		assert.Equal(t, int64(3), res.Count)
		assert.Equal(t, "Database already has 3 blog posts", res.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func validContact() *domain.ContactSubmissionCreate {
	return &domain.ContactSubmissionCreate{
		Name:    domain.Ptr("Jane"),
		Email:   domain.Ptr("jane@example.com"),
		Subject: domain.Ptr("Hello"),
		Message: domain.Ptr("Let's work together"),
	}
}

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist even when notification fails", func(t *testing.T) {
		repo := new(MockContactRepo)
		notifier := new(MockNotifier)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.ContactSubmission")).Return(nil)
		notifier.On("NotifyContactSubmission", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		dispatcher := usecase.NewNotificationDispatcher(notifier, time.Second)
		uc := usecase.NewContactUsecase(repo, dispatcher, validation.NewValidator(), 0)

		sub, err := uc.Submit(ctx, validContact())
		require.NoError(t, err)
		assert.NotEmpty(t, sub.ID)
		assert.False(t, sub.SubmittedAt.IsZero())
		assert.Equal(t, domain.StatusReceived, sub.Status)

		require.NoError(t, dispatcher.Wait(context.Background()))
		assert.Equal(t, []string{sub.ID}, notifier.calls)
	})

	t.Run("Should not notify when the write is not acknowledged", func(t *testing.T) {
		repo := new(MockContactRepo)
		notifier := new(MockNotifier)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrNotPersisted)

		dispatcher := usecase.NewNotificationDispatcher(notifier, time.Second)
		uc := usecase.NewContactUsecase(repo, dispatcher, validation.NewValidator(), 0)

		_, err := uc.Submit(ctx, validContact())
		assert.True(t, apperror.Is(err, apperror.KindPersistence))

		require.NoError(t, dispatcher.Wait(context.Background()))
		notifier.AssertNotCalled(t, "NotifyContactSubmission", mock.Anything, mock.Anything)
	})

	t.Run("Should store the email as sent", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Create", ctx, mock.MatchedBy(func(sub *domain.ContactSubmission) bool {
			return sub.Email == "jane at example" && sub.Name == ""
		})).Return(nil)
		uc := usecase.NewContactUsecase(repo, nil, validation.NewValidator(), 0)

		in := validContact()
		in.Email = domain.Ptr("jane at example")
		in.Name = domain.Ptr("")
		_, err := uc.Submit(ctx, in)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject a missing email", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, nil, validation.NewValidator(), 0)

		in := validContact()
		in.Email = nil
		_, err := uc.Submit(ctx, in)
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestContactStatusAndListing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepo)
	repo.On("UpdateStatus", ctx, "missing", "read").Return(domain.ErrNotFound)
	repo.On("UpdateStatus", ctx, "s1", " In Review ").Return(nil)
	repo.On("Fetch", ctx, 50, 0).Return([]domain.ContactSubmission{}, nil)

	uc := usecase.NewContactUsecase(repo, nil, validation.NewValidator(), 0)

	err := uc.UpdateStatus(ctx, "missing", "read")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	// whitespace and case are kept
	assert.NoError(t, uc.UpdateStatus(ctx, "s1", " In Review "))

	err = uc.UpdateStatus(ctx, "s1", "   ")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.ListSubmissions(ctx, 0, 0)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	status, ok := usecase.NewHealthUsecase(fakePinger{err: errors.New("down")}, time.Second).Check(ctx, false)
	assert.True(t, ok)
	assert.Equal(t, "connected", status["database"])

	status, ok = usecase.NewHealthUsecase(fakePinger{err: errors.New("down")}, time.Second).Check(ctx, true)
	assert.False(t, ok)
	assert.Equal(t, "disconnected", status["database"])

	info := usecase.NewHealthUsecase(nil, 0).Info()
	assert.Equal(t, "active", info["status"])
	assert.Equal(t, usecase.APIVersion, info["version"])
}
