package v1

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

func NewBlogHandler(api *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	blog := api.Group("/blog")
	{
		blog.GET("/posts", handler.List)
		blog.GET("/posts/:id", handler.Get)
		blog.POST("/posts", handler.Create)
		blog.PUT("/posts/:id", handler.Update)
		blog.DELETE("/posts/:id", handler.Delete)
		blog.GET("/posts/tag/:tag", handler.ListByTag)
		blog.GET("/tags", handler.Tags)
		blog.POST("/seed", handler.Seed)
	}
}

// List godoc
// @Summary      List blog posts
// @Description  Posts ordered by publish date, newest first
// @Tags         blog
// @Produce      json
// @Param        published_only  query     bool  false  "Only published posts"  default(true)
// @Param        limit           query     int   false  "Page size"             default(20)
// @Param        skip            query     int   false  "Offset"                default(0)
// @Success      200             {array}   domain.BlogPost
// @Failure      400             {object}  response.ErrorResponse
// @Failure      500             {object}  response.ErrorResponse
// @Router       /blog/posts [get]
func (h *BlogHandler) List(c *gin.Context) {
	publishedOnly, err := queryBool(c, "published_only", true)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		c.Error(err)
		return
	}
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		c.Error(err)
		return
	}

	posts, err := h.blogUC.ListPosts(c.Request.Context(), domain.BlogListQuery{
		PublishedOnly: publishedOnly,
		Limit:         limit,
		Skip:          skip,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// Get godoc
// @Summary      Get a blog post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  response.ErrorResponse
// @Router       /blog/posts/{id} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blogUC.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, post)
}

// Create godoc
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        post  body      domain.BlogPostCreate  true  "Blog post"
// @Success      200   {object}  domain.BlogPost
// @Failure      400   {object}  response.ErrorResponse
// @Failure      500   {object}  response.ErrorResponse
// @Router       /blog/posts [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req domain.BlogPostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	post, err := h.blogUC.CreatePost(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, post)
}

// Update godoc
// @Summary      Update a blog post
// @Description  Only the fields present in the body are changed
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Post ID"
// @Param        post  body      domain.BlogPostUpdate  true  "Fields to change"
// @Success      200   {object}  domain.BlogPost
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.ErrorResponse
// @Failure      500   {object}  response.ErrorResponse
// @Router       /blog/posts/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var req domain.BlogPostUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	post, err := h.blogUC.UpdatePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, post)
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /blog/posts/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogUC.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Blog post deleted successfully")
}

// ListByTag godoc
// @Summary      List published posts with a tag
// @Tags         blog
// @Produce      json
// @Param        tag    path      string  true   "Tag"
// @Param        limit  query     int     false  "Page size"  default(10)
// @Success      200    {array}   domain.BlogPost
// @Failure      400    {object}  response.ErrorResponse
// @Router       /blog/posts/tag/{tag} [get]
func (h *BlogHandler) ListByTag(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		c.Error(err)
		return
	}

	posts, err := h.blogUC.ListPostsByTag(c.Request.Context(), c.Param("tag"), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// Tags godoc
// @Summary      Tag usage across published posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}   domain.TagCount
// @Failure      500  {object}  response.ErrorResponse
// @Router       /blog/tags [get]
func (h *BlogHandler) Tags(c *gin.Context) {
	tags, err := h.blogUC.ListTags(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, tags)
}

// Seed godoc
// @Summary      Seed the initial blog posts
// @Description  No-op when any post already exists
// @Tags         blog
// @Produce      json
// @Success      200  {object}  domain.SeedResult
// @Failure      500  {object}  response.ErrorResponse
// @Router       /blog/seed [post]
func (h *BlogHandler) Seed(c *gin.Context) {
	result, err := h.blogUC.Seed(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("Invalid query parameter", validation.FieldLabel(key)+": must be an integer")
	}
	return n, nil
}

func queryBool(c *gin.Context, key string, def bool) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperror.Validation("Invalid query parameter", validation.FieldLabel(key)+": must be a boolean")
	}
	return b, nil
}

func bindError(err error) error {
	return apperror.Validation("Invalid request body", validation.FormatValidationErrors(err)...)
}
