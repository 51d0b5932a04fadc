package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. submitLimit guards the public submit endpoint.
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, submitLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	contact := api.Group("/contact")
	{
		if submitLimit != nil {
			contact.POST("/submit", submitLimit, handler.Submit)
		} else {
			contact.POST("/submit", handler.Submit)
		}
		contact.GET("/submissions", handler.List)
		contact.GET("/submissions/:id", handler.Get)
		contact.PUT("/submissions/:id/status", handler.UpdateStatus)
	}
}

// Submit godoc
// @Summary      Submit Contact Form
// @Description  Stores the message and notifies the site owner by email. Email delivery never fails the request.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmissionCreate  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactSubmission
// @Failure      400      {object}  response.ErrorResponse
// @Failure      429      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact/submit [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactSubmissionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	submission, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, submission)
}

// List godoc
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Param        limit  query     int  false  "Page size"  default(50)
// @Param        skip   query     int  false  "Offset"     default(0)
// @Success      200    {array}   domain.ContactSubmission
// @Failure      400    {object}  response.ErrorResponse
// @Router       /contact/submissions [get]
func (h *ContactHandler) List(c *gin.Context) {
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

	submissions, err := h.contactUC.ListSubmissions(c.Request.Context(), limit, skip)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, submissions)
}

// Get godoc
// @Summary      Get a contact submission
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  domain.ContactSubmission
// @Failure      404  {object}  response.ErrorResponse
// @Router       /contact/submissions/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	submission, err := h.contactUC.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, submission)
}

// UpdateStatus godoc
// @Summary      Update submission status
// @Tags         contact
// @Produce      json
// @Param        id      path      string  true  "Submission ID"
// @Param        status  query     string  true  "New status"
// @Success      200     {object}  response.MessageResponse
// @Failure      400     {object}  response.ErrorResponse
// @Failure      404     {object}  response.ErrorResponse
// @Router       /contact/submissions/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	if err := h.contactUC.UpdateStatus(c.Request.Context(), c.Param("id"), c.Query("status")); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Status updated successfully")
}
