package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healing-center/counseling-api/internal/service"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
	"github.com/healing-center/counseling-api/pkg/response"
)

// ReviewHandler wires HTTP endpoints to the review service.
type ReviewHandler struct {
	service *service.ReviewService
}

// NewReviewHandler creates a new handler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// ListPublic godoc
// @Summary List reviews
// @Description List approved, active reviews; optionally for a single counselor
// @Tags Reviews
// @Produce json
// @Param counselor_id query string false "Filter by counselor"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /reviews [get]
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	req := service.ReviewListRequest{
		CounselorID:  c.Query("counselor_id"),
		ApprovedOnly: true,
		Limit:        queryInt(c, "limit", 0),
		Offset:       queryInt(c, "offset", 0),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "reviews", emptyIfNil(rows), total)
}

// ListAdmin godoc
// @Summary List all reviews
// @Description List reviews including unapproved and inactive ones
// @Tags Reviews
// @Produce json
// @Param counselor_id query string false "Filter by counselor"
// @Param approved query bool false "Filter by moderation state"
// @Param active query bool false "Filter by active flag"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /admin/reviews [get]
func (h *ReviewHandler) ListAdmin(c *gin.Context) {
	req := service.ReviewListRequest{
		CounselorID: c.Query("counselor_id"),
		Approved:    queryBool(c, "approved"),
		Active:      queryBool(c, "active"),
		Limit:       queryInt(c, "limit", 0),
		Offset:      queryInt(c, "offset", 0),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "reviews", emptyIfNil(rows), total)
}

// Get godoc
// @Summary Get review
// @Description Fetch a single review and bump its view counter
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, review)
}

// Create godoc
// @Summary Submit review
// @Description Submit a review; it waits for moderation before going public
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body service.CreateReviewRequest true "Review payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req service.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "review submitted", created.ID)
}

// Update godoc
// @Summary Update review
// @Description Replace a review's fields; counselor aggregates follow automatically
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param payload body service.UpdateReviewRequest true "Update payload"
// @Success 200 {object} models.Review
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	var req service.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Approve godoc
// @Summary Approve review
// @Description Mark a review publicly visible
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id}/approve [patch]
func (h *ReviewHandler) Approve(c *gin.Context) {
	approved, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, approved)
}

// Delete godoc
// @Summary Delete review
// @Description Remove a review; the counselor's rating aggregate is refreshed
// @Tags Reviews
// @Param id path string true "Review ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
