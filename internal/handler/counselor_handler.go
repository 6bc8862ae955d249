package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healing-center/counseling-api/internal/service"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
	"github.com/healing-center/counseling-api/pkg/response"
)

// CounselorHandler wires HTTP endpoints to the counselor service.
type CounselorHandler struct {
	service *service.CounselorService
}

// NewCounselorHandler creates a new handler.
func NewCounselorHandler(svc *service.CounselorService) *CounselorHandler {
	return &CounselorHandler{service: svc}
}

// ListPublic godoc
// @Summary List counselors
// @Description List active counselor profiles for the public site
// @Tags Counselors
// @Produce json
// @Param online query bool false "Filter by online availability"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /counselors [get]
func (h *CounselorHandler) ListPublic(c *gin.Context) {
	req := service.CounselorListRequest{
		ActiveOnly: true,
		Online:     queryBool(c, "online"),
		Limit:      queryInt(c, "limit", 0),
		Offset:     queryInt(c, "offset", 0),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "counselors", emptyIfNil(rows), total)
}

// ListAdmin godoc
// @Summary List all counselors
// @Description List counselor profiles including inactive ones
// @Tags Counselors
// @Produce json
// @Param online query bool false "Filter by online availability"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /admin/counselors [get]
func (h *CounselorHandler) ListAdmin(c *gin.Context) {
	req := service.CounselorListRequest{
		Online: queryBool(c, "online"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "counselors", emptyIfNil(rows), total)
}

// Get godoc
// @Summary Get counselor
// @Description Fetch a counselor profile with its rating aggregate
// @Tags Counselors
// @Produce json
// @Param id path string true "Counselor ID"
// @Success 200 {object} models.Counselor
// @Failure 404 {object} map[string]string
// @Router /counselors/{id} [get]
func (h *CounselorHandler) Get(c *gin.Context) {
	counselor, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, counselor)
}

// Create godoc
// @Summary Create counselor
// @Description Register a new counselor profile
// @Tags Counselors
// @Accept json
// @Produce json
// @Param payload body service.CreateCounselorRequest true "Counselor payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/counselors [post]
func (h *CounselorHandler) Create(c *gin.Context) {
	var req service.CreateCounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "counselor created", created.ID)
}

// Update godoc
// @Summary Update counselor
// @Description Update profile fields; rating and review counts are derived and ignored
// @Tags Counselors
// @Accept json
// @Produce json
// @Param id path string true "Counselor ID"
// @Param payload body service.UpdateCounselorRequest true "Update payload"
// @Success 200 {object} models.Counselor
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/counselors/{id} [put]
func (h *CounselorHandler) Update(c *gin.Context) {
	var req service.UpdateCounselorRequest
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

// ToggleActive godoc
// @Summary Toggle counselor visibility
// @Description Flip the is_active flag
// @Tags Counselors
// @Produce json
// @Param id path string true "Counselor ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /admin/counselors/{id}/toggle [patch]
func (h *CounselorHandler) ToggleActive(c *gin.Context) {
	active, err := h.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"is_active": active})
}

// Delete godoc
// @Summary Delete counselor
// @Description Remove a counselor profile; profiles with reviews are protected
// @Tags Counselors
// @Param id path string true "Counselor ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/counselors/{id} [delete]
func (h *CounselorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
