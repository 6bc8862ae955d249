package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healing-center/counseling-api/internal/service"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
	"github.com/healing-center/counseling-api/pkg/response"
)

// NoticeHandler wires HTTP endpoints to the notice service.
type NoticeHandler struct {
	service *service.NoticeService
}

// NewNoticeHandler creates a new handler.
func NewNoticeHandler(svc *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: svc}
}

// ListPublic godoc
// @Summary List notices
// @Description List published, active notices; pinned first, then newest
// @Tags Notices
// @Produce json
// @Param type query string false "Filter by notice type"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /notices [get]
func (h *NoticeHandler) ListPublic(c *gin.Context) {
	req := service.NoticeListRequest{
		Type:          c.Query("type"),
		PublishedOnly: true,
		Limit:         queryInt(c, "limit", 0),
		Offset:        queryInt(c, "offset", 0),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "notices", emptyIfNil(rows), total)
}

// ListAdmin godoc
// @Summary List all notices
// @Description List notices in any status including drafts and archived
// @Tags Notices
// @Produce json
// @Param type query string false "Filter by notice type"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /admin/notices [get]
func (h *NoticeHandler) ListAdmin(c *gin.Context) {
	req := service.NoticeListRequest{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "notices", emptyIfNil(rows), total)
}

// Get godoc
// @Summary Get notice
// @Description Fetch a notice and bump its view counter
// @Tags Notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} models.Notice
// @Failure 404 {object} map[string]string
// @Router /notices/{id} [get]
func (h *NoticeHandler) Get(c *gin.Context) {
	notice, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notice)
}

// Create godoc
// @Summary Create notice
// @Description Publish a new notice; defaults to the general type and published status
// @Tags Notices
// @Accept json
// @Produce json
// @Param payload body service.CreateNoticeRequest true "Notice payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var req service.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "notice created", created.ID)
}

// Update godoc
// @Summary Update notice
// @Description Replace a notice's fields including its status
// @Tags Notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param payload body service.UpdateNoticeRequest true "Update payload"
// @Success 200 {object} models.Notice
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/notices/{id} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	var req service.UpdateNoticeRequest
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

// Delete godoc
// @Summary Delete notice
// @Description Remove a notice permanently
// @Tags Notices
// @Param id path string true "Notice ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
