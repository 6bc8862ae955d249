package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healing-center/counseling-api/internal/service"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
	"github.com/healing-center/counseling-api/pkg/response"
)

// ConsultationHandler wires HTTP endpoints to the consultation service.
type ConsultationHandler struct {
	service *service.ConsultationService
}

// NewConsultationHandler creates a new handler.
func NewConsultationHandler(svc *service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: svc}
}

// List godoc
// @Summary List consultations
// @Description List consultation requests with optional status and contact filters
// @Tags Consultations
// @Produce json
// @Param status query string false "Filter by status"
// @Param contact query string false "Match against contact name, phone, or email"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Param sort_by query string false "created_at or preferred_date"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /admin/consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	req := service.ConsultationListRequest{
		Contact:   c.Query("contact"),
		Status:    c.Query("status"),
		Limit:     queryInt(c, "limit", 0),
		Offset:    queryInt(c, "offset", 0),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	rows, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "consultations", emptyIfNil(rows), total)
}

// Get godoc
// @Summary Get consultation
// @Description Fetch a single consultation by id
// @Tags Consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 200 {object} models.Consultation
// @Failure 404 {object} map[string]string
// @Router /admin/consultations/{id} [get]
func (h *ConsultationHandler) Get(c *gin.Context) {
	consultation, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, consultation)
}

// Create godoc
// @Summary Book a consultation
// @Description Submit a new consultation request; new bookings always start pending
// @Tags Consultations
// @Accept json
// @Produce json
// @Param payload body service.CreateConsultationRequest true "Booking payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /consultations [post]
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req service.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "consultation booked", created.ID)
}

// Update godoc
// @Summary Update consultation
// @Description Replace a consultation's fields including its status
// @Tags Consultations
// @Accept json
// @Produce json
// @Param id path string true "Consultation ID"
// @Param payload body service.UpdateConsultationRequest true "Update payload"
// @Success 200 {object} models.Consultation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/consultations/{id} [put]
func (h *ConsultationHandler) Update(c *gin.Context) {
	var req service.UpdateConsultationRequest
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

// UpdateStatus godoc
// @Summary Update consultation status
// @Description Move a consultation to a new lifecycle state
// @Tags Consultations
// @Accept json
// @Produce json
// @Param id path string true "Consultation ID"
// @Param payload body service.UpdateConsultationStatusRequest true "Status payload"
// @Success 200 {object} models.Consultation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/consultations/{id}/status [patch]
func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateConsultationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Cancel godoc
// @Summary Cancel consultation
// @Description Mark a consultation cancelled
// @Tags Consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 200 {object} models.Consultation
// @Failure 404 {object} map[string]string
// @Router /consultations/{id}/cancel [post]
func (h *ConsultationHandler) Cancel(c *gin.Context) {
	cancelled, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cancelled)
}

// Delete godoc
// @Summary Delete consultation
// @Description Remove a consultation; linked reviews keep their content
// @Tags Consultations
// @Param id path string true "Consultation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/consultations/{id} [delete]
func (h *ConsultationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
