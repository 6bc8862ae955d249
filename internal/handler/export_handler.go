package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/healing-center/counseling-api/internal/service"
	"github.com/healing-center/counseling-api/pkg/response"
)

// ExportHandler streams admin data exports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Consultations godoc
// @Summary Export consultations
// @Description Download the consultation list as CSV or PDF
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf (default csv)"
// @Param status query string false "Restrict to a single status"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /admin/exports/consultations [get]
func (h *ExportHandler) Consultations(c *gin.Context) {
	format := exportFormat(c)
	payload, err := h.service.ExportConsultations(c.Request.Context(), format, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, payload)
}

// Reviews godoc
// @Summary Export reviews
// @Description Download the review list as CSV or PDF
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /admin/exports/reviews [get]
func (h *ExportHandler) Reviews(c *gin.Context) {
	format := exportFormat(c)
	payload, err := h.service.ExportReviews(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeAttachment(c, payload)
}

func exportFormat(c *gin.Context) service.ExportFormat {
	if format := c.Query("format"); format != "" {
		return service.ExportFormat(format)
	}
	return service.ExportFormatCSV
}

func writeAttachment(c *gin.Context, payload *service.ExportPayload) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	c.Data(200, payload.ContentType, payload.Data)
}
