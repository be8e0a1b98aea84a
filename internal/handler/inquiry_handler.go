package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/service"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
	"github.com/noah-isme/nextstop-api/pkg/response"
)

// InquiryHandler accepts contact form submissions and exposes them to staff.
type InquiryHandler struct {
	service *service.InquiryService
}

// NewInquiryHandler constructs an inquiry handler.
func NewInquiryHandler(svc *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: svc}
}

// Submit godoc
// @Summary Submit a student inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param payload body service.CreateInquiryRequest true "Inquiry payload"
// @Success 201 {object} models.InquirySubmission
// @Failure 400 {object} response.SubmissionFailure
// @Failure 500 {object} response.SubmissionFailure
// @Router /inquiries [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req service.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid request payload"))
		return
	}
	inquiry, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		response.Failure(c, err)
		return
	}
	response.Created(c, models.InquirySubmission{
		Success: true,
		Message: service.InquirySubmittedMessage,
		Inquiry: inquiry.Receipt(),
	})
}

// List godoc
// @Summary List student inquiries
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Inquiry
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, inquiries)
}

// Export godoc
// @Summary Download student inquiries
// @Tags Inquiries
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /inquiries/export [get]
func (h *InquiryHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
