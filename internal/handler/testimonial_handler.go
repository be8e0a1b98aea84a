package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/nextstop-api/internal/service"
	"github.com/noah-isme/nextstop-api/pkg/response"
)

// TestimonialHandler serves student testimonials.
type TestimonialHandler struct {
	service *service.CatalogService
}

// NewTestimonialHandler constructs a testimonial handler.
func NewTestimonialHandler(svc *service.CatalogService) *TestimonialHandler {
	return &TestimonialHandler{service: svc}
}

// List godoc
// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} response.ErrorBody
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.service.ListTestimonials(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, testimonials)
}
