package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/nextstop-api/internal/service"
	"github.com/noah-isme/nextstop-api/pkg/response"
)

// UniversityHandler serves partner university endpoints.
type UniversityHandler struct {
	service *service.CatalogService
}

// NewUniversityHandler constructs a university handler.
func NewUniversityHandler(svc *service.CatalogService) *UniversityHandler {
	return &UniversityHandler{service: svc}
}

// List godoc
// @Summary List universities
// @Tags Universities
// @Produce json
// @Success 200 {array} models.University
// @Failure 500 {object} response.ErrorBody
// @Router /universities [get]
func (h *UniversityHandler) List(c *gin.Context) {
	universities, err := h.service.ListUniversities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, universities)
}

// Get godoc
// @Summary Get university by id
// @Tags Universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} models.University
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /universities/{id} [get]
func (h *UniversityHandler) Get(c *gin.Context) {
	university, err := h.service.GetUniversity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, university)
}

// Verification godoc
// @Summary Get the verification link printed on a partnership letter
// @Tags Universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} models.UniversityVerification
// @Failure 404 {object} response.ErrorBody
// @Router /universities/{id}/verification [get]
func (h *UniversityHandler) Verification(c *gin.Context) {
	verification, err := h.service.Verification(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, verification)
}
