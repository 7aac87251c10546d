package residents

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/pkg/response"
	"github.com/ressly/ressly-be/internal/pkg/validator"
)

// Handler handles resident-related HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetResidentByEmail godoc
// @Summary Get a resident by email
// @Description Resident profile including the residential their house belongs to
// @Tags residents
// @Produce json
// @Param email path string true "Resident email"
// @Success 200 {object} response.SuccessResponse{data=ResidentProfile}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /residents/{email} [get]
func (h *Handler) GetResidentByEmail(c *gin.Context) {
	email := c.Param("email")
	if !validator.IsValidEmail(email) {
		response.BadRequest(c, "INVALID_EMAIL", "El email no es válido")
		return
	}

	profile, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, profile)
}
