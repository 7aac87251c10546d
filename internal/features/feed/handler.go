package feed

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/response"
)

// Handler handles community feed HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetCommunityFeed godoc
// @Summary Community feed for a residential
// @Description Public reports of a residential ranked by vote sum, with author info (unless anonymous), vote counts and images
// @Tags reports
// @Produce json
// @Param residentialId path string true "Residential ID"
// @Param window query string false "Time window: all, week or month" default(all)
// @Param voter query string false "Caller resident ID, used to fill userVote"
// @Success 200 {object} response.ListResponse{data=[]FeedEntry}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reports/community/{residentialId} [get]
func (h *Handler) GetCommunityFeed(c *gin.Context) {
	residentialID, err := primitive.ObjectIDFromHex(c.Param("residentialId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residencial no es válido")
		return
	}

	window, err := ParseWindow(c.Query("window"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var caller *primitive.ObjectID
	if raw := c.Query("voter"); raw != "" {
		voterID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			response.BadRequest(c, "INVALID_ID", "El ID del votante no es válido")
			return
		}
		caller = &voterID
	}

	entries, err := h.service.List(c.Request.Context(), residentialID, window, caller)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.List(c, len(entries), entries)
}
