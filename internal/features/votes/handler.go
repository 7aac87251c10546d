package votes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/response"
)

// Handler handles vote-related HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CastVote godoc
// @Summary Cast a vote on a report
// @Description Toggle policy: same value removes the vote, opposite value updates it
// @Tags votes
// @Accept json
// @Produce json
// @Param request body CastVoteRequest true "Vote to cast"
// @Success 200 {object} response.SuccessResponse{data=CastVoteResult}
// @Success 201 {object} response.SuccessResponse{data=CastVoteResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /votes [post]
func (h *Handler) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "El cuerpo de la petición no es válido")
		return
	}
	if req.ReportID == "" || req.VoterID == "" || req.Value == nil {
		response.BadRequest(c, "MISSING_FIELD",
			"Los campos reportId, voterId y value son obligatorios")
		return
	}

	reportID, err := primitive.ObjectIDFromHex(req.ReportID)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del reporte no es válido")
		return
	}
	voterID, err := primitive.ObjectIDFromHex(req.VoterID)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residente no es válido")
		return
	}

	result, err := h.service.Cast(c.Request.Context(), reportID, voterID, *req.Value)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if result.Action == ActionCreated {
		response.Created(c, result)
		return
	}
	response.Success(c, result)
}

// RemoveVote godoc
// @Summary Remove a vote
// @Description Explicitly delete a resident's vote on a report
// @Tags votes
// @Produce json
// @Param reportId path string true "Report ID"
// @Param voterId path string true "Voter resident ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /votes/{reportId}/{voterId} [delete]
func (h *Handler) RemoveVote(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("reportId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del reporte no es válido")
		return
	}
	voterID, err := primitive.ObjectIDFromHex(c.Param("voterId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residente no es válido")
		return
	}

	if err := h.service.Remove(c.Request.Context(), reportID, voterID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Voto eliminado exitosamente"})
}
