package votes

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/database"
)

// RegisterRoutes registers the vote-related routes
func RegisterRoutes(router *gin.RouterGroup, mdb *database.MongoDB) {
	repo := NewRepository(mdb.Database)
	service := NewService(repo, mdb)
	handler := NewHandler(service)

	votes := router.Group("/votes")
	{
		votes.POST("", handler.CastVote)
		votes.DELETE("/:reportId/:voterId", handler.RemoveVote)
	}
}
