package residents

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/database"
)

// RegisterRoutes registers the resident-related routes
func RegisterRoutes(router *gin.RouterGroup, mdb *database.MongoDB) {
	repo := NewRepository(mdb.Database)
	service := NewService(repo)
	handler := NewHandler(service)

	residents := router.Group("/residents")
	{
		residents.GET("/:email", handler.GetResidentByEmail)
	}
}
