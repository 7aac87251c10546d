package feed

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/database"
)

// RegisterRoutes registers the community feed routes
func RegisterRoutes(router *gin.RouterGroup, mdb *database.MongoDB) {
	repo := NewRepository(mdb.Database)
	service := NewService(repo)
	handler := NewHandler(service)

	reports := router.Group("/reports")
	{
		reports.GET("/community/:residentialId", handler.GetCommunityFeed)
	}
}
