package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/database"
	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
)

// RegisterRoutes registers the report-related routes
func RegisterRoutes(router *gin.RouterGroup, mdb *database.MongoDB, cld *cloudinary.Service) {
	repo := NewRepository(mdb.Database)
	service := NewService(repo, cld, mdb)
	handler := NewHandler(service)

	reports := router.Group("/reports")
	{
		reports.POST("", handler.CreateReport)
		reports.GET("/resident/:residentId", handler.GetReportsByResident)
		reports.DELETE("/:reportId", handler.DeleteReport)
	}
}
