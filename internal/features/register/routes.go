package register

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/database"
	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
)

// RegisterRoutes registers the registration routes
func RegisterRoutes(router *gin.RouterGroup, mdb *database.MongoDB, cld *cloudinary.Service) {
	repo := NewRepository(mdb.Database)
	service := NewService(repo, cld, mdb)
	handler := NewHandler(service)

	reg := router.Group("/register")
	{
		reg.POST("/validate-code", handler.ValidateCode)
		reg.POST("/resident", handler.RegisterResident)
	}
}
