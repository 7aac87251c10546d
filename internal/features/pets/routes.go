package pets

import (
	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/database"
	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
)

// RegisterRoutes registers the pet-related routes
func RegisterRoutes(router *gin.RouterGroup, mdb *database.MongoDB, cld *cloudinary.Service) {
	repo := NewRepository(mdb.Database)
	service := NewService(repo, cld)
	handler := NewHandler(service)

	pets := router.Group("/pets")
	{
		pets.POST("", handler.CreatePet)
		pets.GET("/resident/:residentId", handler.GetPetsByResident)
		pets.PUT("/:petId", handler.UpdatePet)
	}
}
