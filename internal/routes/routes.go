package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/internal/config"
	"github.com/ressly/ressly-be/internal/database"
	"github.com/ressly/ressly-be/internal/features/feed"
	"github.com/ressly/ressly-be/internal/features/pets"
	"github.com/ressly/ressly-be/internal/features/register"
	"github.com/ressly/ressly-be/internal/features/reports"
	"github.com/ressly/ressly-be/internal/features/residents"
	"github.com/ressly/ressly-be/internal/features/votes"
	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
)

// SetupRoutes wires every feature under /api/v1. The Cloudinary client is
// built once here and shared by every feature that stores images.
func SetupRoutes(router *gin.Engine, mdb *database.MongoDB, cfg *config.Config) {
	cld, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryFolder,
	)
	if err != nil {
		log.Fatal("Failed to initialize Cloudinary:", err)
	}

	api := router.Group("/api/v1")

	reports.RegisterRoutes(api, mdb, cld)
	votes.RegisterRoutes(api, mdb)
	feed.RegisterRoutes(api, mdb)
	residents.RegisterRoutes(api, mdb)
	register.RegisterRoutes(api, mdb, cld)
	pets.RegisterRoutes(api, mdb, cld)
}
