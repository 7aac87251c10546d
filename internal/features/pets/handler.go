package pets

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/internal/pkg/response"
)

// Handler handles pet-related HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreatePet godoc
// @Summary Register a pet
// @Description Register a pet with its photo
// @Tags pets
// @Accept multipart/form-data
// @Produce json
// @Param idResident formData string true "Owner resident ID"
// @Param name formData string true "Pet name"
// @Param specie formData string true "Specie"
// @Param breed formData string true "Breed"
// @Param color formData string true "Color"
// @Param description formData string false "Description"
// @Param petImage formData file true "Pet photo"
// @Success 201 {object} response.SuccessResponse{data=Pet}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /pets [post]
func (h *Handler) CreatePet(c *gin.Context) {
	residentID, err := primitive.ObjectIDFromHex(c.PostForm("idResident"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residente no es válido")
		return
	}

	input := CreatePetInput{
		ResidentID:  residentID,
		Name:        c.PostForm("name"),
		Specie:      c.PostForm("specie"),
		Breed:       c.PostForm("breed"),
		Color:       c.PostForm("color"),
		Description: c.PostForm("description"),
	}
	if err := ValidateCreatePetInput(&input); err != nil {
		response.FromError(c, err)
		return
	}

	header, err := c.FormFile("petImage")
	if err != nil {
		response.BadRequest(c, "MISSING_FILE", "La imagen de la mascota es obligatoria")
		return
	}
	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, "INVALID_FILE", err.Error())
		return
	}
	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "INVALID_FILE", "No se pudo leer la imagen de la mascota")
		return
	}
	defer file.Close()

	pet, err := h.service.Create(c.Request.Context(), input, file)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, pet)
}

// GetPetsByResident godoc
// @Summary List a resident's pets
// @Description Get all pets of a resident, newest first
// @Tags pets
// @Produce json
// @Param residentId path string true "Resident ID"
// @Success 200 {object} response.ListResponse{data=[]Pet}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /pets/resident/{residentId} [get]
func (h *Handler) GetPetsByResident(c *gin.Context) {
	residentID, err := primitive.ObjectIDFromHex(c.Param("residentId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residente no es válido")
		return
	}

	pets, err := h.service.ListByResident(c.Request.Context(), residentID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.List(c, len(pets), pets)
}

// UpdatePet godoc
// @Summary Update a pet
// @Description Update a pet's data and status
// @Tags pets
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param body body UpdatePetInput true "Pet data"
// @Success 200 {object} response.SuccessResponse{data=Pet}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /pets/{petId} [put]
func (h *Handler) UpdatePet(c *gin.Context) {
	petID, err := primitive.ObjectIDFromHex(c.Param("petId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID de la mascota no es válido")
		return
	}

	var input UpdatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "INVALID_BODY", "El cuerpo de la petición no es válido")
		return
	}

	pet, err := h.service.Update(c.Request.Context(), petID, input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, pet)
}
