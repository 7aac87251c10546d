package register

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/internal/pkg/response"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// Handler handles registration HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ValidateCode godoc
// @Summary Validate an invitation code
// @Description Check that an invitation code exists and has not been used
// @Tags register
// @Accept json
// @Produce json
// @Param body body ValidateCodeRequest true "Invitation code"
// @Success 200 {object} response.SuccessResponse{data=ValidateCodeResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /register/validate-code [post]
func (h *Handler) ValidateCode(c *gin.Context) {
	var req ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "El cuerpo de la petición no es válido")
		return
	}

	result, err := h.service.ValidateCode(c.Request.Context(), req.Code)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// RegisterResident godoc
// @Summary Register a new resident
// @Description Register a resident with an invitation code, INE photo and profile photo
// @Tags register
// @Accept multipart/form-data
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email"
// @Param phoneNumber formData string true "Phone number"
// @Param houseNumber formData string true "House number inside the residential"
// @Param idResidential formData string true "Residential ID"
// @Param idCode formData string true "Invitation code ID"
// @Param ineImage formData file true "INE photo"
// @Param residentPhoto formData file true "Resident photo"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register/resident [post]
func (h *Handler) RegisterResident(c *gin.Context) {
	residentialID, err := primitive.ObjectIDFromHex(c.PostForm("idResidential"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residencial no es válido")
		return
	}
	codeID, err := primitive.ObjectIDFromHex(c.PostForm("idCode"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del código no es válido")
		return
	}

	input := RegisterResidentInput{
		FirstName:     c.PostForm("firstName"),
		LastName:      c.PostForm("lastName"),
		Email:         c.PostForm("email"),
		PhoneNumber:   c.PostForm("phoneNumber"),
		HouseNumber:   c.PostForm("houseNumber"),
		ResidentialID: residentialID,
		CodeID:        codeID,
	}
	if err := ValidateRegisterInput(&input); err != nil {
		response.FromError(c, err)
		return
	}

	ineImage, closeIne, err := openFormImage(c, "ineImage")
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer closeIne()

	residentPhoto, closePhoto, err := openFormImage(c, "residentPhoto")
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer closePhoto()

	resident, err := h.service.Register(c.Request.Context(), input, ineImage, residentPhoto)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, resident)
}

// openFormImage validates and opens the single file uploaded under name.
func openFormImage(c *gin.Context, name string) (multipart.File, func(), error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, nil, apperrors.Validation("MISSING_FILE",
			"Las imágenes (INE y foto del residente) son requeridas")
	}
	if err := cloudinary.ValidateImageFile(header); err != nil {
		return nil, nil, apperrors.Validation("INVALID_FILE", err.Error())
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, apperrors.Validation("INVALID_FILE", "No se pudo leer el archivo "+name)
	}
	return file, func() { file.Close() }, nil
}
