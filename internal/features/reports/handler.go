package reports

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/internal/pkg/response"
	"github.com/ressly/ressly-be/internal/pkg/validator"
)

// Handler handles report-related HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateReport godoc
// @Summary Create a community report
// @Description Create a report with 1-5 images, atomically
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param idResident formData string true "Owner resident ID"
// @Param title formData string true "Report title"
// @Param category formData string true "Category"
// @Param urgency formData string true "Urgency level"
// @Param location formData string false "Free-text location"
// @Param description formData string true "Description"
// @Param anonymous formData string false "Anonymous flag (true/false)"
// @Param public formData string false "Public flag (true/false)"
// @Param images formData file true "1 to 5 image files"
// @Success 201 {object} response.SuccessResponse{data=ReportWithImages}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) CreateReport(c *gin.Context) {
	residentID, err := primitive.ObjectIDFromHex(c.PostForm("idResident"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residente no es válido")
		return
	}

	anonymous, err := validator.ParseBoolFlag(c.PostForm("anonymous"))
	if err != nil {
		response.BadRequest(c, "INVALID_FLAG", "El campo anonymous debe ser true o false")
		return
	}
	public, err := validator.ParseBoolFlag(c.PostForm("public"))
	if err != nil {
		response.BadRequest(c, "INVALID_FLAG", "El campo public debe ser true o false")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "INVALID_FORM", "El formulario multipart no es válido")
		return
	}
	headers := form.File["images"]

	input := CreateReportInput{
		ResidentID:  residentID,
		Title:       c.PostForm("title"),
		Category:    Category(c.PostForm("category")),
		Urgency:     Urgency(c.PostForm("urgency")),
		Location:    c.PostForm("location"),
		Description: c.PostForm("description"),
		Anonymous:   anonymous,
		Public:      public,
	}

	// Field and count validation before any file is even opened.
	if err := ValidateCreateReportInput(&input, len(headers)); err != nil {
		response.FromError(c, err)
		return
	}

	images, closeAll, err := openImageFiles(headers)
	if err != nil {
		response.BadRequest(c, "INVALID_FILE", err.Error())
		return
	}
	defer closeAll()

	result, err := h.service.Create(c.Request.Context(), input, images)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// openImageFiles validates and opens every uploaded image, returning readers
// in submission order plus a single cleanup closure.
func openImageFiles(headers []*multipart.FileHeader) ([]io.Reader, func(), error) {
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	readers := make([]io.Reader, 0, len(headers))
	for _, header := range headers {
		if err := cloudinary.ValidateImageFile(header); err != nil {
			closeAll()
			return nil, nil, err
		}
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, file)
		readers = append(readers, file)
	}

	return readers, closeAll, nil
}

// GetReportsByResident godoc
// @Summary List a resident's reports
// @Description Get all reports of a resident with their images, newest first
// @Tags reports
// @Produce json
// @Param residentId path string true "Resident ID"
// @Success 200 {object} response.ListResponse{data=[]ReportWithImages}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/resident/{residentId} [get]
func (h *Handler) GetReportsByResident(c *gin.Context) {
	residentID, err := primitive.ObjectIDFromHex(c.Param("residentId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del residente no es válido")
		return
	}

	results, err := h.service.ListByResident(c.Request.Context(), residentID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.List(c, len(results), results)
}

// DeleteReport godoc
// @Summary Delete a report
// @Description Delete a report; its images and votes are removed with it
// @Tags reports
// @Produce json
// @Param reportId path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{reportId} [delete]
func (h *Handler) DeleteReport(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("reportId"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "El ID del reporte no es válido")
		return
	}

	if err := h.service.Delete(c.Request.Context(), reportID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Reporte eliminado exitosamente"})
}
