package reports

import (
	"strings"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

var validCategories = map[Category]bool{
	CategoryMaintenance:        true,
	CategorySecurity:           true,
	CategoryCleaning:           true,
	CategoryCommonAreas:        true,
	CategoryAdministration:     true,
	CategoryNeighborComplaints: true,
	CategoryOther:              true,
}

var validUrgencies = map[Urgency]bool{
	UrgencyLow:    true,
	UrgencyMedium: true,
	UrgencyHigh:   true,
}

// IsValidCategory reports whether c is one of the enumerated categories.
func IsValidCategory(c Category) bool {
	return validCategories[c]
}

// IsValidUrgency reports whether u is one of the enumerated urgency levels.
func IsValidUrgency(u Urgency) bool {
	return validUrgencies[u]
}

// ValidateCreateReportInput checks everything that can be checked before any
// mutation: required fields, enum membership, and the image count bounds.
func ValidateCreateReportInput(input *CreateReportInput, imageCount int) error {
	if input.ResidentID.IsZero() ||
		strings.TrimSpace(input.Title) == "" ||
		input.Category == "" ||
		input.Urgency == "" ||
		strings.TrimSpace(input.Description) == "" {
		return apperrors.Validation("MISSING_FIELD",
			"Los campos título, categoría, urgencia, descripción e ID de residente son obligatorios")
	}

	if !IsValidCategory(input.Category) {
		return apperrors.Validation("INVALID_CATEGORY", "Categoría no válida")
	}

	if !IsValidUrgency(input.Urgency) {
		return apperrors.Validation("INVALID_URGENCY",
			"Nivel de urgencia no válido. Debe ser: Bajo, Medio o Alto")
	}

	if imageCount < MinImages {
		return apperrors.Validation("IMAGE_COUNT_OUT_OF_RANGE",
			"Debes subir al menos una imagen para el reporte")
	}
	if imageCount > MaxImages {
		return apperrors.Validation("IMAGE_COUNT_OUT_OF_RANGE",
			"El máximo de imágenes permitidas es 5")
	}

	return nil
}
