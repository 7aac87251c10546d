package pets

import (
	"strings"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

var validStatuses = map[PetStatus]bool{
	StatusHome:     true,
	StatusMissing:  true,
	StatusDeceased: true,
}

// IsValidStatus reports whether s is one of the enumerated pet statuses.
func IsValidStatus(s PetStatus) bool {
	return validStatuses[s]
}

// ValidateCreatePetInput checks the required fields of a pet registration.
func ValidateCreatePetInput(input *CreatePetInput) error {
	if input.ResidentID.IsZero() ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Specie) == "" ||
		strings.TrimSpace(input.Breed) == "" ||
		strings.TrimSpace(input.Color) == "" {
		return apperrors.Validation("MISSING_FIELD",
			"Los campos nombre, especie, raza, color e ID de residente son obligatorios")
	}
	return nil
}

// ValidateUpdatePetInput checks the required fields and the status enum of a
// pet update.
func ValidateUpdatePetInput(input *UpdatePetInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Specie) == "" ||
		strings.TrimSpace(input.Breed) == "" ||
		strings.TrimSpace(input.Color) == "" {
		return apperrors.Validation("MISSING_FIELD",
			"Los campos nombre, especie, raza y color son obligatorios")
	}
	if input.Status != "" && !IsValidStatus(input.Status) {
		return apperrors.Validation("INVALID_STATUS",
			"Estado no válido. Debe ser: En Casa, Desaparecida o Fallecida")
	}
	return nil
}
