package register

import (
	"strings"

	"github.com/ressly/ressly-be/internal/pkg/validator"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

// ValidateRegisterInput checks the text fields of a registration before any
// upload or database work happens.
func ValidateRegisterInput(input *RegisterResidentInput) error {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.PhoneNumber) == "" ||
		strings.TrimSpace(input.HouseNumber) == "" ||
		input.ResidentialID.IsZero() ||
		input.CodeID.IsZero() {
		return apperrors.Validation("MISSING_FIELD", "Todos los campos son requeridos")
	}

	if !validator.IsValidEmail(input.Email) {
		return apperrors.Validation("INVALID_EMAIL", "El email no es válido")
	}

	if !validator.IsValidPhone(input.PhoneNumber) {
		return apperrors.Validation("INVALID_PHONE", "El número de teléfono no es válido")
	}

	return nil
}
