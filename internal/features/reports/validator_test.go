package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

func validInput() CreateReportInput {
	return CreateReportInput{
		ResidentID:  primitive.NewObjectID(),
		Title:       "Fuga de agua",
		Category:    CategoryMaintenance,
		Urgency:     UrgencyHigh,
		Description: "Hay una fuga en el área de la alberca",
		Public:      true,
	}
}

func TestValidateCreateReportInput_OK(t *testing.T) {
	input := validInput()
	require.NoError(t, ValidateCreateReportInput(&input, 1))
	require.NoError(t, ValidateCreateReportInput(&input, 5))
}

func TestValidateCreateReportInput_MissingFields(t *testing.T) {
	cases := map[string]func(*CreateReportInput){
		"resident":    func(i *CreateReportInput) { i.ResidentID = primitive.NilObjectID },
		"title":       func(i *CreateReportInput) { i.Title = "   " },
		"category":    func(i *CreateReportInput) { i.Category = "" },
		"urgency":     func(i *CreateReportInput) { i.Urgency = "" },
		"description": func(i *CreateReportInput) { i.Description = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			mutate(&input)
			err := ValidateCreateReportInput(&input, 1)
			require.Error(t, err)
			require.Equal(t, "MISSING_FIELD", apperrors.CodeOf(err))
			require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestValidateCreateReportInput_BadEnums(t *testing.T) {
	input := validInput()
	input.Category = "Jardinería"
	err := ValidateCreateReportInput(&input, 1)
	require.Equal(t, "INVALID_CATEGORY", apperrors.CodeOf(err))

	input = validInput()
	input.Urgency = "Urgente"
	err = ValidateCreateReportInput(&input, 1)
	require.Equal(t, "INVALID_URGENCY", apperrors.CodeOf(err))
}

func TestValidateCreateReportInput_ImageCount(t *testing.T) {
	input := validInput()

	err := ValidateCreateReportInput(&input, 0)
	require.Equal(t, "IMAGE_COUNT_OUT_OF_RANGE", apperrors.CodeOf(err))

	err = ValidateCreateReportInput(&input, 6)
	require.Equal(t, "IMAGE_COUNT_OUT_OF_RANGE", apperrors.CodeOf(err))
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range []Category{
		CategoryMaintenance, CategorySecurity, CategoryCleaning,
		CategoryCommonAreas, CategoryAdministration, CategoryNeighborComplaints,
		CategoryOther,
	} {
		require.True(t, IsValidCategory(c))
	}
	require.False(t, IsValidCategory("Mantenimiento ")) // exact match only
}
