package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("")
	require.NoError(t, err)
	require.Equal(t, WindowAll, w)

	w, err = ParseWindow("week")
	require.NoError(t, err)
	require.Equal(t, WindowWeek, w)

	w, err = ParseWindow("month")
	require.NoError(t, err)
	require.Equal(t, WindowMonth, w)

	_, err = ParseWindow("todas")
	require.Error(t, err)
	require.Equal(t, "INVALID_WINDOW", apperrors.CodeOf(err))
	require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
