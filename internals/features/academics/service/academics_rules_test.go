package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "mycollege_backend/internals/helpers"
)

func TestParseExamDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := ParseExamDate("2026-05-14")
		require.NoError(t, err)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, 14, d.Day())
	})

	t.Run("year before 2000 rejected", func(t *testing.T) {
		_, err := ParseExamDate("1999-12-31")
		require.Error(t, err)
		fe, ok := helper.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "exam_date", fe.Field)
		assert.Equal(t, "Exam date looks invalid.", fe.Message)
	})

	t.Run("year 2000 accepted", func(t *testing.T) {
		_, err := ParseExamDate("2000-01-01")
		require.NoError(t, err)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := ParseExamDate("14/05/2026")
		require.Error(t, err)
		fe, ok := helper.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "exam_date", fe.Field)
	})
}
