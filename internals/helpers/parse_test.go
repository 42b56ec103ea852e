package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	got := ParseDateParam("2026-03-15")
	require.NotNil(t, got)
	assert.Equal(t, time.March, got.Month())

	assert.Nil(t, ParseDateParam(""))
	assert.Nil(t, ParseDateParam("  "))
	assert.Nil(t, ParseDateParam("15/03/2026"))
	assert.Nil(t, ParseDateParam("not-a-date"))
}

func TestParseIntParam(t *testing.T) {
	got := ParseIntParam("5")
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)

	got = ParseIntParam(" 7 ")
	require.NotNil(t, got)
	assert.Equal(t, 7, *got)

	assert.Nil(t, ParseIntParam(""))
	assert.Nil(t, ParseIntParam("three"))
	assert.Nil(t, ParseIntParam("3.5"))
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	eod := EndOfDay(d)
	assert.Equal(t, 23, eod.Hour())
	assert.Equal(t, 59, eod.Minute())
	assert.Equal(t, d.Day(), eod.Day())
	assert.True(t, eod.Before(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
}
