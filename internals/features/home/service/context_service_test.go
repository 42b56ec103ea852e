package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	siteModel "mycollege_backend/internals/features/site/model"
)

func cards(n int) []siteModel.HighlightCardModel {
	out := make([]siteModel.HighlightCardModel, n)
	for i := range out {
		out[i].HighlightTitle = string(rune('A' + i))
	}
	return out
}

func TestRepeatForScroll(t *testing.T) {
	t.Run("empty stays empty", func(t *testing.T) {
		assert.Empty(t, RepeatForScroll(nil, 8))
	})

	t.Run("short lists repeat to the minimum", func(t *testing.T) {
		out := RepeatForScroll(cards(3), 8)
		assert.Len(t, out, 9)
		assert.Equal(t, out[0].HighlightTitle, out[3].HighlightTitle)
	})

	t.Run("single card repeats eight times", func(t *testing.T) {
		assert.Len(t, RepeatForScroll(cards(1), 8), 8)
	})

	t.Run("long lists pass through once", func(t *testing.T) {
		assert.Len(t, RepeatForScroll(cards(10), 8), 10)
	})
}
