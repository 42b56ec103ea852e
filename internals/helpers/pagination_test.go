package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func ctxWithQuery(t *testing.T, app *fiber.App, uri string) *fiber.Ctx {
	t.Helper()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(c) })
	c.Request().SetRequestURI(uri)
	return c
}

func TestParsePage(t *testing.T) {
	app := fiber.New()

	t.Run("defaults", func(t *testing.T) {
		p := ParsePage(ctxWithQuery(t, app, "/news"), NewsOpts)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 8, p.PerPage)
		assert.Equal(t, 0, p.Offset())

		p = ParsePage(ctxWithQuery(t, app, "/events"), PublicOpts)
		assert.Equal(t, 9, p.PerPage)
	})

	t.Run("explicit page and per_page", func(t *testing.T) {
		p := ParsePage(ctxWithQuery(t, app, "/news?page=3&per_page=10"), NewsOpts)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.PerPage)
		assert.Equal(t, 20, p.Offset())
	})

	t.Run("bad values fall back", func(t *testing.T) {
		p := ParsePage(ctxWithQuery(t, app, "/news?page=zero&per_page=-4"), GalleryOpts)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 18, p.PerPage)
	})

	t.Run("per_page capped at the preset max", func(t *testing.T) {
		p := ParsePage(ctxWithQuery(t, app, "/news?per_page=9999"), NewsOpts)
		assert.Equal(t, 100, p.PerPage)
	})
}

func TestBuildPageMeta(t *testing.T) {
	meta := BuildPageMeta(25, PageParams{Page: 2, PerPage: 8})
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = BuildPageMeta(0, PageParams{Page: 1, PerPage: 8})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
