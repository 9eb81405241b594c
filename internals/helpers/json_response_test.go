package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func pagingFor(t *testing.T, query string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)
	c.Request().SetRequestURI("/items?" + query)
	return ResolvePaging(c, defaultPerPage, maxPerPage)
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Paging
	}{
		{"defaults", "", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit page", "page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "limit=15", Paging{Page: 1, PerPage: 15, Offset: 0, Limit: 15}},
		{"capped at max", "per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"garbage falls back", "page=-2&per_page=abc", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagingFor(t, tt.query, 20, 100)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	require.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
