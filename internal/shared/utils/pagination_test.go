package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", 1, 10},
		{"valid values", "page=3&limit=25", 3, 25},
		{"non-numeric page collapses to default", "page=abc&limit=5", 1, 5},
		{"zero page collapses to default", "page=0", 1, 10},
		{"negative page collapses to default", "page=-2", 1, 10},
		{"zero limit collapses to default", "limit=0", 1, 10},
		{"negative limit collapses to default", "limit=-5", 1, 10},
		{"non-numeric limit collapses to default", "limit=ten", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/tickets?"+tt.query, nil)

			p := ParsePagination(c)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, Pagination{Page: 5, Limit: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty collection", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"limit one", 2, 1, 2},
		{"single item", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestNewPagedResponse(t *testing.T) {
	resp := NewPagedResponse([]string{"a"}, 2, Pagination{Page: 1, Limit: 1})

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.Limit)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, []string{"a"}, resp.Data)
}
