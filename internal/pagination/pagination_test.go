package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"3", 3},
		{"0", 1},
		{"-4", 1},
		{"abc", 1},
		{"2.5", 1},
		{"922337203685477581", 1},
		{"99999999999999999999", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.raw).Page)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 3}.Offset())
}

func TestOffset_NeverNegative(t *testing.T) {
	for _, raw := range []string{"922337203685477581", strconv.Itoa(MaxPage), strconv.Itoa(MaxPage + 1)} {
		t.Run(raw, func(t *testing.T) {
			assert.GreaterOrEqual(t, ParsePage(raw).Offset(), 0)
		})
	}

	req := PageRequest{Page: MaxPage + 1}
	req.Defaults()
	assert.Equal(t, 1, req.Page)
}

func TestNewPageResponse(t *testing.T) {
	t.Run("first of three pages", func(t *testing.T) {
		resp := NewPageResponse(make([]int, 20), 1, 45)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.False(t, resp.HasPrev)
		assert.Equal(t, 2, resp.NextPage)
		assert.Equal(t, 0, resp.PrevPage)
	})

	t.Run("last page", func(t *testing.T) {
		resp := NewPageResponse(make([]int, 5), 3, 45)
		assert.False(t, resp.HasNext)
		assert.True(t, resp.HasPrev)
		assert.Equal(t, 2, resp.PrevPage)
		assert.Len(t, resp.Data, 5)
	})

	t.Run("empty result", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 0)
		assert.Equal(t, 0, resp.TotalPages)
		assert.NotNil(t, resp.Data)
		assert.False(t, resp.HasNext)
		assert.False(t, resp.HasPrev)
	})
}
