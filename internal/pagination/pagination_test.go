package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Defaults(t *testing.T) {
	var p PageRequest
	p.Defaults()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = PageRequest{Page: 3, PageSize: 10}
	p.Defaults()
	assert.Equal(t, 20, p.Offset())
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		req       PageRequest
		wantData  []int
		wantPages int
	}{
		{name: "first page", req: PageRequest{Page: 1, PageSize: 2}, wantData: []int{1, 2}, wantPages: 3},
		{name: "last partial page", req: PageRequest{Page: 3, PageSize: 2}, wantData: []int{5}, wantPages: 3},
		{name: "past the end", req: PageRequest{Page: 9, PageSize: 2}, wantData: []int{}, wantPages: 3},
		{name: "everything", req: PageRequest{Page: 1, PageSize: 100}, wantData: items, wantPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.req)
			assert.Equal(t, tt.wantData, got.Data)
			assert.Equal(t, int64(5), got.TotalItems)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.req.Page, got.Page)
		})
	}
}

func TestSlice_Empty(t *testing.T) {
	got := Slice[string](nil, PageRequest{Page: 1, PageSize: 20})
	assert.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.Zero(t, got.TotalPages)
}
