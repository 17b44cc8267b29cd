package pagination

import (
	"math"
	"strconv"

	"gorm.io/gorm"
)

// PageSize is the fixed number of items per page.
const PageSize = 20

// MaxPage is the highest page whose offset fits in an int.
const MaxPage = math.MaxInt/PageSize + 1

// PageRequest holds the 1-indexed page requested by the client.
type PageRequest struct {
	Page int `form:"page"`
}

// ParsePage parses a raw page query value. Missing, malformed,
// non-positive and out-of-range values fall back to the first page.
func ParsePage(raw string) PageRequest {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 || page > MaxPage {
		page = 1
	}
	return PageRequest{Page: page}
}

// Defaults fills in the first page when none or an out-of-range one was
// provided.
func (p *PageRequest) Defaults() {
	if p.Page < 1 || p.Page > MaxPage {
		p.Page = 1
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * PageSize
}

// PageResponse wraps a paginated list of items with navigation metadata.
type PageResponse[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
	NextPage    int   `json:"next_page"`
	PrevPage    int   `json:"prev_page"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(PageSize)))
	if data == nil {
		data = []T{}
	}
	resp := PageResponse[T]{
		Data:        data,
		CurrentPage: page,
		PageSize:    PageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
	if resp.HasNext {
		resp.NextPage = page + 1
	}
	if resp.HasPrev {
		resp.PrevPage = page - 1
	}
	return resp
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(PageSize)
	}
}
