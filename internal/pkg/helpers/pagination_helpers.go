package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/pkg/table"
)

// DefaultPage is the first page; pages are zero-based.
const DefaultPage = 0

// MaxPage caps the requested page number.
const MaxPage = math.MaxInt32

// ParsePaginationParams extracts the zero-based page and the page size from
// the query. Sizes other than table.PageSizes fall back to the default and
// pages above MaxPage are clamped to it.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(table.DefaultPageSize)))
	if err != nil || !table.ValidPageSize(size) {
		size = table.DefaultPageSize
	}

	return page, size
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the zero-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = table.DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
		PageSizes:   table.PageSizes,
	}
}

// NewTableResponse renders a view snapshot as a TableResponse
func NewTableResponse[T any](st table.State[T]) dto.TableResponse {
	return dto.TableResponse{
		Items:      st.Rows,
		Options:    st.Options,
		Filter:     st.Filter,
		Pagination: NewPaginationInfo(int64(st.TotalItems), st.Page, st.PageSize),
	}
}
