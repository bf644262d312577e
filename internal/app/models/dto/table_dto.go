package dto

// PaginationInfo describes the page of a table response. CurrentPage is
// zero-based.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"0"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"5"`
	TotalItems  int64 `json:"totalItems" example:"12"`
	PageSizes   []int `json:"pageSizes" example:"5,8,10,25,100"`
}

// TableResponse is one visible page of a record table
type TableResponse struct {
	Items      interface{}    `json:"items"`
	Options    []string       `json:"options"` // Distinct values of the filter field
	Filter     string         `json:"filter,omitempty" example:"Sita Gurung"`
	Pagination PaginationInfo `json:"pagination"`
}

// ConfirmationPrompt is returned when a destructive action needs the
// caller's confirmation first.
type ConfirmationPrompt struct {
	Title       string `json:"title" example:"Are you sure?"`
	Text        string `json:"text" example:"You won't be able to revert this!"`
	ConfirmWith string `json:"confirmWith" example:"confirm=true"`
}

// DeleteResponse reports the outcome of a confirmed or cancelled delete
type DeleteResponse struct {
	Deleted bool           `json:"deleted" example:"true"`
	Message string         `json:"message" example:"Deleted!"`
	Table   *TableResponse `json:"table,omitempty"` // Re-fetched table after a delete
}
