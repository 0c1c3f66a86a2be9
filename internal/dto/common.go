package dto

// ListResponse is the single envelope every list endpoint returns.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// NewListResponse builds an envelope from a slice and total count.
func NewListResponse[T any](items []T, total int64) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: total}
}

// ListParams are the query parameters shared by list endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
