package response

import "marketplace-api/pkg/utils"

// ListResponse is the paginated listing envelope:
// {totalCount, nextPage, prevPage, items}
type ListResponse[T any] struct {
	TotalCount int64   `json:"totalCount"`
	NextPage   *string `json:"nextPage"`
	PrevPage   *string `json:"prevPage"`
	Items      []T     `json:"items"`
}

func NewListResponse[T any](items []T, total int64, basePath string, page, perPage int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := utils.CalculateTotalPages(total, perPage)

	return &ListResponse[T]{
		TotalCount: total,
		NextPage:   utils.PageLink(basePath, page+1, totalPages),
		PrevPage:   utils.PageLink(basePath, page-1, totalPages),
		Items:      items,
	}
}
