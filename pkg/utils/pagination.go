package utils

import "fmt"

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// PageLink builds the relative link for a page of a listing, or nil
// when the page falls outside [1, totalPages].
func PageLink(basePath string, page, totalPages int) *string {
	if page < 1 || page > totalPages {
		return nil
	}
	link := fmt.Sprintf("%s?page=%d", basePath, page)
	return &link
}
