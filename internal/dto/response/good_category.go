package response

import "marketplace-api/internal/data/entity"

type GoodCategoryResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
}

func GoodCategoryToResponse(category *entity.GoodCategory) GoodCategoryResponse {
	resp := GoodCategoryResponse{
		ID:          category.ID.String(),
		Title:       category.Title,
		Description: category.Description,
	}

	if category.ParentID != nil {
		parentID := category.ParentID.String()
		resp.ParentID = &parentID
	}

	return resp
}
