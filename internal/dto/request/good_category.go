package request

type CreateGoodCategoryRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"required"`
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,uuid4"`
}

type UpdateGoodCategoryRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,uuid4"`
}
