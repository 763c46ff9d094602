package adaptor

import (
	"net/http"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type GoodCategoryHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewGoodCategoryHandler(service usecase.CatalogService, log *zap.Logger) *GoodCategoryHandler {
	return &GoodCategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "good_category")),
	}
}

// Create handles POST /good-categories
func (h *GoodCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGoodCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// Get handles GET /good-categories/{id}
func (h *GoodCategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Category retrieved", category)
}

// List handles GET /good-categories?page=N
func (h *GoodCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListCategories(r.Context(), r.URL.Path, pageParam(r))
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", list)
}

// Update handles PATCH /good-categories/{id}
func (h *GoodCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateGoodCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Category updated", category)
}

// Delete handles DELETE /good-categories/{id}
func (h *GoodCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}
