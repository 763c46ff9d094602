package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperr"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CategoriesPerPage = 10
	GoodsPerPage      = 20
)

// CatalogService covers categories and the goods under them.
type CatalogService interface {
	CreateCategory(ctx context.Context, req *request.CreateGoodCategoryRequest) (*response.GoodCategoryResponse, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*response.GoodCategoryResponse, error)
	ListCategories(ctx context.Context, basePath string, page int) (*response.ListResponse[response.GoodCategoryResponse], error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *request.UpdateGoodCategoryRequest) (*response.GoodCategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateGood(ctx context.Context, req *request.CreateGoodRequest) (*response.GoodResponse, error)
	GetGood(ctx context.Context, id uuid.UUID) (*response.GoodResponse, error)
	ListGoods(ctx context.Context, basePath string, page int) (*response.ListResponse[response.GoodListItem], error)
	UpdateGood(ctx context.Context, id uuid.UUID, req *request.UpdateGoodRequest) (*response.GoodResponse, error)
	DeleteGood(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	categories repository.GoodCategoryRepository
	goods      repository.GoodRepository
	log        *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		categories: repo.GoodCategory,
		goods:      repo.Good,
		log:        log.With(zap.String("service", "catalog")),
	}
}

// ==================== CATEGORIES ====================

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CreateGoodCategoryRequest) (*response.GoodCategoryResponse, error) {
	parentID, err := s.resolveParent(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.GoodCategory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		ParentID:    parentID,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperr.Internal("failed to create category", err)
	}

	resp := response.GoodCategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*response.GoodCategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("category not found")
	}

	resp := response.GoodCategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) ListCategories(ctx context.Context, basePath string, page int) (*response.ListResponse[response.GoodCategoryResponse], error) {
	total, err := s.categories.CountAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count categories", err)
	}

	offset := utils.CalculateOffset(page, CategoriesPerPage)
	categories, err := s.categories.FindAll(ctx, CategoriesPerPage, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list categories", err)
	}

	items := make([]response.GoodCategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, response.GoodCategoryToResponse(category))
	}

	return response.NewListResponse(items, total, basePath, page, CategoriesPerPage), nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *request.UpdateGoodCategoryRequest) (*response.GoodCategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("category not found")
	}

	if req.Title != nil {
		category.Title = *req.Title
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		parentID, err := s.resolveParent(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		category.ParentID = parentID
	}
	category.UpdatedAt = time.Now()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperr.Internal("failed to update category", err)
	}

	resp := response.GoodCategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to find category", err)
	}
	if category == nil {
		return apperr.NotFound("category not found")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete category", err)
	}

	return nil
}

func (s *catalogService) resolveParent(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	parentID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperr.ValidationField("parentId", "must be a valid UUID")
	}

	parent, err := s.categories.FindByID(ctx, parentID)
	if err != nil {
		return nil, apperr.Internal("failed to find parent category", err)
	}
	if parent == nil {
		return nil, apperr.ValidationField("parentId", "parent category not found")
	}

	return &parentID, nil
}

// ==================== GOODS ====================

func (s *catalogService) CreateGood(ctx context.Context, req *request.CreateGoodRequest) (*response.GoodResponse, error) {
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	good := &entity.Good{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		SellerID:    req.SellerID,
		CategoryID:  categoryID,
	}

	if err := s.goods.Create(ctx, good); err != nil {
		return nil, apperr.Internal("failed to create good", err)
	}

	resp := response.GoodToResponse(good)
	return &resp, nil
}

func (s *catalogService) GetGood(ctx context.Context, id uuid.UUID) (*response.GoodResponse, error) {
	good, err := s.goods.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find good", err)
	}
	if good == nil {
		return nil, apperr.NotFound("good not found")
	}

	resp := response.GoodToResponse(good)
	return &resp, nil
}

func (s *catalogService) ListGoods(ctx context.Context, basePath string, page int) (*response.ListResponse[response.GoodListItem], error) {
	total, err := s.goods.CountAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count goods", err)
	}

	offset := utils.CalculateOffset(page, GoodsPerPage)
	goods, err := s.goods.FindAll(ctx, GoodsPerPage, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list goods", err)
	}

	items := make([]response.GoodListItem, 0, len(goods))
	for _, good := range goods {
		items = append(items, response.GoodToListItem(good))
	}

	return response.NewListResponse(items, total, basePath, page, GoodsPerPage), nil
}

func (s *catalogService) UpdateGood(ctx context.Context, id uuid.UUID, req *request.UpdateGoodRequest) (*response.GoodResponse, error) {
	good, err := s.goods.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find good", err)
	}
	if good == nil {
		return nil, apperr.NotFound("good not found")
	}

	if req.Title != nil {
		good.Title = *req.Title
	}
	if req.Description != nil {
		good.Description = *req.Description
	}
	if req.Price != nil {
		good.Price = *req.Price
	}
	if req.SellerID != nil {
		good.SellerID = *req.SellerID
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		good.CategoryID = categoryID
	}
	good.UpdatedAt = time.Now()

	if err := s.goods.Update(ctx, good); err != nil {
		return nil, apperr.Internal("failed to update good", err)
	}

	resp := response.GoodToResponse(good)
	return &resp, nil
}

func (s *catalogService) DeleteGood(ctx context.Context, id uuid.UUID) error {
	good, err := s.goods.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to find good", err)
	}
	if good == nil {
		return apperr.NotFound("good not found")
	}

	if err := s.goods.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperr.Conflict("good is referenced by existing orders")
		}
		return apperr.Internal("failed to delete good", err)
	}

	return nil
}

func (s *catalogService) resolveCategory(ctx context.Context, raw string) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationField("category", "must be a valid UUID")
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return uuid.Nil, apperr.Internal("failed to find category", err)
	}
	if category == nil {
		return uuid.Nil, apperr.ValidationField("category", "category not found")
	}

	return categoryID, nil
}
