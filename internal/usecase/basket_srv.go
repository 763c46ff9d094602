package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BasketService manages the per-user basket. One line per good:
// adding a good that is already in the basket returns the existing
// line with its stored count, it does not bump it.
type BasketService interface {
	AddItem(ctx context.Context, userID uuid.UUID, req *request.AddBasketItemRequest) (*response.BasketItemResponse, error)
	GetItem(ctx context.Context, id, userID uuid.UUID) (*response.BasketItemResponse, error)
	ListItems(ctx context.Context, userID uuid.UUID) (*response.BasketListResponse, error)
	UpdateItem(ctx context.Context, id, userID uuid.UUID, req *request.UpdateBasketItemRequest) (*response.BasketItemResponse, error)
	RemoveItem(ctx context.Context, id, userID uuid.UUID) error
}

type basketService struct {
	items repository.BasketItemRepository
	goods repository.GoodRepository
	log   *zap.Logger
}

func NewBasketService(repo *repository.Repository, log *zap.Logger) BasketService {
	return &basketService{
		items: repo.BasketItem,
		goods: repo.Good,
		log:   log.With(zap.String("service", "basket")),
	}
}

func (s *basketService) AddItem(ctx context.Context, userID uuid.UUID, req *request.AddBasketItemRequest) (*response.BasketItemResponse, error) {
	// 1. The good must exist
	goodID, err := uuid.Parse(req.GoodID)
	if err != nil {
		return nil, apperr.ValidationField("goodId", "must be a valid UUID")
	}

	good, err := s.goods.FindByID(ctx, goodID)
	if err != nil {
		return nil, apperr.Internal("failed to find good", err)
	}
	if good == nil {
		return nil, apperr.NotFound("good not found")
	}

	// 2. Upsert; on a duplicate the stored count wins
	now := time.Now()
	item, err := s.items.Upsert(ctx, &entity.BasketItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		GoodID: goodID,
		Count:  req.Count,
	})
	if err != nil {
		return nil, apperr.Internal("failed to add basket item", err)
	}

	resp := response.BasketItemToResponse(item)
	return &resp, nil
}

func (s *basketService) GetItem(ctx context.Context, id, userID uuid.UUID) (*response.BasketItemResponse, error) {
	item, err := s.items.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, apperr.Internal("failed to find basket item", err)
	}
	if item == nil {
		return nil, apperr.NotFound("basket item not found")
	}

	resp := response.BasketItemToResponse(item)
	return &resp, nil
}

func (s *basketService) ListItems(ctx context.Context, userID uuid.UUID) (*response.BasketListResponse, error) {
	items, err := s.items.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("failed to list basket items", err)
	}

	resp := &response.BasketListResponse{
		TotalCount: int64(len(items)),
		Items:      make([]response.BasketItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, response.BasketItemToResponse(item))
	}

	return resp, nil
}

func (s *basketService) UpdateItem(ctx context.Context, id, userID uuid.UUID, req *request.UpdateBasketItemRequest) (*response.BasketItemResponse, error) {
	item, err := s.items.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, apperr.Internal("failed to find basket item", err)
	}
	if item == nil {
		return nil, apperr.NotFound("basket item not found")
	}

	if err := s.items.UpdateCount(ctx, id, *req.Count); err != nil {
		return nil, apperr.Internal("failed to update basket item", err)
	}

	item.Count = *req.Count
	item.UpdatedAt = time.Now()

	resp := response.BasketItemToResponse(item)
	return &resp, nil
}

func (s *basketService) RemoveItem(ctx context.Context, id, userID uuid.UUID) error {
	item, err := s.items.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return apperr.Internal("failed to find basket item", err)
	}
	if item == nil {
		return apperr.NotFound("basket item not found")
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperr.Conflict("basket item is referenced by existing checkouts")
		}
		return apperr.Internal("failed to remove basket item", err)
	}

	return nil
}
