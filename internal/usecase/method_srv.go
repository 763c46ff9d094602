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

// MethodService covers the payment and delivery method reference data.
// The two sets share shapes but live in separate tables.
type MethodService interface {
	CreatePaymentMethod(ctx context.Context, req *request.CreateMethodRequest) (*response.MethodResponse, error)
	GetPaymentMethod(ctx context.Context, id uuid.UUID) (*response.MethodResponse, error)
	ListPaymentMethods(ctx context.Context) ([]response.MethodResponse, error)
	UpdatePaymentMethod(ctx context.Context, id uuid.UUID, req *request.UpdateMethodRequest) (*response.MethodResponse, error)
	DeletePaymentMethod(ctx context.Context, id uuid.UUID) error

	CreateDeliveryMethod(ctx context.Context, req *request.CreateMethodRequest) (*response.MethodResponse, error)
	GetDeliveryMethod(ctx context.Context, id uuid.UUID) (*response.MethodResponse, error)
	ListDeliveryMethods(ctx context.Context) ([]response.MethodResponse, error)
	UpdateDeliveryMethod(ctx context.Context, id uuid.UUID, req *request.UpdateMethodRequest) (*response.MethodResponse, error)
	DeleteDeliveryMethod(ctx context.Context, id uuid.UUID) error
}

type methodService struct {
	payments   repository.PaymentMethodRepository
	deliveries repository.DeliveryMethodRepository
	log        *zap.Logger
}

func NewMethodService(repo *repository.Repository, log *zap.Logger) MethodService {
	return &methodService{
		payments:   repo.PaymentMethod,
		deliveries: repo.DeliveryMethod,
		log:        log.With(zap.String("service", "method")),
	}
}

// ==================== PAYMENT METHODS ====================

func (s *methodService) CreatePaymentMethod(ctx context.Context, req *request.CreateMethodRequest) (*response.MethodResponse, error) {
	now := time.Now()
	method := &entity.PaymentMethod{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.payments.Create(ctx, method); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ValidationField("title", "payment method with this title already exists")
		}
		return nil, apperr.Internal("failed to create payment method", err)
	}

	resp := response.PaymentMethodToResponse(method)
	return &resp, nil
}

func (s *methodService) GetPaymentMethod(ctx context.Context, id uuid.UUID) (*response.MethodResponse, error) {
	method, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find payment method", err)
	}
	if method == nil {
		return nil, apperr.NotFound("payment method not found")
	}

	resp := response.PaymentMethodToResponse(method)
	return &resp, nil
}

func (s *methodService) ListPaymentMethods(ctx context.Context) ([]response.MethodResponse, error) {
	methods, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list payment methods", err)
	}

	items := make([]response.MethodResponse, 0, len(methods))
	for _, method := range methods {
		items = append(items, response.PaymentMethodToResponse(method))
	}

	return items, nil
}

func (s *methodService) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, req *request.UpdateMethodRequest) (*response.MethodResponse, error) {
	method, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find payment method", err)
	}
	if method == nil {
		return nil, apperr.NotFound("payment method not found")
	}

	if req.Title != nil {
		method.Title = *req.Title
	}
	if req.Description != nil {
		method.Description = *req.Description
	}
	method.UpdatedAt = time.Now()

	if err := s.payments.Update(ctx, method); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ValidationField("title", "payment method with this title already exists")
		}
		return nil, apperr.Internal("failed to update payment method", err)
	}

	resp := response.PaymentMethodToResponse(method)
	return &resp, nil
}

func (s *methodService) DeletePaymentMethod(ctx context.Context, id uuid.UUID) error {
	method, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to find payment method", err)
	}
	if method == nil {
		return apperr.NotFound("payment method not found")
	}

	if err := s.payments.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperr.Conflict("payment method is referenced by existing checkouts")
		}
		return apperr.Internal("failed to delete payment method", err)
	}

	return nil
}

// ==================== DELIVERY METHODS ====================

func (s *methodService) CreateDeliveryMethod(ctx context.Context, req *request.CreateMethodRequest) (*response.MethodResponse, error) {
	now := time.Now()
	method := &entity.DeliveryMethod{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.deliveries.Create(ctx, method); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ValidationField("title", "delivery method with this title already exists")
		}
		return nil, apperr.Internal("failed to create delivery method", err)
	}

	resp := response.DeliveryMethodToResponse(method)
	return &resp, nil
}

func (s *methodService) GetDeliveryMethod(ctx context.Context, id uuid.UUID) (*response.MethodResponse, error) {
	method, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find delivery method", err)
	}
	if method == nil {
		return nil, apperr.NotFound("delivery method not found")
	}

	resp := response.DeliveryMethodToResponse(method)
	return &resp, nil
}

func (s *methodService) ListDeliveryMethods(ctx context.Context) ([]response.MethodResponse, error) {
	methods, err := s.deliveries.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list delivery methods", err)
	}

	items := make([]response.MethodResponse, 0, len(methods))
	for _, method := range methods {
		items = append(items, response.DeliveryMethodToResponse(method))
	}

	return items, nil
}

func (s *methodService) UpdateDeliveryMethod(ctx context.Context, id uuid.UUID, req *request.UpdateMethodRequest) (*response.MethodResponse, error) {
	method, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find delivery method", err)
	}
	if method == nil {
		return nil, apperr.NotFound("delivery method not found")
	}

	if req.Title != nil {
		method.Title = *req.Title
	}
	if req.Description != nil {
		method.Description = *req.Description
	}
	method.UpdatedAt = time.Now()

	if err := s.deliveries.Update(ctx, method); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.ValidationField("title", "delivery method with this title already exists")
		}
		return nil, apperr.Internal("failed to update delivery method", err)
	}

	resp := response.DeliveryMethodToResponse(method)
	return &resp, nil
}

func (s *methodService) DeleteDeliveryMethod(ctx context.Context, id uuid.UUID) error {
	method, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to find delivery method", err)
	}
	if method == nil {
		return apperr.NotFound("delivery method not found")
	}

	if err := s.deliveries.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperr.Conflict("delivery method is referenced by existing checkouts")
		}
		return apperr.Internal("failed to delete delivery method", err)
	}

	return nil
}
