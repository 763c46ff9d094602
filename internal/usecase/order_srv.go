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
	CheckoutsPerPage    = 10
	TransactionsPerPage = 10
)

// OrderService covers checkouts and the payment transactions recorded
// against them.
type OrderService interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, req *request.CreateCheckoutRequest) (*response.CheckoutResponse, error)
	GetCheckout(ctx context.Context, id uuid.UUID) (*response.CheckoutResponse, error)
	ListCheckouts(ctx context.Context, basePath string, page int) (*response.ListResponse[response.CheckoutResponse], error)
	UpdateCheckout(ctx context.Context, id uuid.UUID, req *request.UpdateCheckoutRequest) (*response.CheckoutResponse, error)
	DeleteCheckout(ctx context.Context, id uuid.UUID) error

	CreateTransaction(ctx context.Context, req *request.CreateTransactionRequest) (*response.TransactionResponse, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*response.TransactionResponse, error)
	ListTransactions(ctx context.Context, basePath string, page int) (*response.ListResponse[response.TransactionResponse], error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, req *request.UpdateTransactionRequest) (*response.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	checkouts    repository.CheckoutRepository
	transactions repository.TransactionRepository
	recipients   repository.RecipientRepository
	baskets      repository.BasketItemRepository
	payments     repository.PaymentMethodRepository
	deliveries   repository.DeliveryMethodRepository
	log          *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		checkouts:    repo.Checkout,
		transactions: repo.Transaction,
		recipients:   repo.Recipient,
		baskets:      repo.BasketItem,
		payments:     repo.PaymentMethod,
		deliveries:   repo.DeliveryMethod,
		log:          log.With(zap.String("service", "order")),
	}
}

// ==================== CHECKOUTS ====================

func (s *orderService) CreateCheckout(ctx context.Context, userID uuid.UUID, req *request.CreateCheckoutRequest) (*response.CheckoutResponse, error) {
	// 1. Resolve and verify every referenced row
	recipientID, err := s.resolveRecipient(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	basketItemID, err := s.resolveBasketItem(ctx, req.BasketItemID)
	if err != nil {
		return nil, err
	}
	paymentMethodID, err := s.resolvePaymentMethod(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	deliveryMethodID, err := s.resolveDeliveryMethod(ctx, req.DeliveryMethodID)
	if err != nil {
		return nil, err
	}

	// 2. Persist the snapshot
	now := time.Now()
	checkout := &entity.Checkout{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           userID,
		RecipientID:      recipientID,
		BasketItemID:     basketItemID,
		PaymentMethodID:  paymentMethodID,
		DeliveryMethodID: deliveryMethodID,
		PaymentTotal:     req.PaymentTotal,
	}

	if err := s.checkouts.Create(ctx, checkout); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.Conflict("a referenced row was removed concurrently")
		}
		return nil, apperr.Internal("failed to create checkout", err)
	}

	s.log.Info("Checkout created",
		zap.String("checkout_id", checkout.ID.String()),
		zap.String("user_id", userID.String()),
	)

	resp := response.CheckoutToResponse(checkout)
	return &resp, nil
}

func (s *orderService) GetCheckout(ctx context.Context, id uuid.UUID) (*response.CheckoutResponse, error) {
	checkout, err := s.checkouts.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find checkout", err)
	}
	if checkout == nil {
		return nil, apperr.NotFound("checkout not found")
	}

	resp := response.CheckoutToResponse(checkout)
	return &resp, nil
}

func (s *orderService) ListCheckouts(ctx context.Context, basePath string, page int) (*response.ListResponse[response.CheckoutResponse], error) {
	total, err := s.checkouts.CountAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count checkouts", err)
	}

	offset := utils.CalculateOffset(page, CheckoutsPerPage)
	checkouts, err := s.checkouts.FindAll(ctx, CheckoutsPerPage, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list checkouts", err)
	}

	items := make([]response.CheckoutResponse, 0, len(checkouts))
	for _, checkout := range checkouts {
		items = append(items, response.CheckoutToResponse(checkout))
	}

	return response.NewListResponse(items, total, basePath, page, CheckoutsPerPage), nil
}

func (s *orderService) UpdateCheckout(ctx context.Context, id uuid.UUID, req *request.UpdateCheckoutRequest) (*response.CheckoutResponse, error) {
	checkout, err := s.checkouts.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find checkout", err)
	}
	if checkout == nil {
		return nil, apperr.NotFound("checkout not found")
	}

	if req.RecipientID != nil {
		recipientID, err := s.resolveRecipient(ctx, *req.RecipientID)
		if err != nil {
			return nil, err
		}
		checkout.RecipientID = recipientID
	}
	if req.BasketItemID != nil {
		basketItemID, err := s.resolveBasketItem(ctx, *req.BasketItemID)
		if err != nil {
			return nil, err
		}
		checkout.BasketItemID = basketItemID
	}
	if req.PaymentMethodID != nil {
		paymentMethodID, err := s.resolvePaymentMethod(ctx, *req.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		checkout.PaymentMethodID = paymentMethodID
	}
	if req.DeliveryMethodID != nil {
		deliveryMethodID, err := s.resolveDeliveryMethod(ctx, *req.DeliveryMethodID)
		if err != nil {
			return nil, err
		}
		checkout.DeliveryMethodID = deliveryMethodID
	}
	if req.PaymentTotal != nil {
		checkout.PaymentTotal = *req.PaymentTotal
	}
	checkout.UpdatedAt = time.Now()

	if err := s.checkouts.Update(ctx, checkout); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.Conflict("a referenced row was removed concurrently")
		}
		return nil, apperr.Internal("failed to update checkout", err)
	}

	resp := response.CheckoutToResponse(checkout)
	return &resp, nil
}

// DeleteCheckout removes the checkout and, through the schema, its
// transactions.
func (s *orderService) DeleteCheckout(ctx context.Context, id uuid.UUID) error {
	checkout, err := s.checkouts.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to find checkout", err)
	}
	if checkout == nil {
		return apperr.NotFound("checkout not found")
	}

	if err := s.checkouts.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete checkout", err)
	}

	return nil
}

// ==================== TRANSACTIONS ====================

func (s *orderService) CreateTransaction(ctx context.Context, req *request.CreateTransactionRequest) (*response.TransactionResponse, error) {
	checkoutID, err := s.resolveCheckout(ctx, req.CheckoutID)
	if err != nil {
		return nil, err
	}

	status := entity.TransactionStatusPending
	if req.Status != nil {
		status = entity.TransactionStatus(*req.Status)
	}

	now := time.Now()
	tx := &entity.Transaction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CheckoutID:   checkoutID,
		Status:       status,
		Amount:       req.Amount,
		ProviderData: req.ProviderData,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.Conflict("checkout was removed concurrently")
		}
		return nil, apperr.Internal("failed to create transaction", err)
	}

	resp := response.TransactionToResponse(tx)
	return &resp, nil
}

func (s *orderService) GetTransaction(ctx context.Context, id uuid.UUID) (*response.TransactionResponse, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find transaction", err)
	}
	if tx == nil {
		return nil, apperr.NotFound("transaction not found")
	}

	resp := response.TransactionToResponse(tx)
	return &resp, nil
}

func (s *orderService) ListTransactions(ctx context.Context, basePath string, page int) (*response.ListResponse[response.TransactionResponse], error) {
	total, err := s.transactions.CountAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count transactions", err)
	}

	offset := utils.CalculateOffset(page, TransactionsPerPage)
	transactions, err := s.transactions.FindAll(ctx, TransactionsPerPage, offset)
	if err != nil {
		return nil, apperr.Internal("failed to list transactions", err)
	}

	items := make([]response.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, response.TransactionToResponse(tx))
	}

	return response.NewListResponse(items, total, basePath, page, TransactionsPerPage), nil
}

func (s *orderService) UpdateTransaction(ctx context.Context, id uuid.UUID, req *request.UpdateTransactionRequest) (*response.TransactionResponse, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to find transaction", err)
	}
	if tx == nil {
		return nil, apperr.NotFound("transaction not found")
	}

	if req.CheckoutID != nil {
		checkoutID, err := s.resolveCheckout(ctx, *req.CheckoutID)
		if err != nil {
			return nil, err
		}
		tx.CheckoutID = checkoutID
	}
	if req.Status != nil {
		tx.Status = entity.TransactionStatus(*req.Status)
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.ProviderData != nil {
		tx.ProviderData = req.ProviderData
	}
	tx.UpdatedAt = time.Now()

	if err := s.transactions.Update(ctx, tx); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.Conflict("checkout was removed concurrently")
		}
		return nil, apperr.Internal("failed to update transaction", err)
	}

	resp := response.TransactionToResponse(tx)
	return &resp, nil
}

func (s *orderService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to find transaction", err)
	}
	if tx == nil {
		return apperr.NotFound("transaction not found")
	}

	if err := s.transactions.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete transaction", err)
	}

	return nil
}

// ==================== REFERENCE RESOLUTION ====================

func (s *orderService) resolveRecipient(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationField("recipient", "must be a valid UUID")
	}

	recipient, err := s.recipients.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, apperr.Internal("failed to find recipient", err)
	}
	if recipient == nil {
		return uuid.Nil, apperr.ValidationField("recipient", "recipient not found")
	}

	return id, nil
}

// Referenced rows are checked for existence only, not for ownership by
// the caller. Matches the recipient and method paths above.
func (s *orderService) resolveBasketItem(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationField("basket", "must be a valid UUID")
	}

	item, err := s.baskets.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, apperr.Internal("failed to find basket item", err)
	}
	if item == nil {
		return uuid.Nil, apperr.ValidationField("basket", "basket item not found")
	}

	return id, nil
}

func (s *orderService) resolvePaymentMethod(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationField("payment_method", "must be a valid UUID")
	}

	method, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, apperr.Internal("failed to find payment method", err)
	}
	if method == nil {
		return uuid.Nil, apperr.ValidationField("payment_method", "payment method not found")
	}

	return id, nil
}

func (s *orderService) resolveDeliveryMethod(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationField("delivery_method", "must be a valid UUID")
	}

	method, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, apperr.Internal("failed to find delivery method", err)
	}
	if method == nil {
		return uuid.Nil, apperr.ValidationField("delivery_method", "delivery method not found")
	}

	return id, nil
}

func (s *orderService) resolveCheckout(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationField("checkout", "must be a valid UUID")
	}

	checkout, err := s.checkouts.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, apperr.Internal("failed to find checkout", err)
	}
	if checkout == nil {
		return uuid.Nil, apperr.ValidationField("checkout", "checkout not found")
	}

	return id, nil
}
