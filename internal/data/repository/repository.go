package repository

import (
	"marketplace-api/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	OTP            OTPRepository
	OTPLimit       OTPLimiter
	GoodCategory   GoodCategoryRepository
	Good           GoodRepository
	PaymentMethod  PaymentMethodRepository
	DeliveryMethod DeliveryMethodRepository
	Recipient      RecipientRepository
	BasketItem     BasketItemRepository
	Checkout       CheckoutRepository
	Transaction    TransactionRepository
}

func NewRepository(db database.PgxIface, rdb *redis.Client, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		OTP:            NewOTPRepository(db, log),
		OTPLimit:       NewOTPLimiter(rdb, log),
		GoodCategory:   NewGoodCategoryRepository(db, log),
		Good:           NewGoodRepository(db, log),
		PaymentMethod:  NewPaymentMethodRepository(db, log),
		DeliveryMethod: NewDeliveryMethodRepository(db, log),
		Recipient:      NewRecipientRepository(db, log),
		BasketItem:     NewBasketItemRepository(db, log),
		Checkout:       NewCheckoutRepository(db, log),
		Transaction:    NewTransactionRepository(db, log),
	}
}
