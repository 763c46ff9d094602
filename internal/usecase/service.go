package usecase

import (
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/mailer"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Catalog   CatalogService
	Method    MethodService
	Recipient RecipientService
	Basket    BasketService
	Order     OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, mail, log),
		Catalog:   NewCatalogService(repo, log),
		Method:    NewMethodService(repo, log),
		Recipient: NewRecipientService(repo, log),
		Basket:    NewBasketService(repo, log),
		Order:     NewOrderService(repo, log),
	}
}
