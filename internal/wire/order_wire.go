package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	checkoutHandler *adaptor.CheckoutHandler,
	transactionHandler *adaptor.TransactionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/checkouts", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/", checkoutHandler.List)
		r.Post("/", checkoutHandler.Create)
		r.Get("/{id}", checkoutHandler.Get)
		r.Patch("/{id}", checkoutHandler.Update)
		r.Delete("/{id}", checkoutHandler.Delete)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/", transactionHandler.List)
		r.Post("/", transactionHandler.Create)
		r.Get("/{id}", transactionHandler.Get)
		r.Patch("/{id}", transactionHandler.Update)
		r.Delete("/{id}", transactionHandler.Delete)
	})
}
