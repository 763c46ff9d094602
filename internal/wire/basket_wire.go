package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBasket(
	r chi.Router,
	basketHandler *adaptor.BasketHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/me/basket-items", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/", basketHandler.List)
		r.Post("/", basketHandler.Add)
		r.Get("/{id}", basketHandler.Get)
		r.Patch("/{id}", basketHandler.Update)
		r.Delete("/{id}", basketHandler.Remove)
	})
}
