package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRecipient(
	r chi.Router,
	recipientHandler *adaptor.RecipientHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Users only ever reach their own recipients here.
	r.Route("/recipients", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/", recipientHandler.List)
		r.Post("/", recipientHandler.Create)
		r.Get("/{id}", recipientHandler.Get)
		r.Patch("/{id}", recipientHandler.Update)
		r.Delete("/{id}", recipientHandler.Delete)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/recipients", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", recipientHandler.AdminList)
		r.Post("/", recipientHandler.AdminCreate)
	})
}
