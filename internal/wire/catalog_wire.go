package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	categoryHandler *adaptor.GoodCategoryHandler,
	goodHandler *adaptor.GoodHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The catalog is open: browsing and managing it needs no account.
	r.Route("/good-categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
		r.Get("/{id}", categoryHandler.Get)
		r.Patch("/{id}", categoryHandler.Update)
		r.Delete("/{id}", categoryHandler.Delete)
	})

	r.Route("/goods", func(r chi.Router) {
		r.Get("/", goodHandler.List)
		r.Post("/", goodHandler.Create)
		r.Get("/{id}", goodHandler.Get)
		r.Patch("/{id}", goodHandler.Update)
		r.Delete("/{id}", goodHandler.Delete)
	})
}
