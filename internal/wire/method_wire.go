package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMethod(
	r chi.Router,
	methodHandler *adaptor.MethodHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/payment-methods", func(r chi.Router) {
		r.Get("/", methodHandler.ListPayment)
		r.Post("/", methodHandler.CreatePayment)
		r.Get("/{id}", methodHandler.GetPayment)
		r.Patch("/{id}", methodHandler.UpdatePayment)
		r.Delete("/{id}", methodHandler.DeletePayment)
	})

	r.Route("/delivery-methods", func(r chi.Router) {
		r.Get("/", methodHandler.ListDelivery)
		r.Post("/", methodHandler.CreateDelivery)
		r.Get("/{id}", methodHandler.GetDelivery)
		r.Patch("/{id}", methodHandler.UpdateDelivery)
		r.Delete("/{id}", methodHandler.DeleteDelivery)
	})
}
