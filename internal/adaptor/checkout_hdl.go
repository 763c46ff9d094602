package adaptor

import (
	"net/http"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.OrderService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// Create handles POST /checkouts
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	var req request.CreateCheckoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	checkout, err := h.service.CreateCheckout(r.Context(), userID, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, "Checkout created", checkout)
}

// Get handles GET /checkouts/{id}
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	checkout, err := h.service.GetCheckout(r.Context(), id)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Checkout retrieved", checkout)
}

// List handles GET /checkouts?page=N
func (h *CheckoutHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListCheckouts(r.Context(), r.URL.Path, pageParam(r))
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Checkouts retrieved", list)
}

// Update handles PATCH /checkouts/{id}
func (h *CheckoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateCheckoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	checkout, err := h.service.UpdateCheckout(r.Context(), id, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Checkout updated", checkout)
}

// Delete handles DELETE /checkouts/{id}
func (h *CheckoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCheckout(r.Context(), id); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Checkout deleted", nil)
}
