package adaptor

import (
	"net/http"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type BasketHandler struct {
	service usecase.BasketService
	log     *zap.Logger
}

func NewBasketHandler(service usecase.BasketService, log *zap.Logger) *BasketHandler {
	return &BasketHandler{
		service: service,
		log:     log.With(zap.String("handler", "basket")),
	}
}

// Add handles POST /me/basket-items
func (h *BasketHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	var req request.AddBasketItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	item, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, "Basket item added", item)
}

// Get handles GET /me/basket-items/{id}
func (h *BasketHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetItem(r.Context(), id, userID)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Basket item retrieved", item)
}

// List handles GET /me/basket-items
func (h *BasketHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListItems(r.Context(), userID)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Basket retrieved", list)
}

// Update handles PATCH /me/basket-items/{id}
func (h *BasketHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateBasketItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, userID, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Basket item updated", item)
}

// Remove handles DELETE /me/basket-items/{id}
func (h *BasketHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(r.Context(), id, userID); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Basket item removed", nil)
}
