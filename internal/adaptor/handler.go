package adaptor

import (
	"encoding/json"
	"net/http"

	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	GoodCategory *GoodCategoryHandler
	Good         *GoodHandler
	Method       *MethodHandler
	Recipient    *RecipientHandler
	Basket       *BasketHandler
	Checkout     *CheckoutHandler
	Transaction  *TransactionHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, config, log),
		GoodCategory: NewGoodCategoryHandler(service.Catalog, log),
		Good:         NewGoodHandler(service.Catalog, log),
		Method:       NewMethodHandler(service.Method, log),
		Recipient:    NewRecipientHandler(service.Recipient, log),
		Basket:       NewBasketHandler(service.Basket, log),
		Checkout:     NewCheckoutHandler(service.Order, log),
		Transaction:  NewTransactionHandler(service.Order, log),
	}
}

// decodeBody decodes the JSON body into dst, writing the 400 itself
// on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// validateBody runs struct validation, writing the 400 itself on
// failure.
func validateBody(w http.ResponseWriter, req any) bool {
	if errors := utils.ValidateStruct(req); errors != nil {
		utils.ResponseBadRequest(w, "Validation failed", errors)
		return false
	}
	return true
}

// idParam parses the {id} route parameter, writing the 400 itself on
// failure.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pageParam reads the ?page query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	return utils.ParseInt(r.URL.Query().Get("page"), 1)
}

// userFromContext pulls the authenticated user out of the request
// context, writing the 401 itself when it is missing.
func userFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}
