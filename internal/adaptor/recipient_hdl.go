package adaptor

import (
	"net/http"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type RecipientHandler struct {
	service usecase.RecipientService
	log     *zap.Logger
}

func NewRecipientHandler(service usecase.RecipientService, log *zap.Logger) *RecipientHandler {
	return &RecipientHandler{
		service: service,
		log:     log.With(zap.String("handler", "recipient")),
	}
}

// Create handles POST /recipients
func (h *RecipientHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	var req request.CreateRecipientRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	recipient, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, "Recipient created", recipient)
}

// Get handles GET /recipients/{id}
func (h *RecipientHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	recipient, err := h.service.Get(r.Context(), id, userID)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Recipient retrieved", recipient)
}

// List handles GET /recipients
func (h *RecipientHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	recipients, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Recipients retrieved", recipients)
}

// Update handles PATCH /recipients/{id}
func (h *RecipientHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateRecipientRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	recipient, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Recipient updated", recipient)
}

// Delete handles DELETE /recipients/{id}
func (h *RecipientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Recipient deleted", nil)
}

// AdminCreate handles POST /admin/recipients
func (h *RecipientHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req request.AdminCreateRecipientRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	recipient, err := h.service.AdminCreate(r.Context(), &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, "Recipient created", recipient)
}

// AdminList handles GET /admin/recipients
func (h *RecipientHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.service.AdminList(r.Context())
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Recipients retrieved", recipients)
}
