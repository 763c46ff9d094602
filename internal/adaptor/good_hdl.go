package adaptor

import (
	"net/http"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type GoodHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewGoodHandler(service usecase.CatalogService, log *zap.Logger) *GoodHandler {
	return &GoodHandler{
		service: service,
		log:     log.With(zap.String("handler", "good")),
	}
}

// Create handles POST /goods
func (h *GoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGoodRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	good, err := h.service.CreateGood(r.Context(), &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, "Good created", good)
}

// Get handles GET /goods/{id}
func (h *GoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	good, err := h.service.GetGood(r.Context(), id)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Good retrieved", good)
}

// List handles GET /goods?page=N
func (h *GoodHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListGoods(r.Context(), r.URL.Path, pageParam(r))
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Goods retrieved", list)
}

// Update handles PATCH /goods/{id}
func (h *GoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateGoodRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	good, err := h.service.UpdateGood(r.Context(), id, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Good updated", good)
}

// Delete handles DELETE /goods/{id}
func (h *GoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteGood(r.Context(), id); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Good deleted", nil)
}
