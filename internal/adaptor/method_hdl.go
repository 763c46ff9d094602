package adaptor

import (
	"context"
	"net/http"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MethodHandler serves both payment and delivery methods; the two
// route groups differ only in which service methods they hit.
type MethodHandler struct {
	service usecase.MethodService
	log     *zap.Logger
}

func NewMethodHandler(service usecase.MethodService, log *zap.Logger) *MethodHandler {
	return &MethodHandler{
		service: service,
		log:     log.With(zap.String("handler", "method")),
	}
}

type methodOps struct {
	label  string
	create func(context.Context, *request.CreateMethodRequest) (*response.MethodResponse, error)
	get    func(context.Context, uuid.UUID) (*response.MethodResponse, error)
	list   func(context.Context) ([]response.MethodResponse, error)
	update func(context.Context, uuid.UUID, *request.UpdateMethodRequest) (*response.MethodResponse, error)
	delete func(context.Context, uuid.UUID) error
}

func (h *MethodHandler) paymentOps() methodOps {
	return methodOps{
		label:  "Payment method",
		create: h.service.CreatePaymentMethod,
		get:    h.service.GetPaymentMethod,
		list:   h.service.ListPaymentMethods,
		update: h.service.UpdatePaymentMethod,
		delete: h.service.DeletePaymentMethod,
	}
}

func (h *MethodHandler) deliveryOps() methodOps {
	return methodOps{
		label:  "Delivery method",
		create: h.service.CreateDeliveryMethod,
		get:    h.service.GetDeliveryMethod,
		list:   h.service.ListDeliveryMethods,
		update: h.service.UpdateDeliveryMethod,
		delete: h.service.DeleteDeliveryMethod,
	}
}

// CreatePayment handles POST /payment-methods
func (h *MethodHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.paymentOps())
}

// GetPayment handles GET /payment-methods/{id}
func (h *MethodHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, h.paymentOps())
}

// ListPayment handles GET /payment-methods
func (h *MethodHandler) ListPayment(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.paymentOps())
}

// UpdatePayment handles PATCH /payment-methods/{id}
func (h *MethodHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.paymentOps())
}

// DeletePayment handles DELETE /payment-methods/{id}
func (h *MethodHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.paymentOps())
}

// CreateDelivery handles POST /delivery-methods
func (h *MethodHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.deliveryOps())
}

// GetDelivery handles GET /delivery-methods/{id}
func (h *MethodHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, h.deliveryOps())
}

// ListDelivery handles GET /delivery-methods
func (h *MethodHandler) ListDelivery(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.deliveryOps())
}

// UpdateDelivery handles PATCH /delivery-methods/{id}
func (h *MethodHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.deliveryOps())
}

// DeleteDelivery handles DELETE /delivery-methods/{id}
func (h *MethodHandler) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.deliveryOps())
}

func (h *MethodHandler) create(w http.ResponseWriter, r *http.Request, ops methodOps) {
	var req request.CreateMethodRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	method, err := ops.create(r.Context(), &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseCreated(w, ops.label+" created", method)
}

func (h *MethodHandler) get(w http.ResponseWriter, r *http.Request, ops methodOps) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	method, err := ops.get(r.Context(), id)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, ops.label+" retrieved", method)
}

func (h *MethodHandler) list(w http.ResponseWriter, r *http.Request, ops methodOps) {
	methods, err := ops.list(r.Context())
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, ops.label+"s retrieved", methods)
}

func (h *MethodHandler) update(w http.ResponseWriter, r *http.Request, ops methodOps) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateMethodRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	method, err := ops.update(r.Context(), id, &req)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, ops.label+" updated", method)
}

func (h *MethodHandler) delete(w http.ResponseWriter, r *http.Request, ops methodOps) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := ops.delete(r.Context(), id); err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, ops.label+" deleted", nil)
}
