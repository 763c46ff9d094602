package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBasketService struct {
	item       *response.BasketItemResponse
	lastUserID uuid.UUID
	lastItemID uuid.UUID
}

func (s *stubBasketService) AddItem(_ context.Context, userID uuid.UUID, req *request.AddBasketItemRequest) (*response.BasketItemResponse, error) {
	s.lastUserID = userID
	return s.item, nil
}

func (s *stubBasketService) GetItem(_ context.Context, id, userID uuid.UUID) (*response.BasketItemResponse, error) {
	s.lastItemID = id
	s.lastUserID = userID
	return s.item, nil
}

func (s *stubBasketService) ListItems(_ context.Context, userID uuid.UUID) (*response.BasketListResponse, error) {
	s.lastUserID = userID
	return &response.BasketListResponse{Items: []response.BasketItemResponse{}}, nil
}

func (s *stubBasketService) UpdateItem(_ context.Context, id, userID uuid.UUID, req *request.UpdateBasketItemRequest) (*response.BasketItemResponse, error) {
	s.lastItemID = id
	s.lastUserID = userID
	return s.item, nil
}

func (s *stubBasketService) RemoveItem(_ context.Context, id, userID uuid.UUID) error {
	s.lastItemID = id
	s.lastUserID = userID
	return nil
}

func basketRouter(stub *stubBasketService) *chi.Mux {
	handler := NewBasketHandler(stub, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/me/basket-items/{id}", handler.Get)
	r.Post("/me/basket-items", handler.Add)
	return r
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := utils.SetUserContext(req.Context(), userID, "a@b.com")
	return req.WithContext(ctx)
}

func TestBasketGet_RoutesIDAndUser(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	userID := uuid.New()
	stub := &stubBasketService{item: &response.BasketItemResponse{ID: itemID.String(), Count: 2}}

	req := withUser(httptest.NewRequest(http.MethodGet, "/me/basket-items/"+itemID.String(), nil), userID)
	rec := httptest.NewRecorder()
	basketRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, itemID, stub.lastItemID)
	assert.Equal(t, userID, stub.lastUserID)
}

func TestBasketGet_BadID(t *testing.T) {
	t.Parallel()

	stub := &stubBasketService{}

	req := withUser(httptest.NewRequest(http.MethodGet, "/me/basket-items/not-a-uuid", nil), uuid.New())
	rec := httptest.NewRecorder()
	basketRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, uuid.Nil, stub.lastItemID)
}

func TestBasketAdd_NoUserInContext(t *testing.T) {
	t.Parallel()

	stub := &stubBasketService{}

	req := httptest.NewRequest(http.MethodPost, "/me/basket-items", strings.NewReader(`{"goodId":"x","count":1}`))
	rec := httptest.NewRecorder()
	basketRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasketAdd_CountValidation(t *testing.T) {
	t.Parallel()

	stub := &stubBasketService{}
	goodID := uuid.New().String()

	req := withUser(postJSON("/me/basket-items", `{"goodId":"`+goodID+`","count":0}`), uuid.New())
	rec := httptest.NewRecorder()
	basketRouter(stub).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope["errors"], "Count")
}
