package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipientService manages delivery recipients. Regular users only
// ever see their own rows; the admin surface sees and creates for
// anyone.
type RecipientService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateRecipientRequest) (*response.RecipientResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*response.RecipientResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]response.RecipientResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, req *request.UpdateRecipientRequest) (*response.RecipientResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	AdminCreate(ctx context.Context, req *request.AdminCreateRecipientRequest) (*response.RecipientResponse, error)
	AdminList(ctx context.Context) ([]response.RecipientResponse, error)
}

type recipientService struct {
	recipients repository.RecipientRepository
	users      repository.UserRepository
	log        *zap.Logger
}

func NewRecipientService(repo *repository.Repository, log *zap.Logger) RecipientService {
	return &recipientService{
		recipients: repo.Recipient,
		users:      repo.User,
		log:        log.With(zap.String("service", "recipient")),
	}
}

func (s *recipientService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateRecipientRequest) (*response.RecipientResponse, error) {
	recipient := newRecipient(userID, req)

	if err := s.recipients.Create(ctx, recipient); err != nil {
		return nil, apperr.Internal("failed to create recipient", err)
	}

	resp := response.RecipientToResponse(recipient)
	return &resp, nil
}

func (s *recipientService) Get(ctx context.Context, id, userID uuid.UUID) (*response.RecipientResponse, error) {
	recipient, err := s.recipients.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, apperr.Internal("failed to find recipient", err)
	}
	if recipient == nil {
		return nil, apperr.NotFound("recipient not found")
	}

	resp := response.RecipientToResponse(recipient)
	return &resp, nil
}

func (s *recipientService) ListByUser(ctx context.Context, userID uuid.UUID) ([]response.RecipientResponse, error) {
	recipients, err := s.recipients.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("failed to list recipients", err)
	}

	return recipientsToResponses(recipients), nil
}

func (s *recipientService) Update(ctx context.Context, id, userID uuid.UUID, req *request.UpdateRecipientRequest) (*response.RecipientResponse, error) {
	recipient, err := s.recipients.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, apperr.Internal("failed to find recipient", err)
	}
	if recipient == nil {
		return nil, apperr.NotFound("recipient not found")
	}

	if req.FirstName != nil {
		recipient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		recipient.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		recipient.MiddleName = req.MiddleName
	}
	if req.Address != nil {
		recipient.Address = *req.Address
	}
	if req.ZipCode != nil {
		recipient.ZipCode = *req.ZipCode
	}
	if req.Phone != nil {
		recipient.Phone = *req.Phone
	}
	recipient.UpdatedAt = time.Now()

	if err := s.recipients.Update(ctx, recipient); err != nil {
		return nil, apperr.Internal("failed to update recipient", err)
	}

	resp := response.RecipientToResponse(recipient)
	return &resp, nil
}

func (s *recipientService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	recipient, err := s.recipients.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return apperr.Internal("failed to find recipient", err)
	}
	if recipient == nil {
		return apperr.NotFound("recipient not found")
	}

	if err := s.recipients.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperr.Conflict("recipient is referenced by existing checkouts")
		}
		return apperr.Internal("failed to delete recipient", err)
	}

	return nil
}

func (s *recipientService) AdminCreate(ctx context.Context, req *request.AdminCreateRecipientRequest) (*response.RecipientResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperr.ValidationField("user", "must be a valid UUID")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.ValidationField("user", "user not found")
	}

	recipient := newRecipient(userID, &req.CreateRecipientRequest)

	if err := s.recipients.Create(ctx, recipient); err != nil {
		return nil, apperr.Internal("failed to create recipient", err)
	}

	resp := response.RecipientToResponse(recipient)
	return &resp, nil
}

func (s *recipientService) AdminList(ctx context.Context) ([]response.RecipientResponse, error) {
	recipients, err := s.recipients.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list recipients", err)
	}

	return recipientsToResponses(recipients), nil
}

func newRecipient(userID uuid.UUID, req *request.CreateRecipientRequest) *entity.Recipient {
	now := time.Now()
	return &entity.Recipient{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Address:    req.Address,
		ZipCode:    req.ZipCode,
		Phone:      req.Phone,
	}
}

func recipientsToResponses(recipients []*entity.Recipient) []response.RecipientResponse {
	items := make([]response.RecipientResponse, 0, len(recipients))
	for _, recipient := range recipients {
		items = append(items, response.RecipientToResponse(recipient))
	}
	return items
}
