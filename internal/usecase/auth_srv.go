package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperr"
	"marketplace-api/pkg/mailer"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const loginCodeSubject = "Your login code"

type AuthService interface {
	IssueCode(ctx context.Context, req *request.LoginRequest) error
	ConfirmCode(ctx context.Context, req *request.ConfirmRequest) (*response.TokenPair, error)
}

type authService struct {
	users   repository.UserRepository
	otps    repository.OTPRepository
	limiter repository.OTPLimiter
	mail    mailer.Mailer
	config  *utils.Config
	log     *zap.Logger

	// injectable for tests
	genCode func() string
	now     func() time.Time
}

func NewAuthService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) AuthService {
	return &authService{
		users:   repo.User,
		otps:    repo.OTP,
		limiter: repo.OTPLimit,
		mail:    mail,
		config:  config,
		log:     log.With(zap.String("service", "auth")),
		genCode: utils.GenerateLoginCode,
		now:     time.Now,
	}
}

// IssueCode stores a fresh login code for the email and dispatches it.
// Issuing never reveals whether the email belongs to a known user.
func (s *authService) IssueCode(ctx context.Context, req *request.LoginRequest) error {
	// 1. Rate limit per email
	allowed, err := s.limiter.Allow(ctx, req.Email, s.config.OTP.RequestsPerHour)
	if err != nil {
		return apperr.Internal("failed to check rate limit", err)
	}
	if !allowed {
		return apperr.RateLimited("too many login code requests, try again later")
	}

	// 2. Store the code
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Email: req.Email,
		Code:  s.genCode(),
	}

	if err := s.otps.Create(ctx, otp); err != nil {
		return apperr.Internal("failed to store login code", err)
	}

	// 3. Dispatch the mail off the request path; a slow SMTP server
	// must not stall the response.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		body := fmt.Sprintf("Your login code is %s. It is valid for %d minutes.",
			otp.Code, s.config.OTP.ExpiryMinutes)
		if err := s.mail.Send(sendCtx, otp.Email, loginCodeSubject, body); err != nil {
			s.log.Error("Failed to send login code",
				zap.Error(err),
				zap.String("email", otp.Email),
			)
		}
	}()

	return nil
}

// ConfirmCode exchanges a valid (email, code) pair for a token pair,
// creating the user on first login. A code is single use: the row is
// deleted on success, and the delete doubles as the race arbiter when
// two confirms carry the same code.
func (s *authService) ConfirmCode(ctx context.Context, req *request.ConfirmRequest) (*response.TokenPair, error) {
	// 1. Look up the newest matching code
	otp, err := s.otps.FindLatest(ctx, req.Email, req.OTP)
	if err != nil {
		return nil, apperr.Internal("failed to look up login code", err)
	}
	if otp == nil {
		return nil, apperr.NotFound("login code not found")
	}

	// 2. Reject expired codes without deleting them
	expiry := time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute
	if s.now().Sub(otp.CreatedAt) >= expiry {
		return nil, apperr.Expired("login code expired")
	}

	// 3. Consume the code exactly once
	deleted, err := s.otps.DeleteByID(ctx, otp.ID)
	if err != nil {
		return nil, apperr.Internal("failed to consume login code", err)
	}
	if !deleted {
		return nil, apperr.NotFound("login code not found")
	}

	// 4. First confirm creates the account
	user, err := s.users.GetOrCreate(ctx, &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Email:    req.Email,
		IsActive: true,
	})
	if err != nil {
		return nil, apperr.Internal("failed to get or create user", err)
	}

	// 5. Issue the token pair
	accessTTL := time.Duration(s.config.JWT.AccessExpiryMins) * time.Minute
	refreshTTL := time.Duration(s.config.JWT.RefreshExpiryHrs) * time.Hour

	access, refresh, err := utils.GenerateTokenPair(user.ID, user.Email, s.config.JWT.Secret, accessTTL, refreshTTL)
	if err != nil {
		return nil, apperr.Internal("failed to generate tokens", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
