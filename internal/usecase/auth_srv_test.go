package usecase

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/pkg/apperr"
	"marketplace-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	service *authService
	repo    *repository.Repository
	mail    *fakeMailer
	clock   time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	repo := newTestRepository()
	mail := newFakeMailer()
	fx := &authFixture{
		repo:  repo,
		mail:  mail,
		clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	svc := NewAuthService(repo, testConfig(), mail, zap.NewNop()).(*authService)
	svc.genCode = func() string { return "123456" }
	svc.now = func() time.Time { return fx.clock }
	fx.service = svc

	return fx
}

func (fx *authFixture) advance(d time.Duration) {
	fx.clock = fx.clock.Add(d)
}

func TestIssueCode_StoresAndMails(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()

	err := fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"})
	require.NoError(t, err)

	otp, err := fx.repo.OTP.FindLatest(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	require.NotNil(t, otp)

	msg, ok := fx.mail.waitForMail(2 * time.Second)
	require.True(t, ok, "mail was never dispatched")
	assert.Contains(t, msg, "a@b.com")
	assert.Contains(t, msg, "123456")
}

func TestIssueCode_RateLimited(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.service.config = testConfig()
	fx.service.config.OTP.RequestsPerHour = 2
	ctx := context.Background()

	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))
	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))

	err := fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindRateLimited))

	// Other emails keep their own budget
	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "c@d.com"}))
}

func TestConfirmCode_HappyPath(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))

	tokens, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	// Access token carries the identity
	claims, err := utils.ParseToken(tokens.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "a@b.com", claims.Email)

	// First confirm created the account
	user, err := fx.repo.User.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
}

func TestConfirmCode_SingleUse(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))

	_, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.NoError(t, err)

	// Replaying the same code fails
	_, err = fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestConfirmCode_UnknownCode(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.ConfirmCode(context.Background(), &request.ConfirmRequest{Email: "a@b.com", OTP: "999999"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestConfirmCode_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))

	// 4:59 after issue the code still works
	fx.advance(4*time.Minute + 59*time.Second)
	_, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.NoError(t, err)
}

func TestConfirmCode_Expired(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()
	otps := fx.repo.OTP.(*fakeOTPRepo)

	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))

	fx.advance(5 * time.Minute)
	_, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindExpired))

	// Expired codes are rejected, not consumed
	assert.Equal(t, 1, otps.count())
}

func TestConfirmCode_SameUserAcrossLogins(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))
	first, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.NoError(t, err)

	fx.service.genCode = func() string { return "654321" }
	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))
	second, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "654321"})
	require.NoError(t, err)

	firstClaims, err := utils.ParseToken(first.AccessToken, "test-secret")
	require.NoError(t, err)
	secondClaims, err := utils.ParseToken(second.AccessToken, "test-secret")
	require.NoError(t, err)

	// Logging in again reuses the account instead of creating a new one
	assert.Equal(t, firstClaims.UserID, secondClaims.UserID)
}

func TestConfirmCode_LatestCodeWins(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	ctx := context.Background()

	// Two outstanding codes; both stay valid until used
	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))
	fx.advance(time.Minute)
	fx.service.genCode = func() string { return "222222" }
	require.NoError(t, fx.service.IssueCode(ctx, &request.LoginRequest{Email: "a@b.com"}))

	_, err := fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "123456"})
	require.NoError(t, err)
	_, err = fx.service.ConfirmCode(ctx, &request.ConfirmRequest{Email: "a@b.com", OTP: "222222"})
	require.NoError(t, err)
}
