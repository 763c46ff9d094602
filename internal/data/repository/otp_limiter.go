package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OTPLimiter throttles login-code issuance per email address.
type OTPLimiter interface {
	Allow(ctx context.Context, email string, maxPerHour int) (bool, error)
}

type otpLimiter struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewOTPLimiter(rdb *redis.Client, log *zap.Logger) OTPLimiter {
	return &otpLimiter{
		rdb: rdb,
		log: log.With(zap.String("repository", "otp_limiter")),
	}
}

// Allow counts the request against a per-email key with a one hour
// TTL. maxPerHour <= 0 disables the limit.
func (l *otpLimiter) Allow(ctx context.Context, email string, maxPerHour int) (bool, error) {
	if maxPerHour <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("otp_requests:%s", email)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.log.Error("Failed to increment OTP counter",
			zap.Error(err),
			zap.String("email", email),
		)
		return false, fmt.Errorf("increment OTP counter for %s: %w", email, err)
	}

	// First request in the window starts the TTL
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, time.Hour).Err(); err != nil {
			l.log.Error("Failed to set OTP counter TTL",
				zap.Error(err),
				zap.String("email", email),
			)
			return false, fmt.Errorf("expire OTP counter for %s: %w", email, err)
		}
	}

	return count <= int64(maxPerHour), nil
}
