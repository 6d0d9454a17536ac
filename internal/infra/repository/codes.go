package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/causewayhq/causeway/internal/domain"
)

// CodeStore keeps one-time codes in redis. The key TTL doubles as the
// expiry and the garbage collector; Verify deletes the key so a code never
// verifies twice.
type CodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCodeStore(redisClient *redis.Client, ttl time.Duration) *CodeStore {
	return &CodeStore{
		rdb: redisClient,
		ttl: ttl,
	}
}

func codeKey(purpose domain.CodePurpose, email string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, email)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *CodeStore) Issue(ctx context.Context, email string, purpose domain.CodePurpose) (domain.OneTimeCode, error) {
	code, err := generateCode()
	if err != nil {
		return domain.OneTimeCode{}, err
	}

	err = s.rdb.Set(ctx, codeKey(purpose, email), code, s.ttl).Err()
	if err != nil {
		return domain.OneTimeCode{}, err
	}

	return domain.OneTimeCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

func (s *CodeStore) Verify(ctx context.Context, email, code string, purpose domain.CodePurpose) error {
	key := codeKey(purpose, email)
	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.AuthorizationError{Reason: "invalid or expired code"}
		}
		return err
	}
	if stored != code {
		return domain.AuthorizationError{Reason: "invalid or expired code"}
	}
	return s.rdb.Del(ctx, key).Err()
}
