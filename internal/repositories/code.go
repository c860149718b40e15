package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/imfops/gadget-api/internal/logger"
)

// SelfDestructCodeRepository stores self-destruct confirmation codes in
// Redis, keyed by gadget id. Codes expire after the configured TTL, which
// bounds the window between initiating and confirming a self-destruct.
type SelfDestructCodeRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSelfDestructCodeRepository(rdb *redis.Client, ttl time.Duration) *SelfDestructCodeRepository {
	return &SelfDestructCodeRepository{rdb: rdb, ttl: ttl}
}

func codeKey(gadgetID uuid.UUID) string {
	return "self-destruct:" + gadgetID.String()
}

// Save stores the confirmation code for the gadget with the repository TTL.
// A second initiate overwrites the previous code.
func (r *SelfDestructCodeRepository) Save(ctx context.Context, gadgetID uuid.UUID, code string) error {
	err := r.rdb.Set(ctx, codeKey(gadgetID), code, r.ttl).Err()

	logger.Log.Infow(
		"op", "SET",
		"key", codeKey(gadgetID),
		"ttl", r.ttl,
		"error", err,
	)

	return err
}

// Get returns the stored confirmation code for the gadget, or "" when no
// code is stored or it has expired.
func (r *SelfDestructCodeRepository) Get(ctx context.Context, gadgetID uuid.UUID) (string, error) {
	code, err := r.rdb.Get(ctx, codeKey(gadgetID)).Result()

	logger.Log.Infow(
		"op", "GET",
		"key", codeKey(gadgetID),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return code, nil
}

// Delete removes the stored code. Used after a successful destruction so a
// code cannot be replayed.
func (r *SelfDestructCodeRepository) Delete(ctx context.Context, gadgetID uuid.UUID) error {
	err := r.rdb.Del(ctx, codeKey(gadgetID)).Err()

	logger.Log.Infow(
		"op", "DEL",
		"key", codeKey(gadgetID),
		"error", err,
	)

	return err
}
