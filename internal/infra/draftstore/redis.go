package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client is the subset of redis.Cmdable the store uses.
type Client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDraftStore keeps drafts as JSON under "<prefix>:draft:<id>" and lets
// Redis expire them.
type RedisDraftStore struct {
	client Client
	prefix string
}

var _ commands.DraftStore = (*RedisDraftStore)(nil)

func NewRedisDraftStore(client Client, prefix string) *RedisDraftStore {
	return &RedisDraftStore{client: client, prefix: prefix}
}

func (s *RedisDraftStore) key(id uuid.UUID) string {
	return s.prefix + ":draft:" + id.String()
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *reservation.Draft, ttl time.Duration) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft", err)
	}
	if err := s.client.Set(ctx, s.key(draft.ID), payload, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err)
	}
	return nil
}

// Get returns nil, nil for a missing or expired draft.
func (s *RedisDraftStore) Get(ctx context.Context, id uuid.UUID) (*reservation.Draft, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load draft", err)
	}

	var draft reservation.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}
	return nil
}
