package booking

import (
	"context"
	"encoding/json"
	"time"

	"salonora/models"

	"github.com/go-redis/redis/v8"
)

const draftPrefix = "draft:"

// DraftStore holds in-progress booking drafts for the wizard.
type DraftStore interface {
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Set(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, id string) error
}

// RedisDraftStore stores drafts in Redis with a TTL; a draft abandoned
// mid-wizard simply expires.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisDraftStore) Set(ctx context.Context, draft *models.BookingDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftPrefix+draft.ID, b, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, draftPrefix+id).Err()
}
