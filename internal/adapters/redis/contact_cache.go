package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtapi/booking-go/internal/domain/model"
)

const defaultContactTTL = 15 * time.Minute

// ContactCache caches translator contact details so notification fan-out
// does not resolve the same recipients repeatedly.
type ContactCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewContactCache creates a contact cache with the default key prefix and TTL.
func NewContactCache(client redis.UniversalClient) *ContactCache {
	return &ContactCache{
		client: client,
		prefix: "booking:contact:",
		ttl:    defaultContactTTL,
	}
}

// NewContactCacheWithTTL creates a contact cache with a custom TTL.
func NewContactCacheWithTTL(client redis.UniversalClient, ttl time.Duration) *ContactCache {
	cache := NewContactCache(client)
	if ttl > 0 {
		cache.ttl = ttl
	}
	return cache
}

// Get returns the cached contact for a translator and whether it was present.
func (c *ContactCache) Get(ctx context.Context, translatorID string) (*model.Contact, bool, error) {
	if translatorID == "" {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, c.prefix+translatorID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get contact: %w", err)
	}

	var contact model.Contact
	if unmarshalErr := json.Unmarshal([]byte(data), &contact); unmarshalErr != nil {
		return nil, false, fmt.Errorf("unmarshal contact: %w", unmarshalErr)
	}
	return &contact, true, nil
}

// Set stores the contact under the translator's key. A non-positive ttl
// falls back to the cache default.
func (c *ContactCache) Set(ctx context.Context, contact *model.Contact, ttl time.Duration) error {
	if contact == nil || contact.TranslatorID == "" {
		return errors.New("contact with translator id is required")
	}
	if ttl <= 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("marshal contact: %w", err)
	}
	return c.client.Set(ctx, c.prefix+contact.TranslatorID, data, ttl).Err()
}

// Invalidate drops the cached contact for a translator.
func (c *ContactCache) Invalidate(ctx context.Context, translatorID string) error {
	if translatorID == "" {
		return nil
	}
	return c.client.Del(ctx, c.prefix+translatorID).Err()
}
