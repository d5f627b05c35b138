package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"finboard/internal/models"
)

// CacheService caches rendered listing pages and the dashboard cards.
// Mutations mark the invoices read paths stale through InvalidateInvoices.
type CacheService interface {
	GetCards(ctx context.Context) (*models.DashboardCards, error)
	SetCards(ctx context.Context, cards *models.DashboardCards, ttl time.Duration) error

	GetInvoiceListing(ctx context.Context, query string, page int) (*models.InvoiceListing, error)
	SetInvoiceListing(ctx context.Context, query string, page int, listing *models.InvoiceListing, ttl time.Duration) error

	// InvalidateInvoices drops every cached invoice page and the cards so
	// the next read recomputes from the store.
	InvalidateInvoices(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

const cardsKey = "finboard:cards"

func invoiceListingKey(query string, page int) string {
	return fmt.Sprintf("finboard:invoices:%s:%d", query, page)
}

func (r *redisCacheService) GetCards(ctx context.Context) (*models.DashboardCards, error) {
	data, err := r.client.Get(ctx, cardsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var cards models.DashboardCards
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, err
	}
	return &cards, nil
}

func (r *redisCacheService) SetCards(ctx context.Context, cards *models.DashboardCards, ttl time.Duration) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cardsKey, data, ttl).Err()
}

func (r *redisCacheService) GetInvoiceListing(ctx context.Context, query string, page int) (*models.InvoiceListing, error) {
	data, err := r.client.Get(ctx, invoiceListingKey(query, page)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var listing models.InvoiceListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *redisCacheService) SetInvoiceListing(ctx context.Context, query string, page int, listing *models.InvoiceListing, ttl time.Duration) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, invoiceListingKey(query, page), data, ttl).Err()
}

func (r *redisCacheService) InvalidateInvoices(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "finboard:invoices:*").Result()
	if err != nil {
		return err
	}
	keys = append(keys, cardsKey)
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
