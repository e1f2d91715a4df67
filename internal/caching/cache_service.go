package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

type CacheService interface {
	// Order list caching
	GetOrderList(ctx context.Context) ([]*models.OrderSummary, error)
	SetOrderList(ctx context.Context, orders []*models.OrderSummary, ttl time.Duration) error
	InvalidateOrderList(ctx context.Context) error

	// Order detail caching
	GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*models.OrderDetails, error)
	SetOrderDetails(ctx context.Context, details *models.OrderDetails, ttl time.Duration) error

	// Health
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis:// style addresses as well as plain host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

const orderListKey = "smartbills:orders"

func orderDetailsKey(orderID uuid.UUID) string {
	return fmt.Sprintf("smartbills:order:%s", orderID.String())
}

func (r *redisCacheService) GetOrderList(ctx context.Context) ([]*models.OrderSummary, error) {
	data, err := r.client.Get(ctx, orderListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var orders []*models.OrderSummary
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *redisCacheService) SetOrderList(ctx context.Context, orders []*models.OrderSummary, ttl time.Duration) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, orderListKey, data, ttl).Err()
}

func (r *redisCacheService) InvalidateOrderList(ctx context.Context) error {
	return r.client.Del(ctx, orderListKey).Err()
}

func (r *redisCacheService) GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*models.OrderDetails, error) {
	data, err := r.client.Get(ctx, orderDetailsKey(orderID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var details models.OrderDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *redisCacheService) SetOrderDetails(ctx context.Context, details *models.OrderDetails, ttl time.Duration) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, orderDetailsKey(details.OrderID), data, ttl).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
