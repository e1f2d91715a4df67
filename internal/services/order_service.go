package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/caching"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/repositories"
)

var (
	// ErrOrderNotFound marks a lookup whose id matches no persisted order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNoLineItems rejects a submission with an empty product list. The
	// items table cannot express the at-least-one-item invariant, so it is
	// enforced here.
	ErrNoLineItems = errors.New("order must contain at least one line item")
)

const orderListTTL = 5 * time.Minute

// OrderServiceInterface defines the interface for the order service
type OrderServiceInterface interface {
	SaveOrder(ctx context.Context, req *models.SaveOrderRequest) (uuid.UUID, error)
	ListOrders(ctx context.Context) ([]*models.OrderSummary, error)
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error)
	GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*models.OrderDetails, error)
	RefreshOrderListCache(ctx context.Context) error
}

type orderService struct {
	orderRepo repositories.OrderRepository
	cacheSvc  caching.CacheService
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repositories.OrderRepository, cacheSvc caching.CacheService) OrderServiceInterface {
	return &orderService{
		orderRepo: orderRepo,
		cacheSvc:  cacheSvc,
	}
}

// SaveOrder persists a submission and invalidates the cached listing.
func (s *orderService) SaveOrder(ctx context.Context, req *models.SaveOrderRequest) (uuid.UUID, error) {
	if len(req.Products) == 0 {
		return uuid.Nil, ErrNoLineItems
	}

	orderID, err := s.orderRepo.SaveOrder(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.cacheSvc.InvalidateOrderList(ctx); err != nil {
		log.Printf("WARN: failed to invalidate order list cache: %v", err)
	}
	return orderID, nil
}

// ListOrders serves the previous-bills listing, preferring the cache.
func (s *orderService) ListOrders(ctx context.Context) ([]*models.OrderSummary, error) {
	cached, err := s.cacheSvc.GetOrderList(ctx)
	if err != nil {
		log.Printf("WARN: order list cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cacheSvc.SetOrderList(ctx, orders, orderListTTL); err != nil {
		log.Printf("WARN: order list cache write failed: %v", err)
	}
	return orders, nil
}

// GetOrderItems returns the line items of one order.
func (s *orderService) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	return s.orderRepo.GetOrderItems(ctx, orderID)
}

// GetOrderDetails returns an order merged with its customer fields and
// items, or ErrOrderNotFound for an unknown id.
func (s *orderService) GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*models.OrderDetails, error) {
	cached, err := s.cacheSvc.GetOrderDetails(ctx, orderID)
	if err != nil {
		log.Printf("WARN: order details cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	details, err := s.orderRepo.GetOrderDetails(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// Persisted orders are immutable, so details can live long in cache.
	if err := s.cacheSvc.SetOrderDetails(ctx, details, time.Hour); err != nil {
		log.Printf("WARN: order details cache write failed: %v", err)
	}
	return details, nil
}

// RefreshOrderListCache re-warms the listing cache from the database. Used
// by the background scheduler.
func (s *orderService) RefreshOrderListCache(ctx context.Context) error {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return err
	}
	return s.cacheSvc.SetOrderList(ctx, orders, orderListTTL)
}
