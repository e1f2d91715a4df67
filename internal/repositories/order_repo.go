package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/common"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

// Database is the subset of pgxpool.Pool the repositories need. pgxmock's
// pool satisfies it too, so transaction behavior is testable without
// Postgres.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type OrderRepository interface {
	SaveOrder(ctx context.Context, req *models.SaveOrderRequest) (uuid.UUID, error)
	ListOrders(ctx context.Context) ([]*models.OrderSummary, error)
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error)
	GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*models.OrderDetails, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

// SaveOrder persists a submission atomically: customer row, order row, then
// one row per line item. Any failure rolls the whole transaction back so no
// orphan customer/order pair survives a failed item insert.
func (r *orderRepo) SaveOrder(ctx context.Context, req *models.SaveOrderRequest) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin save-order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	customerID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO customers (id, name, contact, email, address, bill_date, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, customerID, req.Customer.Name, req.Customer.Contact,
		common.OptionalString(req.Customer.Email), common.OptionalString(req.Customer.Address),
		req.Customer.BillDate, req.Customer.PaymentMethod)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert customer: %w", err)
	}

	orderID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, total_amount, tax_amount, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, orderID, customerID, req.TotalAmount, req.TaxAmount, req.GrandTotal)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert order: %w", err)
	}

	for _, p := range req.Products {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_name, price, quantity, discount, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.New(), orderID, p.ProductName, p.Price, p.Quantity, p.Discount, p.Total)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert order item %q: %w", p.ProductName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit save-order transaction: %w", err)
	}
	return orderID, nil
}

// ListOrders returns every order joined with its customer name, newest
// first. The historical volume is bounded, so there is no pagination.
func (r *orderRepo) ListOrders(ctx context.Context) ([]*models.OrderSummary, error) {
	query := `
		SELECT o.id AS order_id, o.created_at, c.name AS customer_name, o.grand_total, o.total_amount, o.tax_amount
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		ORDER BY o.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.OrderSummary
	for rows.Next() {
		summary := &models.OrderSummary{}
		if err := rows.Scan(&summary.OrderID, &summary.CreatedAt, &summary.CustomerName, &summary.GrandTotal, &summary.TotalAmount, &summary.TaxAmount); err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}
	return orders, rows.Err()
}

// GetOrderItems returns the line items of one order in insertion order.
func (r *orderRepo) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_name, price, quantity, discount, total
		FROM order_items
		WHERE order_id = $1
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductName, &item.Price, &item.Quantity, &item.Discount, &item.Total); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetOrderDetails returns one order merged with its customer fields plus its
// line items. Returns pgx.ErrNoRows when the id matches no order.
func (r *orderRepo) GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*models.OrderDetails, error) {
	query := `
		SELECT o.id AS order_id, o.created_at, c.name AS customer_name, c.contact, c.email, c.address, c.bill_date, c.payment_method, o.total_amount, o.tax_amount, o.grand_total
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE o.id = $1
	`
	details := &models.OrderDetails{}
	var billDate time.Time
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&details.OrderID, &details.CreatedAt, &details.CustomerName, &details.Contact,
		&details.Email, &details.Address, &billDate, &details.PaymentMethod,
		&details.TotalAmount, &details.TaxAmount, &details.GrandTotal,
	)
	if err != nil {
		return nil, err
	}
	details.BillDate = billDate.Format("2006-01-02")

	items, err := r.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	details.Items = make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		details.Items = append(details.Items, *item)
	}
	return details, nil
}
