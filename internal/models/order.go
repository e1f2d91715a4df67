package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is one persisted billing transaction. Totals are denormalized at
// save time and never recomputed afterwards.
type Order struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CustomerID  uuid.UUID `json:"customer_id" db:"customer_id"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	TaxAmount   float64   `json:"tax_amount" db:"tax_amount"`
	GrandTotal  float64   `json:"grand_total" db:"grand_total"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// OrderSummary is one row of the previous-bills listing: the order joined
// with its customer name, newest first.
type OrderSummary struct {
	OrderID      uuid.UUID `json:"order_id" db:"order_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	GrandTotal   float64   `json:"grand_total" db:"grand_total"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	TaxAmount    float64   `json:"tax_amount" db:"tax_amount"`
}

// OrderDetails merges an order with its customer fields and line items for
// re-rendering a historical invoice.
type OrderDetails struct {
	OrderID       uuid.UUID   `json:"order_id" db:"order_id"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	CustomerName  string      `json:"customer_name" db:"customer_name"`
	Contact       string      `json:"contact" db:"contact"`
	Email         *string     `json:"email,omitempty" db:"email"`
	Address       *string     `json:"address,omitempty" db:"address"`
	BillDate      string      `json:"bill_date" db:"bill_date"`
	PaymentMethod string      `json:"payment_method" db:"payment_method"`
	TotalAmount   float64     `json:"total_amount" db:"total_amount"`
	TaxAmount     float64     `json:"tax_amount" db:"tax_amount"`
	GrandTotal    float64     `json:"grand_total" db:"grand_total"`
	Items         []OrderItem `json:"items"`
}
