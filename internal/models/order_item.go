package models

import (
	"github.com/google/uuid"
)

// OrderItem is one persisted line item. Immutable once its order is saved.
type OrderItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OrderID     uuid.UUID `json:"order_id" db:"order_id"`
	ProductName string    `json:"product_name" db:"product_name"`
	Price       float64   `json:"price" db:"price"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Discount    float64   `json:"discount" db:"discount"`
	Total       float64   `json:"total" db:"total"`
}
