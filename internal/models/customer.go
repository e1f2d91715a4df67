package models

import (
	"github.com/google/uuid"
)

// Customer is the billed party captured at submit time. A customer row is
// owned by the single order that references it and is immutable after save.
type Customer struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Contact       string    `json:"contact" db:"contact"`
	Email         *string   `json:"email,omitempty" db:"email"`
	Address       *string   `json:"address,omitempty" db:"address"`
	BillDate      string    `json:"bill_date" db:"bill_date"` // YYYY-MM-DD
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
}
