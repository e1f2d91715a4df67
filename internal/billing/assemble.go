package billing

import (
	"errors"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/common"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

// ErrNoQualifyingItems blocks submission when no row carries a selected
// product with a positive price.
var ErrNoQualifyingItems = errors.New("at least one product must be selected with a positive price")

// Qualifies reports whether a row becomes a billed line item. Rows left at
// their defaults are silently excluded from the submitted order.
func Qualifies(row Row) bool {
	return row.Product != "" && row.Product != UnselectedProduct && row.Price > 0
}

// AssembleOrder gathers the customer fields and the current row collection
// into a save-order payload. It fails when a required customer field is
// empty or when zero rows qualify; the caller surfaces the error and makes
// no network call.
func AssembleOrder(customer models.CustomerInput, rows []Row, taxRate float64) (*models.SaveOrderRequest, error) {
	if err := common.ValidateRequiredString(customer.Name, "name"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(customer.Contact, "contact"); err != nil {
		return nil, err
	}
	if err := common.ValidateDateFormat(customer.BillDate, "bill_date"); err != nil {
		return nil, err
	}

	var products []models.ProductLine
	var subtotal float64
	for _, row := range rows {
		if !Qualifies(row) {
			continue
		}
		subtotal += row.Total
		products = append(products, models.ProductLine{
			ProductName: row.Product,
			Price:       row.Price,
			Quantity:    row.Quantity,
			Discount:    row.Discount,
			Total:       row.Total,
		})
	}
	if len(products) == 0 {
		return nil, ErrNoQualifyingItems
	}

	subtotal = common.Round2(subtotal)
	tax := common.Round2(subtotal * taxRate)
	grand := common.Round2(subtotal + tax)

	return &models.SaveOrderRequest{
		Customer:    customer,
		Products:    products,
		TotalAmount: subtotal,
		TaxAmount:   tax,
		GrandTotal:  grand,
	}, nil
}
