package models

// CustomerInput carries the customer form fields of a submission.
type CustomerInput struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BillDate      string `json:"bill_date"`
	PaymentMethod string `json:"payment_method"`
}

// ProductLine is one qualifying editor row as submitted to the gateway.
// Field names follow the submission contract, not the storage columns.
type ProductLine struct {
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// SaveOrderRequest is the full save-order payload assembled by the editor.
type SaveOrderRequest struct {
	Customer    CustomerInput `json:"customer"`
	Products    []ProductLine `json:"products"`
	TotalAmount float64       `json:"totalAmount"`
	TaxAmount   float64       `json:"taxAmount"`
	GrandTotal  float64       `json:"grandTotal"`
}

// SaveOrderResponse is the gateway's answer to a save-order request.
type SaveOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}
