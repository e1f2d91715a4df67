package invoice

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

// DueDays is how long after the bill date payment falls due.
const DueDays = 15

// Document is the structured input of the invoice renderer: everything the
// printable view needs, fully computed ahead of rendering.
type Document struct {
	InvoiceNumber string
	Customer      models.CustomerInput
	Items         []models.ProductLine
	Subtotal      float64
	Tax           float64
	GrandTotal    float64
	TaxRateLabel  string
	BillDate      time.Time
	DueDate       time.Time
}

// NewDocument assembles a renderable invoice from customer fields, line
// items, and precomputed totals. The due date is the bill date plus 15 days.
func NewDocument(invoiceNumber string, customer models.CustomerInput, items []models.ProductLine, subtotal, tax, grandTotal float64, taxRateLabel string) (*Document, error) {
	billDate, err := time.Parse("2006-01-02", customer.BillDate)
	if err != nil {
		return nil, fmt.Errorf("invalid bill date %q: %w", customer.BillDate, err)
	}
	return &Document{
		InvoiceNumber: invoiceNumber,
		Customer:      customer,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		GrandTotal:    grandTotal,
		TaxRateLabel:  taxRateLabel,
		BillDate:      billDate,
		DueDate:       billDate.AddDate(0, 0, DueDays),
	}, nil
}

// FromOrderDetails rebuilds a renderable invoice from a persisted order, so
// the previous-bills browser reuses the same renderer for history.
func FromOrderDetails(details *models.OrderDetails, taxRateLabel string) (*Document, error) {
	customer := models.CustomerInput{
		Name:          details.CustomerName,
		Contact:       details.Contact,
		Email:         stringValue(details.Email),
		Address:       stringValue(details.Address),
		BillDate:      details.BillDate,
		PaymentMethod: details.PaymentMethod,
	}
	items := make([]models.ProductLine, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, models.ProductLine{
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Discount:    item.Discount,
			Total:       item.Total,
		})
	}
	return NewDocument(details.OrderID.String(), customer, items, details.TotalAmount, details.TaxAmount, details.GrandTotal, taxRateLabel)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>Invoice</title>
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; padding: 40px; background: #f8f9fa; }
  .invoice-box { max-width: 800px; margin: auto; padding: 30px; background: white; border-radius: 8px; }
  .header { border-bottom: 2px solid #02257d; padding-bottom: 20px; margin-bottom: 40px; }
  .invoice-title { color: #02257d; font-size: 28px; margin: 0; }
  table { width: 100%; border-collapse: collapse; margin: 25px 0; }
  th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
  th { background-color: #02257d; color: white; font-weight: 500; }
  .total-section { text-align: right; padding: 20px 0; border-top: 2px solid #009879; margin-top: 20px; }
  .amount-due { font-size: 20px; color: #02257d; font-weight: bold; }
  .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="invoice-box">
  <div class="header">
    <h1 class="invoice-title">Sanghamitra SmartBillS</h1>
    <div class="invoice-number">Invoice #{{.InvoiceNumber}}</div>
  </div>

  <div class="invoice-details">
    <div class="customer-details">
      <h3>Bill To:</h3>
      <p>{{.Customer.Name}}<br>
      {{orNA .Customer.Address}}<br>
      Phone: {{.Customer.Contact}}<br>
      Email: {{orNA .Customer.Email}}</p>
    </div>
    <div class="invoice-info">
      <h3>Invoice Details:</h3>
      <p>Invoice Date: {{date .BillDate}}<br>
      Payment Method: {{.Customer.PaymentMethod}}<br>
      Due Date: {{date .DueDate}}</p>
    </div>
  </div>

  <table>
    <thead>
      <tr><th>Description</th><th>Price</th><th>Quantity</th><th>Discount</th><th>Total</th></tr>
    </thead>
    <tbody>
    {{range .Items}}
      <tr>
        <td>{{.ProductName}}</td>
        <td>&#8377;{{money .Price}}</td>
        <td>{{.Quantity}}</td>
        <td>{{money .Discount}}%</td>
        <td>&#8377;{{money .Total}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <div class="total-section">
    <p>Subtotal: &#8377;{{money .Subtotal}}</p>
    <p>Tax ({{.TaxRateLabel}}): &#8377;{{money .Tax}}</p>
    <p class="amount-due">Total Amount Due: &#8377;{{money .GrandTotal}}</p>
  </div>

  <div class="footer">
    <p>Thank you for your business!</p>
    <p>Visit our website: <a href="https://sanghamitra.store/">Sanghamitra.store</a></p>
  </div>
</div>
</body>
</html>
`))

// RenderHTML writes the printable invoice document. The renderer is a pure
// projection of the Document; it performs no computation of its own.
func RenderHTML(w io.Writer, doc *Document) error {
	return invoiceTmpl.Execute(w, doc)
}
