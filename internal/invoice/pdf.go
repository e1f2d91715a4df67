package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF produces the downloadable rendition of an invoice document.
// Amounts use an "Rs." prefix because the core PDF fonts carry no rupee
// glyph.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(2, 37, 125)
	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, "SANGHAMITRA SMARTBILLS INVOICE")
	pdf.Ln(15)

	pdf.SetTextColor(33, 37, 41)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice Number: %s", doc.InvoiceNumber))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice Date: %s", doc.BillDate.Format("02-Jan-2006")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Due Date: %s", doc.DueDate.Format("02-Jan-2006")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Payment Method: %s", doc.Customer.PaymentMethod))
	pdf.Ln(13)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "BILL TO:")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, doc.Customer.Name)
	pdf.Ln(6)
	if doc.Customer.Address != "" {
		pdf.Cell(0, 6, doc.Customer.Address)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Phone: %s", doc.Customer.Contact))
	pdf.Ln(6)
	if doc.Customer.Email != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Email: %s", doc.Customer.Email))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Items table
	colWidths := []float64{60, 30, 25, 25, 30}
	headers := []string{"Description", "Price", "Quantity", "Discount", "Total"}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(2, 37, 125)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(33, 37, 41)
	for _, item := range doc.Items {
		pdf.CellFormat(colWidths[0], 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("Rs. %.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f%%", item.Discount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("Rs. %.2f", item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Subtotal: Rs. %.2f", doc.Subtotal), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.CellFormat(0, 7, fmt.Sprintf("Tax (%s): Rs. %.2f", doc.TaxRateLabel, doc.Tax), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(2, 37, 125)
	pdf.CellFormat(0, 9, fmt.Sprintf("Total Amount Due: Rs. %.2f", doc.GrandTotal), "", 0, "R", false, 0, "")
	pdf.Ln(15)

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.Cell(0, 6, "Thank you for your business!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
