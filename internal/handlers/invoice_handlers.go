package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/common"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/invoice"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/services"
)

// InvoiceHandlers serves the printable invoice view and the document export.
type InvoiceHandlers struct {
	orderService services.OrderServiceInterface
	minioSvc     services.MinioService
	bucketName   string
	taxRateLabel string
}

// NewInvoiceHandlers creates a new invoice handlers instance
func NewInvoiceHandlers(orderService services.OrderServiceInterface, minioSvc services.MinioService, bucketName, taxRateLabel string) *InvoiceHandlers {
	return &InvoiceHandlers{
		orderService: orderService,
		minioSvc:     minioSvc,
		bucketName:   bucketName,
		taxRateLabel: taxRateLabel,
	}
}

func (h *InvoiceHandlers) document(c echo.Context) (*invoice.Document, error) {
	orderID, err := parseOrderID(c)
	if err != nil {
		return nil, common.SendClientError(c, err.Error())
	}
	details, err := h.orderService.GetOrderDetails(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return nil, common.SendNotFoundError(c, "order not found")
		}
		return nil, common.SendServerError(c, "Failed to fetch order details")
	}
	doc, err := invoice.FromOrderDetails(details, h.taxRateLabel)
	if err != nil {
		return nil, common.SendServerError(c, "Failed to build invoice document")
	}
	return doc, nil
}

// GetInvoice handles GET /invoices/:orderId and returns the printable HTML
// document for a persisted order.
func (h *InvoiceHandlers) GetInvoice(c echo.Context) error {
	doc, err := h.document(c)
	if doc == nil {
		return err
	}

	var buf bytes.Buffer
	if err := invoice.RenderHTML(&buf, doc); err != nil {
		return common.SendServerError(c, "Failed to render invoice")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// ExportInvoice handles POST /invoices/:orderId/document: renders the PDF
// rendition, stores it, and returns a time-limited download URL.
func (h *InvoiceHandlers) ExportInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	doc, err := h.document(c)
	if doc == nil {
		return err
	}

	pdfBytes, err := invoice.RenderPDF(doc)
	if err != nil {
		return common.SendServerError(c, fmt.Sprintf("Failed to generate PDF: %v", err))
	}
	if len(pdfBytes) == 0 {
		return common.SendServerError(c, "Generated PDF is empty")
	}

	objectName := fmt.Sprintf("invoice-%s.pdf", doc.InvoiceNumber)
	err = h.minioSvc.UploadDocument(ctx, h.bucketName, objectName, "application/pdf", bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return common.SendServerError(c, "Failed to upload PDF to storage: "+err.Error())
	}

	pdfURL, err := h.minioSvc.GetPresignedURL(h.bucketName, objectName, 24*time.Hour)
	if err != nil {
		return common.SendServerError(c, "Failed to generate download URL: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "PDF generated and uploaded successfully",
		"pdf_url":    pdfURL,
		"expires_in": "24 hours",
	})
}
