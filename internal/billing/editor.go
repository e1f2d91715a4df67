package billing

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/common"
)

// Field identifies an editable numeric cell of a row.
type Field string

const (
	FieldPrice    Field = "price"
	FieldQuantity Field = "quantity"
	FieldDiscount Field = "discount"
)

var (
	ErrRowNotFound  = errors.New("row not found")
	ErrUnknownField = errors.New("unknown field")
)

// Row is one editable line item. Total is kept consistent with the other
// fields by the editor after every mutation.
type Row struct {
	ID       uuid.UUID
	Product  string
	Price    float64
	Quantity int
	Discount float64
	Total    float64
}

// Editor maintains the ordered row collection of the billing form. It is the
// single source of truth; any view is a projection of Rows(). Not safe for
// concurrent use: all mutations happen on the UI event path.
type Editor struct {
	catalog Catalog
	rows    []*Row
	total   float64
}

// NewEditor creates an editor holding one default row, matching the initial
// state of the billing form.
func NewEditor(catalog Catalog) *Editor {
	e := &Editor{catalog: catalog}
	e.rows = append(e.rows, newRow())
	e.recompute()
	return e
}

func newRow() *Row {
	return &Row{
		ID:       uuid.New(),
		Product:  UnselectedProduct,
		Quantity: 1,
	}
}

// Rows returns a snapshot of the current rows in order.
func (e *Editor) Rows() []Row {
	rows := make([]Row, len(e.rows))
	for i, r := range e.rows {
		rows[i] = *r
	}
	return rows
}

// GrandTotal returns the aggregate of all displayed row totals, rounded to
// 2 decimal places.
func (e *Editor) GrandTotal() float64 {
	return e.total
}

// RemoveEnabled reports whether row removal is currently allowed. Removal is
// disabled whenever exactly one row remains.
func (e *Editor) RemoveEnabled() bool {
	return len(e.rows) > 1
}

// AddRow inserts a new default row immediately after the given row and
// returns its identity.
func (e *Editor) AddRow(afterRowID uuid.UUID) (uuid.UUID, error) {
	idx := e.indexOf(afterRowID)
	if idx < 0 {
		return uuid.Nil, ErrRowNotFound
	}
	row := newRow()
	e.rows = append(e.rows, nil)
	copy(e.rows[idx+2:], e.rows[idx+1:])
	e.rows[idx+1] = row
	e.recompute()
	return row.ID, nil
}

// RemoveRow deletes the given row. When exactly one row remains the call is
// a silent no-op so the collection is never emptied.
func (e *Editor) RemoveRow(rowID uuid.UUID) error {
	if !e.RemoveEnabled() {
		return nil
	}
	idx := e.indexOf(rowID)
	if idx < 0 {
		return ErrRowNotFound
	}
	e.rows = append(e.rows[:idx], e.rows[idx+1:]...)
	e.recompute()
	return nil
}

// SelectProduct assigns a catalog product to a row. The unit price is taken
// from the catalog (0 for unrecognized names) and the quantity resets to 1.
func (e *Editor) SelectProduct(rowID uuid.UUID, productName string) error {
	idx := e.indexOf(rowID)
	if idx < 0 {
		return ErrRowNotFound
	}
	row := e.rows[idx]
	row.Product = productName
	row.Price = e.catalog.PriceFor(productName)
	row.Quantity = 1
	e.recompute()
	return nil
}

// EditField applies a raw input value to one numeric cell. Invalid or empty
// input falls back to 0 for price and discount and to 1 for quantity, so no
// row ever carries a blank or NaN value downstream. Discount is bounded to
// [0,100] and price to non-negative, per the data model.
func (e *Editor) EditField(rowID uuid.UUID, field Field, rawValue string) error {
	idx := e.indexOf(rowID)
	if idx < 0 {
		return ErrRowNotFound
	}
	row := e.rows[idx]
	raw := strings.TrimSpace(rawValue)

	switch field {
	case FieldPrice:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			v = 0
		}
		row.Price = v
	case FieldQuantity:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			v = 1
		}
		row.Quantity = v
	case FieldDiscount:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		row.Discount = v
	default:
		return ErrUnknownField
	}
	e.recompute()
	return nil
}

func (e *Editor) indexOf(rowID uuid.UUID) int {
	for i, r := range e.rows {
		if r.ID == rowID {
			return i
		}
	}
	return -1
}

// recompute refreshes every row total and the aggregate. Runs after every
// mutating operation so displayed totals are never stale.
func (e *Editor) recompute() {
	var sum float64
	for _, r := range e.rows {
		r.Total = common.Round2(r.Price * float64(r.Quantity) * (1 - r.Discount/100))
		sum += r.Total
	}
	e.total = common.Round2(sum)
}
