package browse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

// Column identifies a sortable column of the previous-bills table.
type Column string

const (
	ColumnOrderID      Column = "order_id"
	ColumnDate         Column = "date"
	ColumnCustomerName Column = "customer_name"
	ColumnAmount       Column = "total_amount"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Row is one rendered line of the previous-bills table. Amount carries the
// currency symbol exactly as displayed; the amount sort strips it again.
type Row struct {
	OrderID      string
	Date         string // YYYY-MM-DD, sortable chronologically
	CustomerName string
	Amount       string
}

// Table is the sortable previous-bills view model.
type Table struct {
	rows []Row
	next map[Column]Direction
}

// NewTable projects the fetched order list into display rows.
func NewTable(orders []*models.OrderSummary) *Table {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{
			OrderID:      o.OrderID.String(),
			Date:         o.CreatedAt.Format("2006-01-02"),
			CustomerName: o.CustomerName,
			Amount:       fmt.Sprintf("₹%.2f", o.GrandTotal),
		})
	}
	return &Table{rows: rows, next: make(map[Column]Direction)}
}

// Rows returns the table rows in current display order.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Sort orders the rows by the given column: chronologically for the date
// column, numerically (ignoring the currency symbol) for the amount column,
// lexicographically otherwise.
func (t *Table) Sort(column Column, direction Direction) {
	less := func(a, b Row) bool {
		switch column {
		case ColumnDate:
			// Dates are formatted YYYY-MM-DD, so the string order is the
			// chronological order.
			return a.Date < b.Date
		case ColumnAmount:
			return amountValue(a.Amount) < amountValue(b.Amount)
		case ColumnCustomerName:
			return a.CustomerName < b.CustomerName
		default:
			return a.OrderID < b.OrderID
		}
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		if direction == Descending {
			return less(t.rows[j], t.rows[i])
		}
		return less(t.rows[i], t.rows[j])
	})
}

// ToggleSort sorts by the column in its pending direction and flips that
// direction for the next call, mirroring the per-column sort arrows.
func (t *Table) ToggleSort(column Column) Direction {
	direction := t.next[column]
	t.Sort(column, direction)
	if direction == Ascending {
		t.next[column] = Descending
	} else {
		t.next[column] = Ascending
	}
	return direction
}

func amountValue(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(s, "₹"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
