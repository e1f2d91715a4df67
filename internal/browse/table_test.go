package browse

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

func sampleTable() *Table {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
	}
	return NewTable([]*models.OrderSummary{
		{OrderID: uuid.New(), CreatedAt: day(20), CustomerName: "Bina", GrandTotal: 637.20},
		{OrderID: uuid.New(), CreatedAt: day(5), CustomerName: "arun", GrandTotal: 873.20},
		{OrderID: uuid.New(), CreatedAt: day(12), CustomerName: "Chand", GrandTotal: 99.50},
	})
}

func TestNewTableFormatsRows(t *testing.T) {
	table := sampleTable()

	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-03-20", rows[0].Date)
	assert.Equal(t, "₹637.20", rows[0].Amount)
	assert.Equal(t, "Bina", rows[0].CustomerName)
}

func TestSortByAmountIsNumeric(t *testing.T) {
	table := sampleTable()

	// ₹99.50 sorts below ₹637.20 numerically even though "9" > "6" as text.
	table.Sort(ColumnAmount, Ascending)
	rows := table.Rows()
	assert.Equal(t, "₹99.50", rows[0].Amount)
	assert.Equal(t, "₹637.20", rows[1].Amount)
	assert.Equal(t, "₹873.20", rows[2].Amount)
}

func TestSortByDateIsChronological(t *testing.T) {
	table := sampleTable()

	table.Sort(ColumnDate, Ascending)
	rows := table.Rows()
	assert.Equal(t, "2024-03-05", rows[0].Date)
	assert.Equal(t, "2024-03-12", rows[1].Date)
	assert.Equal(t, "2024-03-20", rows[2].Date)
}

func TestSortByCustomerNameIsLexicographic(t *testing.T) {
	table := sampleTable()

	// Plain string comparison, so uppercase sorts before lowercase.
	table.Sort(ColumnCustomerName, Ascending)
	rows := table.Rows()
	assert.Equal(t, "Bina", rows[0].CustomerName)
	assert.Equal(t, "Chand", rows[1].CustomerName)
	assert.Equal(t, "arun", rows[2].CustomerName)
}

func TestSortDescendingIsStrictReversal(t *testing.T) {
	table := sampleTable()

	table.Sort(ColumnAmount, Ascending)
	ascending := table.Rows()

	table.Sort(ColumnAmount, Descending)
	descending := table.Rows()

	require.Len(t, descending, len(ascending))
	for i := range ascending {
		assert.Equal(t, ascending[i], descending[len(descending)-1-i])
	}
}

func TestToggleSortAlternatesDirectionPerColumn(t *testing.T) {
	table := sampleTable()

	assert.Equal(t, Ascending, table.ToggleSort(ColumnAmount))
	assert.Equal(t, Descending, table.ToggleSort(ColumnAmount))
	assert.Equal(t, Ascending, table.ToggleSort(ColumnAmount))

	// Each column keeps its own pending direction.
	assert.Equal(t, Ascending, table.ToggleSort(ColumnDate))
}

func TestToggleSortAppliesTheReturnedDirection(t *testing.T) {
	table := sampleTable()

	table.ToggleSort(ColumnAmount)
	rows := table.Rows()
	assert.Equal(t, "₹99.50", rows[0].Amount)

	table.ToggleSort(ColumnAmount)
	rows = table.Rows()
	assert.Equal(t, "₹873.20", rows[0].Amount)
}

func TestAmountValueFallsBackToZero(t *testing.T) {
	assert.Equal(t, 0.0, amountValue("n/a"))
	assert.Equal(t, 637.2, amountValue("₹637.20"))
	assert.Equal(t, 637.2, amountValue("637.20"))
}
