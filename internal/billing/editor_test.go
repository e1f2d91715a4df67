package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		"Frames":        300,
		"Glass":         200,
		"Paintings":     400,
		"Custom Design": 500,
	}
}

func TestNewEditorStartsWithOneDefaultRow(t *testing.T) {
	e := NewEditor(testCatalog())

	rows := e.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, UnselectedProduct, rows[0].Product)
	assert.Equal(t, 0.0, rows[0].Price)
	assert.Equal(t, 1, rows[0].Quantity)
	assert.Equal(t, 0.0, rows[0].Discount)
	assert.Equal(t, 0.0, rows[0].Total)
	assert.Equal(t, 0.0, e.GrandTotal())
	assert.False(t, e.RemoveEnabled())
}

func TestAddRowInsertsAfterGivenRow(t *testing.T) {
	e := NewEditor(testCatalog())
	first := e.Rows()[0].ID

	second, err := e.AddRow(first)
	require.NoError(t, err)

	// Inserting after the first row again must land between the two.
	middle, err := e.AddRow(first)
	require.NoError(t, err)

	rows := e.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, first, rows[0].ID)
	assert.Equal(t, middle, rows[1].ID)
	assert.Equal(t, second, rows[2].ID)
	assert.True(t, e.RemoveEnabled())
}

func TestAddRowUnknownRow(t *testing.T) {
	e := NewEditor(testCatalog())

	_, err := e.AddRow(uuid.New())
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.Len(t, e.Rows(), 1)
}

func TestRemoveRowIsNoOpWhenOneRowRemains(t *testing.T) {
	e := NewEditor(testCatalog())
	only := e.Rows()[0].ID

	require.NoError(t, e.RemoveRow(only))
	assert.Len(t, e.Rows(), 1)
	assert.False(t, e.RemoveEnabled())
}

func TestRemoveRowRecomputesTotals(t *testing.T) {
	e := NewEditor(testCatalog())
	first := e.Rows()[0].ID
	second, err := e.AddRow(first)
	require.NoError(t, err)

	require.NoError(t, e.SelectProduct(first, "Frames"))
	require.NoError(t, e.SelectProduct(second, "Glass"))
	assert.Equal(t, 500.0, e.GrandTotal())

	require.NoError(t, e.RemoveRow(second))
	assert.Equal(t, 300.0, e.GrandTotal())
	assert.False(t, e.RemoveEnabled())
}

func TestSelectProductFillsCatalogPriceAndResetsQuantity(t *testing.T) {
	e := NewEditor(testCatalog())
	id := e.Rows()[0].ID

	require.NoError(t, e.EditField(id, FieldQuantity, "5"))
	require.NoError(t, e.SelectProduct(id, "Paintings"))

	row := e.Rows()[0]
	assert.Equal(t, "Paintings", row.Product)
	assert.Equal(t, 400.0, row.Price)
	assert.Equal(t, 1, row.Quantity)
	assert.Equal(t, 400.0, row.Total)
}

func TestSelectProductUnknownNameMapsToZero(t *testing.T) {
	e := NewEditor(testCatalog())
	id := e.Rows()[0].ID

	require.NoError(t, e.SelectProduct(id, "Sculptures"))

	row := e.Rows()[0]
	assert.Equal(t, 0.0, row.Price)
	assert.Equal(t, 0.0, row.Total)
}

func TestEditFieldParseFallbacks(t *testing.T) {
	e := NewEditor(testCatalog())
	id := e.Rows()[0].ID

	require.NoError(t, e.EditField(id, FieldPrice, "abc"))
	assert.Equal(t, 0.0, e.Rows()[0].Price)

	require.NoError(t, e.EditField(id, FieldQuantity, ""))
	assert.Equal(t, 1, e.Rows()[0].Quantity)

	require.NoError(t, e.EditField(id, FieldQuantity, "0"))
	assert.Equal(t, 1, e.Rows()[0].Quantity)

	require.NoError(t, e.EditField(id, FieldDiscount, "x"))
	assert.Equal(t, 0.0, e.Rows()[0].Discount)

	require.NoError(t, e.EditField(id, FieldDiscount, "250"))
	assert.Equal(t, 100.0, e.Rows()[0].Discount)

	require.NoError(t, e.EditField(id, FieldPrice, "-10"))
	assert.Equal(t, 0.0, e.Rows()[0].Price)

	assert.ErrorIs(t, e.EditField(id, Field("color"), "red"), ErrUnknownField)
	assert.ErrorIs(t, e.EditField(uuid.New(), FieldPrice, "1"), ErrRowNotFound)
}

func TestRowTotalFormula(t *testing.T) {
	e := NewEditor(testCatalog())
	id := e.Rows()[0].ID

	require.NoError(t, e.SelectProduct(id, "Frames"))
	require.NoError(t, e.EditField(id, FieldQuantity, "2"))
	require.NoError(t, e.EditField(id, FieldDiscount, "10"))

	row := e.Rows()[0]
	assert.Equal(t, 540.0, row.Total)
	assert.Equal(t, 540.0, e.GrandTotal())
}

func TestGrandTotalAlwaysSumOfDisplayedRowTotals(t *testing.T) {
	e := NewEditor(testCatalog())
	first := e.Rows()[0].ID
	require.NoError(t, e.SelectProduct(first, "Frames"))

	second, err := e.AddRow(first)
	require.NoError(t, err)
	require.NoError(t, e.SelectProduct(second, "Glass"))
	require.NoError(t, e.EditField(second, FieldDiscount, "33.33"))

	third, err := e.AddRow(second)
	require.NoError(t, err)
	require.NoError(t, e.SelectProduct(third, "Custom Design"))
	require.NoError(t, e.EditField(third, FieldQuantity, "3"))
	require.NoError(t, e.RemoveRow(second))
	require.NoError(t, e.EditField(third, FieldDiscount, "7.5"))

	var sum float64
	for _, row := range e.Rows() {
		sum += row.Total
	}
	assert.InDelta(t, sum, e.GrandTotal(), 0.005)
}
