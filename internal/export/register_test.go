package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"beltstock/internal/domain"
	"beltstock/internal/export"
	"beltstock/internal/ledger"
)

func TestWriteRegister(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	sheet := export.RegisterSheet{
		Title: "Cogged / Bx",
		Entries: []ledger.Entry{
			{StockMovement: domain.StockMovement{Category: "Cogged", Subcategory: "Bx", Size: "40", StockIn: 10, Date: day}, RemainingStock: 10},
			{StockMovement: domain.StockMovement{Category: "Cogged", Subcategory: "Bx", StockOut: 4, Date: day.AddDate(0, 0, 1)}, Deficit: 4},
		},
		Stats:           ledger.Stats{TotalStock: 6, TodayStockIn: 1},
		InitialQuantity: 10,
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteRegister(&buf, sheet))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Size", rows[0][3])
	assert.Equal(t, []string{"2024-03-01", "Cogged", "Bx", "40", "10", "0", "10", "0"}, rows[1])
	assert.Equal(t, "unknown", rows[2][3])
	assert.Equal(t, "4", rows[2][7])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Total Stock", "6"}, summary[2])
}
