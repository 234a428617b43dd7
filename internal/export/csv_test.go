package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"commerce-insights-go/internal/flatten"
	"commerce-insights-go/internal/table"
)

func sampleFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	reg := time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC)
	rows := []flatten.Row{
		{
			flatten.ColCustomerID:       int64(1),
			flatten.ColCustomerName:     "Alice",
			flatten.ColRegistrationDate: &reg,
			flatten.ColIsVIP:            true,
			flatten.ColOrderID:          int64(10),
			flatten.ColOrderDate:        (*time.Time)(nil),
			flatten.ColProductID:        int64(7),
			flatten.ColProductName:      "Novel",
			flatten.ColCategory:         "Books",
			flatten.ColUnitPrice:        12.5,
			flatten.ColItemQuantity:     int64(2),
			flatten.ColTotalItemPrice:   25.0,
			flatten.ColOrderValuePct:    100.0,
		},
	}
	out, err := table.Enforce(rows)
	require.NoError(t, err)
	return out
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(sampleFrame(t), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + one row

	assert.Equal(t, table.ColumnNames(), records[0])
	row := records[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "Alice", row[1])
	assert.Equal(t, "2023-01-10 09:00:00", row[2])
	assert.Equal(t, "true", row[3])
	assert.Equal(t, "Books", row[8])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flattened.csv")
	require.NoError(t, WriteCSVFile(sampleFrame(t), path))
	assert.FileExists(t, path)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flattened.xlsx")
	require.NoError(t, WriteXLSX(sampleFrame(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, table.ColumnNames(), rows[0])
	assert.Equal(t, "Novel", rows[1][7])
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flattened.parquet")
	require.NoError(t, WriteParquet(sampleFrame(t), path))
	assert.FileExists(t, path)
}
