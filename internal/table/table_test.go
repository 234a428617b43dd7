package table

import (
	"testing"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-insights-go/internal/flatten"
)

func row(customer, order, product int64, pct float64) flatten.Row {
	reg := time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC)
	return flatten.Row{
		flatten.ColCustomerID:       customer,
		flatten.ColCustomerName:     "name",
		flatten.ColRegistrationDate: &reg,
		flatten.ColIsVIP:            false,
		flatten.ColOrderID:          order,
		flatten.ColOrderDate:        (*time.Time)(nil),
		flatten.ColProductID:        product,
		flatten.ColProductName:      "product",
		flatten.ColCategory:         "Books",
		flatten.ColUnitPrice:        10.0,
		flatten.ColItemQuantity:     int64(2),
		flatten.ColTotalItemPrice:   20.0,
		flatten.ColOrderValuePct:    pct,
	}
}

func TestEnforceSortsByFullKey(t *testing.T) {
	rows := []flatten.Row{
		row(2, 10, 3, 0),
		row(1, 20, 1, 0),
		row(1, 10, 2, 0),
		row(1, 10, 1, 0),
	}
	df, err := Enforce(rows)
	require.NoError(t, err)
	require.Equal(t, 4, df.Nrow())

	customers := df.Col(flatten.ColCustomerID).Records()
	orders := df.Col(flatten.ColOrderID).Records()
	products := df.Col(flatten.ColProductID).Records()

	assert.Equal(t, []string{"1", "1", "1", "2"}, customers)
	assert.Equal(t, []string{"10", "10", "20", "10"}, orders)
	assert.Equal(t, []string{"1", "2", "1", "3"}, products)
}

func TestEnforceColumnContract(t *testing.T) {
	df, err := Enforce([]flatten.Row{row(1, 1, 1, 100)})
	require.NoError(t, err)

	assert.Equal(t, ColumnNames(), df.Names())

	types := df.Types()
	byName := map[string]series.Type{}
	for i, name := range df.Names() {
		byName[name] = types[i]
	}
	assert.Equal(t, series.Int, byName[flatten.ColCustomerID])
	assert.Equal(t, series.Bool, byName[flatten.ColIsVIP])
	assert.Equal(t, series.Float, byName[flatten.ColUnitPrice])
	assert.Equal(t, series.String, byName[flatten.ColRegistrationDate])
	assert.Equal(t, series.Int, byName[flatten.ColItemQuantity])
}

func TestEnforceTimestampRendering(t *testing.T) {
	df, err := Enforce([]flatten.Row{row(1, 1, 1, 100)})
	require.NoError(t, err)

	assert.Equal(t, "2023-01-10 09:00:00", df.Col(flatten.ColRegistrationDate).Records()[0])
	assert.Equal(t, "", df.Col(flatten.ColOrderDate).Records()[0])
}

func TestEnforceRejectsContractViolation(t *testing.T) {
	bad := row(1, 1, 1, 100)
	bad[flatten.ColUnitPrice] = "12.5" // text where a float belongs

	_, err := Enforce([]flatten.Row{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "unit_price" row 0`)
}

func TestEnforceRejectsMissingColumn(t *testing.T) {
	bad := row(1, 1, 1, 100)
	delete(bad, flatten.ColItemQuantity)

	_, err := Enforce([]flatten.Row{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_quantity")
}

func TestEnforceEmptyInput(t *testing.T) {
	df, err := Enforce(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, df.Nrow())
	assert.Equal(t, ColumnNames(), df.Names())
}
