// Package table applies the fixed column contract to flattened rows and
// produces the final sorted dataframe. Unlike the lenient parsers upstream,
// a contract violation here is a hard error: by this stage every value is
// supposed to be well-typed already, so a mismatch means a bug in the
// flattening engine, not dirty input.
package table

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"commerce-insights-go/internal/flatten"
	"commerce-insights-go/internal/logger"
)

// TimestampLayout is how nullable timestamps are rendered inside the frame;
// an absent date becomes the empty string.
const TimestampLayout = "2006-01-02 15:04:05"

// Column pairs an output column with its enforced series type.
type Column struct {
	Name string
	Type series.Type
}

// Columns is the output contract, in order.
var Columns = []Column{
	{flatten.ColCustomerID, series.Int},
	{flatten.ColCustomerName, series.String},
	{flatten.ColRegistrationDate, series.String},
	{flatten.ColIsVIP, series.Bool},
	{flatten.ColOrderID, series.Int},
	{flatten.ColOrderDate, series.String},
	{flatten.ColProductID, series.Int},
	{flatten.ColProductName, series.String},
	{flatten.ColCategory, series.String},
	{flatten.ColUnitPrice, series.Float},
	{flatten.ColItemQuantity, series.Int},
	{flatten.ColTotalItemPrice, series.Float},
	{flatten.ColOrderValuePct, series.Float},
}

// ColumnNames returns the contract's column names in order.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// Enforce coerces rows onto the column contract, sorts them by
// (customer_id, order_id, product_id) ascending with stable ties, and
// returns the dense, positionally indexed frame.
func Enforce(rows []flatten.Row) (dataframe.DataFrame, error) {
	log := logger.New().WithField("component", "table")

	cols := make([]series.Series, len(Columns))
	for i, col := range Columns {
		s, err := buildSeries(col, rows)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		cols[i] = s
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("assemble table: %w", df.Err)
	}

	// gota v0.12.0's Arrange composes three or more keys incorrectly (it
	// subsets by indices into the previous pass instead of the original
	// frame), so chain single-key stable sorts from least to most
	// significant to get the (customer_id, order_id, product_id) order.
	df = df.
		Arrange(dataframe.Sort(flatten.ColProductID)).
		Arrange(dataframe.Sort(flatten.ColOrderID)).
		Arrange(dataframe.Sort(flatten.ColCustomerID))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("sort table: %w", df.Err)
	}

	log.WithField("rows", df.Nrow()).WithField("cols", df.Ncol()).Info("schema enforced")
	return df, nil
}

func buildSeries(col Column, rows []flatten.Row) (series.Series, error) {
	switch col.Type {
	case series.Int:
		vals := make([]int, len(rows))
		for i, row := range rows {
			n, err := asInt(row[col.Name])
			if err != nil {
				return series.Series{}, coerceErr(col, i, err)
			}
			vals[i] = n
		}
		return series.New(vals, series.Int, col.Name), nil
	case series.Float:
		vals := make([]float64, len(rows))
		for i, row := range rows {
			f, ok := row[col.Name].(float64)
			if !ok {
				return series.Series{}, coerceErr(col, i, fmt.Errorf("%T is not a float", row[col.Name]))
			}
			vals[i] = f
		}
		return series.New(vals, series.Float, col.Name), nil
	case series.Bool:
		vals := make([]bool, len(rows))
		for i, row := range rows {
			b, ok := row[col.Name].(bool)
			if !ok {
				return series.Series{}, coerceErr(col, i, fmt.Errorf("%T is not a bool", row[col.Name]))
			}
			vals[i] = b
		}
		return series.New(vals, series.Bool, col.Name), nil
	default:
		vals := make([]string, len(rows))
		for i, row := range rows {
			s, err := asString(row[col.Name])
			if err != nil {
				return series.Series{}, coerceErr(col, i, err)
			}
			vals[i] = s
		}
		return series.New(vals, series.String, col.Name), nil
	}
}

func asInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%T is not an integer", v)
	}
}

// asString accepts plain text and nullable timestamps; everything else is a
// contract violation.
func asString(v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case *time.Time:
		if s == nil {
			return "", nil
		}
		return s.Format(TimestampLayout), nil
	case time.Time:
		return s.Format(TimestampLayout), nil
	default:
		return "", fmt.Errorf("%T is not text or a timestamp", v)
	}
}

func coerceErr(col Column, row int, err error) error {
	return fmt.Errorf("column %q row %d: %w", col.Name, row, err)
}
