package export

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"commerce-insights-go/internal/flatten"
)

// flatParquetRow mirrors the table contract for the Parquet writer.
// Timestamps travel as formatted UTF8 strings, same as in the frame.
type flatParquetRow struct {
	CustomerID       int64   `parquet:"name=customer_id, type=INT64"`
	CustomerName     string  `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	RegistrationDate string  `parquet:"name=registration_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsVIP            bool    `parquet:"name=is_vip, type=BOOLEAN"`
	OrderID          int64   `parquet:"name=order_id, type=INT64"`
	OrderDate        string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	ProductID        int64   `parquet:"name=product_id, type=INT64"`
	ProductName      string  `parquet:"name=product_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category         string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	UnitPrice        float64 `parquet:"name=unit_price, type=DOUBLE"`
	ItemQuantity     int32   `parquet:"name=item_quantity, type=INT32"`
	TotalItemPrice   float64 `parquet:"name=total_item_price, type=DOUBLE"`
	OrderValuePct    float64 `parquet:"name=total_order_value_percentage, type=DOUBLE"`
}

// WriteParquet writes the table to a snappy-compressed Parquet file.
func WriteParquet(df dataframe.DataFrame, path string) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(flatParquetRow), 2)
	if err != nil {
		return fmt.Errorf("parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := 0; i < df.Nrow(); i++ {
		row := flatParquetRow{
			CustomerID:       int64(intVal(df, flatten.ColCustomerID, i)),
			CustomerName:     df.Col(flatten.ColCustomerName).Val(i).(string),
			RegistrationDate: df.Col(flatten.ColRegistrationDate).Val(i).(string),
			IsVIP:            df.Col(flatten.ColIsVIP).Val(i).(bool),
			OrderID:          int64(intVal(df, flatten.ColOrderID, i)),
			OrderDate:        df.Col(flatten.ColOrderDate).Val(i).(string),
			ProductID:        int64(intVal(df, flatten.ColProductID, i)),
			ProductName:      df.Col(flatten.ColProductName).Val(i).(string),
			Category:         df.Col(flatten.ColCategory).Val(i).(string),
			UnitPrice:        df.Col(flatten.ColUnitPrice).Val(i).(float64),
			ItemQuantity:     int32(intVal(df, flatten.ColItemQuantity, i)),
			TotalItemPrice:   df.Col(flatten.ColTotalItemPrice).Val(i).(float64),
			OrderValuePct:    df.Col(flatten.ColOrderValuePct).Val(i).(float64),
		}
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("write parquet row %d: %w", i, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finish parquet: %w", err)
	}
	return fw.Close()
}

func intVal(df dataframe.DataFrame, col string, i int) int {
	return df.Col(col).Val(i).(int)
}
