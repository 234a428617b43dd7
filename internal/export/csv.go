// Package export serializes the final table. Every writer takes the frame
// as produced by table.Enforce and preserves its column and row order.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// WriteCSV streams the table as CSV with a header row.
func WriteCSV(df dataframe.DataFrame, w io.Writer) error {
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes the table to path, replacing any existing file.
func WriteCSVFile(df dataframe.DataFrame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(df, f); err != nil {
		return err
	}
	return f.Close()
}
