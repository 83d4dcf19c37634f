package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Load reads the headerless census CSV at path into a frame of string
// columns named after Columns. Cells matching missingTokens become
// missing values, and rows shorter than the column set are padded with
// missing cells. Type coercion is deferred to Normalize.
func Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dataframe.DataFrame{}, fmt.Errorf("dataset not found at %s: %w", path, err)
		}
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}
		if len(rec) > len(Columns) {
			return dataframe.DataFrame{}, fmt.Errorf("row %d has %d fields, expected at most %d", len(records)+1, len(rec), len(Columns))
		}
		row := make([]string, len(Columns))
		copy(row, rec)
		records = append(records, row)
	}

	return FromRecords(records)
}

// FromRecords builds a frame from raw rows using the canonical census
// column set and missing-value handling. Every row must already be
// padded to len(Columns) fields.
func FromRecords(records [][]string) (dataframe.DataFrame, error) {
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(false),
		dataframe.Names(Columns...),
		dataframe.NaNValues(missingTokens),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return df, fmt.Errorf("build frame: %w", df.Error())
	}
	return df, nil
}
