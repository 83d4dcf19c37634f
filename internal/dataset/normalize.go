package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Normalize coerces the frame's columns to their declared kinds: numeric
// columns become floats, categorical columns become strings. Numeric
// cells that fail to parse become missing instead of aborting, so a
// stray token degrades one cell rather than the whole run. Returns a
// new frame; the input is left untouched. Columns absent from the frame
// are skipped.
func Normalize(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Error() != nil {
		return df, fmt.Errorf("normalize input: %w", df.Error())
	}

	out := df
	for _, name := range NumericColumns {
		if !hasColumn(out, name) {
			continue
		}
		col := out.Col(name)
		numeric := col.Type() == series.Float || col.Type() == series.Int
		vals := make([]float64, col.Len())
		for i := range vals {
			el := col.Elem(i)
			if el.IsNA() {
				vals[i] = math.NaN()
				continue
			}
			if numeric {
				vals[i] = el.Float()
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(el.String()), 64)
			if err != nil {
				vals[i] = math.NaN()
				continue
			}
			vals[i] = f
		}
		out = out.Mutate(series.New(vals, series.Float, name))
		if out.Error() != nil {
			return out, fmt.Errorf("coerce %s to float: %w", name, out.Error())
		}
	}

	for _, name := range CategoricalColumns {
		if !hasColumn(out, name) {
			continue
		}
		col := out.Col(name)
		vals := make([]string, col.Len())
		for i := range vals {
			el := col.Elem(i)
			if el.IsNA() {
				// "NaN" is the string series missing marker, not a value.
				vals[i] = "NaN"
				continue
			}
			vals[i] = el.String()
		}
		out = out.Mutate(series.New(vals, series.String, name))
		if out.Error() != nil {
			return out, fmt.Errorf("coerce %s to string: %w", name, out.Error())
		}
	}

	return out, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
