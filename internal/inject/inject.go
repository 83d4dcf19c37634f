// Package inject appends fixed known-bad rows to the eval partition so
// that validation against a schema inferred from clean training data
// reports anomalies.
package inject

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"datavet/internal/dataset"
)

// extraRows are appended verbatim, in dataset.Columns order. Each row
// carries at least one value outside what clean training data exhibits:
// categories never seen in training, an unparsable age, and an empty
// hours-per-week cell.
var extraRows = [][]string{
	{"46", "Galactic-Senate", "257302", "Youtube-Academy", "12", "Married-civ-spouse", "Meme-curator", "Husband", "White", "Male", "0", "0", "40", "Atlantis", ">50K"},
	{"-7", "Private", "0", "HS-grad", "9", "Never-married", "Sales", "Own-child", "Martian", "Unknown", "99999999", "-100", "168", "United-States", "<=50K"},
	{"not-a-number", "Private", "215646", "Bachelors", "13", "Divorced", "Sales", "Not-in-family", "Black", "Female", "0", "0", "", "United-States", "maybe"},
}

// RowCount reports how many rows ExtraRows appends.
func RowCount() int {
	return len(extraRows)
}

// ExtraRows returns eval with the anomaly rows appended. The input frame
// is not modified. The result is deterministic: the same eval frame in
// always yields the same frame out.
func ExtraRows(eval dataframe.DataFrame) (dataframe.DataFrame, error) {
	if eval.Error() != nil {
		return eval, fmt.Errorf("inject input: %w", eval.Error())
	}

	extra, err := dataset.FromRecords(extraRows)
	if err != nil {
		return eval, fmt.Errorf("build anomaly rows: %w", err)
	}

	out := eval.RBind(extra)
	if out.Error() != nil {
		return out, fmt.Errorf("append anomaly rows: %w", out.Error())
	}
	return out, nil
}
